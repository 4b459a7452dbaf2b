package diaglog

import (
	"context"
	"fmt"
	"reflect"

	"github.com/countincognito/diaglog/core"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Wrap returns a function with the same signature as fn that records
// diagnostic started/ended events around every call. It is the
// dynamic-proxy analog for plain Go functions and methods (pass a
// method value to intercept a method).
//
// A leading context.Context argument is treated as call plumbing, not a
// logged parameter, and is threaded to the enrichers. A trailing error
// result marks the call as faulted when non-nil; faulted calls emit no
// ended record. Functions with no non-error results are treated as
// void. Wrap panics when fn is not a function.
func Wrap[F any](itc *Interceptor, target core.TypeInfo, method string, fn F) F {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("diaglog: Wrap requires a function, got %s", ft.Kind()))
	}

	hasCtx := ft.NumIn() > 0 && ft.In(0) == ctxType
	firstParam := 0
	if hasCtx {
		firstParam = 1
	}

	params := make([]core.ParameterInfo, 0, ft.NumIn()-firstParam)
	for i := firstParam; i < ft.NumIn(); i++ {
		params = append(params, core.ParameterInfo{
			Name:     fmt.Sprintf("arg%d", i-firstParam),
			Position: i - firstParam,
		})
	}

	hasErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errType
	valueResults := ft.NumOut()
	if hasErr {
		valueResults--
	}

	kind := core.ReturnValue
	if valueResults == 0 {
		kind = core.ReturnVoid
	}

	info := &core.MethodInfo{
		Name:       method,
		Parameters: params,
		ReturnKind: kind,
	}

	wrapper := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		ctx := context.Background()
		if hasCtx {
			if c, ok := in[0].Interface().(context.Context); ok && c != nil {
				ctx = c
			}
		}

		args := make([]any, 0, len(in)-firstParam)
		for _, v := range in[firstParam:] {
			args = append(args, v.Interface())
		}
		inv := NewInvocation(target, info, args)

		rec := itc.NewRecorder()
		state, err := rec.StartingInvocation(ctx, inv)
		if err != nil {
			// Unreachable with a descriptor built here; surface it
			// rather than logging a half-recorded invocation.
			panic(err)
		}

		var out []reflect.Value
		if ft.IsVariadic() {
			out = fv.CallSlice(in)
		} else {
			out = fv.Call(in)
		}

		if hasErr {
			if errVal := out[len(out)-1]; !errVal.IsNil() {
				return out
			}
		}

		var ret any
		switch valueResults {
		case 0:
			ret = nil
		case 1:
			ret = out[0].Interface()
		default:
			values := make([]any, valueResults)
			for i := 0; i < valueResults; i++ {
				values[i] = out[i].Interface()
			}
			ret = values
		}

		if err := rec.CompletedInvocation(ctx, inv, state, ret); err != nil {
			panic(err)
		}
		return out
	})

	return wrapper.Interface().(F)
}
