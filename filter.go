package diaglog

import (
	"fmt"

	"github.com/countincognito/diaglog/core"
)

const (
	// RedactedValue replaces any argument or return value whose scope
	// resolved to Off. Every redacted slot carries this same constant,
	// so redacted values reveal nothing beyond "present but hidden".
	RedactedValue = "[REDACTED]"

	// VoidValue replaces the return value of void and awaitable-void
	// methods whose return slot resolved to On. A logged "(void)" is
	// distinguishable from a result that was actually nil.
	VoidValue = "(void)"
)

// filterParameters builds the loggable copy of an invocation's argument
// list. Each parameter resolves its own state from the per-parameter
// override seeded by the method-level state; parameters that resolve Off
// are replaced by RedactedValue. The fold result starts at methodState
// and flips to On as soon as any parameter resolves On; it never flips
// back.
//
// The parameter metadata count must equal the argument count; a
// mismatch means the boundary adapter is miswired and is treated as a
// fatal contract violation.
func filterParameters(inv core.Invocation, store core.PolicyStore, methodState core.LogActive) ([]any, core.LogActive) {
	t := inv.TargetType()
	method := inv.Method()
	args := inv.Arguments()

	if len(method.Parameters) != len(args) {
		panic(fmt.Sprintf("diaglog: %s.%s declares %d parameters but received %d arguments",
			t.Name, method.Name, len(method.Parameters), len(args)))
	}

	filtered := make([]any, len(args))
	anyLoggable := methodState
	for i, p := range method.Parameters {
		state := methodState
		if override, ok := store.ParameterOverride(t, method.Name, p.Position); ok {
			state = override
		}
		if state == core.LogActiveOn {
			filtered[i] = args[i]
			anyLoggable = core.LogActiveOn
		} else {
			filtered[i] = RedactedValue
		}
	}
	return filtered, anyLoggable
}

// filterReturn builds the loggable representation of the return slot.
//
// When the slot resolves Off the value is redacted, but the reported
// loggable state is the inherited method-level state rather than Off:
// a hidden return value does not by itself suppress the ended record.
// When the slot resolves On, void and awaitable-void returns are
// represented by VoidValue and anything else by the real value.
func filterReturn(value any, kind core.ReturnKind, override core.LogActive, ok bool, methodState core.LogActive) (any, core.LogActive) {
	resolved := ResolveState(override, ok, methodState)
	if resolved == core.LogActiveOff {
		return RedactedValue, methodState
	}
	if kind == core.ReturnVoid || kind == core.ReturnAsyncVoid {
		return VoidValue, core.LogActiveOn
	}
	return value, core.LogActiveOn
}
