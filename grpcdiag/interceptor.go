// Package grpcdiag adapts a diaglog.Interceptor to the gRPC server
// boundary. Each unary RPC is presented to the core as one intercepted
// invocation: the service becomes the target type, the method name the
// method, and the request message its single parameter.
package grpcdiag

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/countincognito/diaglog"
	"github.com/countincognito/diaglog/core"
)

// correlationKey is a private context key for the per-call correlation id.
type correlationKey struct{}

// CorrelationIDProperty is the event property carrying the per-call id.
const CorrelationIDProperty = "CorrelationId"

// WithCorrelationID returns a context carrying the given correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFromContext returns the correlation id carried by ctx.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationKey{}).(string)
	return id, ok
}

// CorrelationEnricher stamps each diagnostic record with the
// correlation id carried by the call's context. Register it on the
// interceptor when using UnaryServerInterceptor.
type CorrelationEnricher struct{}

// NewCorrelationEnricher creates a new correlation enricher.
func NewCorrelationEnricher() *CorrelationEnricher {
	return &CorrelationEnricher{}
}

// Enrich adds the correlation id to the diagnostic event.
func (e *CorrelationEnricher) Enrich(ctx context.Context, event *core.DiagnosticEvent) {
	if id, ok := CorrelationIDFromContext(ctx); ok {
		event.AddPropertyIfAbsent(CorrelationIDProperty, id)
	}
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that
// records diagnostic started/ended events around every unary handler.
//
// A fresh UUID correlation id is attached to the call's context unless
// the context already carries one, so the started and ended records of
// one RPC can be joined downstream. Handler errors suppress the ended
// record and propagate unchanged.
func UnaryServerInterceptor(itc *diaglog.Interceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := CorrelationIDFromContext(ctx); !ok {
			ctx = WithCorrelationID(ctx, uuid.New().String())
		}

		target, method := splitFullMethod(info.FullMethod)
		inv := diaglog.NewInvocation(target, &core.MethodInfo{
			Name: method,
			Parameters: []core.ParameterInfo{
				{Name: "request", Position: 0},
			},
			ReturnKind: core.ReturnValue,
		}, []any{req})

		return itc.Invoke(ctx, inv, func(ctx context.Context) (any, error) {
			return handler(ctx, req)
		})
	}
}

// splitFullMethod maps a gRPC full method name, e.g.
// "/billing.v1.Accounts/Transfer", onto the invocation identity:
// namespace "billing.v1", type "Accounts", method "Transfer".
func splitFullMethod(fullMethod string) (core.TypeInfo, string) {
	trimmed := strings.TrimPrefix(fullMethod, "/")
	service, method, ok := strings.Cut(trimmed, "/")
	if !ok {
		return core.TypeInfo{Name: trimmed}, trimmed
	}

	namespace := ""
	name := service
	if idx := strings.LastIndex(service, "."); idx >= 0 {
		namespace = service[:idx]
		name = service[idx+1:]
	}
	return core.TypeInfo{Namespace: namespace, Name: name}, method
}
