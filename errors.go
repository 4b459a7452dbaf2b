package diaglog

import "errors"

var (
	// ErrNoSink is returned by New when no event sink was configured.
	// An interceptor without a sink would silently discard diagnostics,
	// so construction fails instead of degrading to a no-op.
	ErrNoSink = errors.New("diaglog: no event sink configured")

	// ErrNilInvocation is returned when a nil invocation descriptor is
	// supplied to a recorder phase.
	ErrNilInvocation = errors.New("diaglog: invocation is nil")

	// ErrNilMethod is returned when an invocation carries no method
	// metadata.
	ErrNilMethod = errors.New("diaglog: invocation method metadata is nil")

	// ErrNilTarget is returned by Invoke when the target callable is nil.
	ErrNilTarget = errors.New("diaglog: target is nil")
)
