// Package core provides the fundamental interfaces and types for diaglog.
package core

// LogActive specifies whether the content of a scope may be logged.
//
// There is no "inherit" member; inheritance is modeled by the absence of
// an override at a given scope (see PolicyStore).
type LogActive int

const (
	// LogActiveOff suppresses logging for the scope.
	LogActiveOff LogActive = iota

	// LogActiveOn permits logging for the scope.
	LogActiveOn
)

// String returns the display name of the state.
func (a LogActive) String() string {
	switch a {
	case LogActiveOn:
		return "On"
	case LogActiveOff:
		return "Off"
	default:
		return "Unknown"
	}
}

// DiagnosticLogState carries the resolved method-level state from the
// pre-call phase of an invocation to its post-call phase. It is created
// when the invocation starts, consumed when it completes, and is never
// shared between invocations.
type DiagnosticLogState struct {
	// Active is the method-level state resolved at call start.
	Active LogActive
}
