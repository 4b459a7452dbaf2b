package core

import "time"

// Phase discriminates the two records emitted for one invocation.
type Phase int

const (
	// PhaseStarted marks the record emitted before the target call.
	PhaseStarted Phase = iota

	// PhaseEnded marks the record emitted after the target call.
	PhaseEnded
)

// String returns the display name of the phase.
func (p Phase) String() string {
	if p == PhaseStarted {
		return "Started"
	}
	return "Ended"
}

// DiagnosticEvent is a single structured log record describing one
// phase of an intercepted invocation. Properties are built immediately
// before the event is emitted and belong exclusively to this event;
// they are never shared with a sibling invocation's records.
type DiagnosticEvent struct {
	// Timestamp is when the record was created.
	Timestamp time.Time

	// Level is the severity of the record.
	Level LogEventLevel

	// Phase identifies the record as the started or the ended record.
	Phase Phase

	// Properties contains the record's named structured fields.
	Properties map[string]any
}

// AddPropertyIfAbsent adds a property to the event if it doesn't already exist.
func (e *DiagnosticEvent) AddPropertyIfAbsent(name string, value any) {
	if _, exists := e.Properties[name]; !exists {
		e.Properties[name] = value
	}
}

// AddProperty adds or overwrites a property in the event.
func (e *DiagnosticEvent) AddProperty(name string, value any) {
	e.Properties[name] = value
}
