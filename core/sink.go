package core

// EventSink outputs diagnostic events to a destination.
//
// Sinks receive each event exactly once per emission; the event and its
// property map must be treated as read-only after Emit returns, since
// the same event is passed to every configured sink.
type EventSink interface {
	// Emit writes the diagnostic event to the sink's destination.
	Emit(event *DiagnosticEvent)

	// Close releases any resources held by the sink.
	Close() error
}
