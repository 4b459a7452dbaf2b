package core

import "context"

// EventEnricher adds contextual properties to diagnostic events.
//
// Enrichers run after the event's own payload properties are set and
// must not overwrite them; use AddPropertyIfAbsent for ambient values.
// The context is the one governing the intercepted call, so enrichers
// may pull per-call values (correlation ids, peer identity) from it.
type EventEnricher interface {
	// Enrich adds properties to the provided diagnostic event.
	Enrich(ctx context.Context, event *DiagnosticEvent)
}
