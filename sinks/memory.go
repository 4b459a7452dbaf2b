// Package sinks provides destinations for diagnostic events.
package sinks

import (
	"sync"

	"github.com/countincognito/diaglog/core"
)

// MemorySink stores diagnostic events in memory for testing purposes.
type MemorySink struct {
	events []core.DiagnosticEvent
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.DiagnosticEvent, 0),
	}
}

// Emit stores the event in memory.
func (m *MemorySink) Emit(event *core.DiagnosticEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy so later enrichment of a reused event cannot race
	eventCopy := *event
	if event.Properties != nil {
		eventCopy.Properties = make(map[string]any, len(event.Properties))
		for k, v := range event.Properties {
			eventCopy.Properties[k] = v
		}
	}

	m.events = append(m.events, eventCopy)
}

// Close does nothing for memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.DiagnosticEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.DiagnosticEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// FindEvents returns events that match the given predicate.
func (m *MemorySink) FindEvents(predicate func(*core.DiagnosticEvent) bool) []core.DiagnosticEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []core.DiagnosticEvent
	for _, event := range m.events {
		if predicate(&event) {
			result = append(result, event)
		}
	}
	return result
}
