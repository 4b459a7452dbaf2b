package enrichers

import (
	"context"
	"os"
	"sync"

	"github.com/countincognito/diaglog/core"
)

// ProcessEnricher adds process information to diagnostic events.
type ProcessEnricher struct {
	processID   int
	processName string
	once        sync.Once
}

// NewProcessEnricher creates a new process enricher.
func NewProcessEnricher() *ProcessEnricher {
	return &ProcessEnricher{}
}

// Enrich adds process information to the diagnostic event.
func (pe *ProcessEnricher) Enrich(_ context.Context, event *core.DiagnosticEvent) {
	// Get process info once and cache it
	pe.once.Do(func() {
		pe.processID = os.Getpid()
		pe.processName = os.Args[0]
	})

	event.AddPropertyIfAbsent("ProcessId", pe.processID)
	event.AddPropertyIfAbsent("ProcessName", pe.processName)
}
