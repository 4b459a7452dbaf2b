// Package enrichers provides ambient enrichment for diagnostic events.
package enrichers

import (
	"context"
	"os"
	"sync"

	"github.com/countincognito/diaglog/core"
)

// MachineNameEnricher adds the machine name to diagnostic events.
type MachineNameEnricher struct {
	propertyName string
	machineName  string
	once         sync.Once
}

// NewMachineNameEnricher creates a new machine name enricher.
func NewMachineNameEnricher() *MachineNameEnricher {
	return &MachineNameEnricher{
		propertyName: "MachineName",
	}
}

// NewMachineNameEnricherWithName creates a new machine name enricher with a custom property name.
func NewMachineNameEnricherWithName(propertyName string) *MachineNameEnricher {
	return &MachineNameEnricher{
		propertyName: propertyName,
	}
}

// Enrich adds the machine name to the diagnostic event.
func (me *MachineNameEnricher) Enrich(_ context.Context, event *core.DiagnosticEvent) {
	// Get machine name once and cache it
	me.once.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			me.machineName = "unknown"
		} else {
			me.machineName = hostname
		}
	})

	event.AddPropertyIfAbsent(me.propertyName, me.machineName)
}
