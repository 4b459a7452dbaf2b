package diaglog

import (
	"testing"

	"github.com/countincognito/diaglog/core"
)

func TestResolveState(t *testing.T) {
	tests := []struct {
		name      string
		override  core.LogActive
		ok        bool
		inherited core.LogActive
		want      core.LogActive
	}{
		{"override on wins over inherited off", core.LogActiveOn, true, core.LogActiveOff, core.LogActiveOn},
		{"override on wins over inherited on", core.LogActiveOn, true, core.LogActiveOn, core.LogActiveOn},
		{"override off wins over inherited on", core.LogActiveOff, true, core.LogActiveOn, core.LogActiveOff},
		{"override off wins over inherited off", core.LogActiveOff, true, core.LogActiveOff, core.LogActiveOff},
		{"absent inherits off", core.LogActiveOn, false, core.LogActiveOff, core.LogActiveOff},
		{"absent inherits on", core.LogActiveOff, false, core.LogActiveOn, core.LogActiveOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveState(tt.override, tt.ok, tt.inherited)
			if got != tt.want {
				t.Errorf("ResolveState(%v, %v, %v) = %v, want %v",
					tt.override, tt.ok, tt.inherited, got, tt.want)
			}
		})
	}
}
