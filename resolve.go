package diaglog

import "github.com/countincognito/diaglog/core"

// ResolveState resolves the effective logging state for one scope.
// When an override is present (ok is true) it wins unconditionally;
// otherwise the scope inherits the parent's state. The same rule is
// applied at every level of the hierarchy: type, method, parameter,
// return slot.
func ResolveState(override core.LogActive, ok bool, inherited core.LogActive) core.LogActive {
	if ok {
		return override
	}
	return inherited
}
