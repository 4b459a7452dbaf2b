package diaglog

import (
	"sync"

	"github.com/countincognito/diaglog/core"
)

// methodKey identifies one method of one target type.
type methodKey struct {
	target core.TypeInfo
	method string
}

// paramKey identifies one parameter position of one method.
type paramKey struct {
	methodKey
	position int
}

// Registry is an in-memory core.PolicyStore. Overrides are registered
// up front (typically during wiring) and read concurrently by every
// intercepted call; reads never block each other.
type Registry struct {
	mu      sync.RWMutex
	types   map[core.TypeInfo]core.LogActive
	methods map[methodKey]core.LogActive
	params  map[paramKey]core.LogActive
	returns map[methodKey]core.LogActive
}

// NewRegistry creates an empty policy registry. With no overrides
// registered, every scope inherits Off and nothing is logged.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[core.TypeInfo]core.LogActive),
		methods: make(map[methodKey]core.LogActive),
		params:  make(map[paramKey]core.LogActive),
		returns: make(map[methodKey]core.LogActive),
	}
}

// SetTypeOverride attaches an override to a target type.
func (r *Registry) SetTypeOverride(t core.TypeInfo, state core.LogActive) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t] = state
	return r
}

// SetMethodOverride attaches an override to a method.
func (r *Registry) SetMethodOverride(t core.TypeInfo, method string, state core.LogActive) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[methodKey{target: t, method: method}] = state
	return r
}

// SetParameterOverride attaches an override to one parameter position.
func (r *Registry) SetParameterOverride(t core.TypeInfo, method string, position int, state core.LogActive) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params[paramKey{methodKey: methodKey{target: t, method: method}, position: position}] = state
	return r
}

// SetReturnOverride attaches an override to a method's return slot.
func (r *Registry) SetReturnOverride(t core.TypeInfo, method string, state core.LogActive) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.returns[methodKey{target: t, method: method}] = state
	return r
}

// TypeOverride implements core.PolicyStore.
func (r *Registry) TypeOverride(t core.TypeInfo) (core.LogActive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.types[t]
	return state, ok
}

// MethodOverride implements core.PolicyStore.
func (r *Registry) MethodOverride(t core.TypeInfo, method string) (core.LogActive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.methods[methodKey{target: t, method: method}]
	return state, ok
}

// ParameterOverride implements core.PolicyStore.
func (r *Registry) ParameterOverride(t core.TypeInfo, method string, position int) (core.LogActive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.params[paramKey{methodKey: methodKey{target: t, method: method}, position: position}]
	return state, ok
}

// ReturnOverride implements core.PolicyStore.
func (r *Registry) ReturnOverride(t core.TypeInfo, method string) (core.LogActive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.returns[methodKey{target: t, method: method}]
	return state, ok
}
