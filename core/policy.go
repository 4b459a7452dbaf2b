package core

// PolicyStore answers scope-override lookups for the logging policy
// hierarchy. Each lookup returns the override for that scope and true,
// or false when no override is attached (the scope inherits from its
// parent).
//
// Implementations may be backed by static configuration, a runtime
// registry, or generated metadata; the contract is only "present
// override or absent". Lookups must be safe for concurrent use.
type PolicyStore interface {
	// TypeOverride returns the override attached to the target type.
	TypeOverride(t TypeInfo) (LogActive, bool)

	// MethodOverride returns the override attached to a method.
	MethodOverride(t TypeInfo, method string) (LogActive, bool)

	// ParameterOverride returns the override attached to one parameter
	// position of a method.
	ParameterOverride(t TypeInfo, method string, position int) (LogActive, bool)

	// ReturnOverride returns the override attached to the return slot
	// of a method.
	ReturnOverride(t TypeInfo, method string) (LogActive, bool)
}
