package core

// ReturnKind classifies the declared return slot of an intercepted method.
type ReturnKind int

const (
	// ReturnValue indicates the method produces a value.
	ReturnValue ReturnKind = iota

	// ReturnVoid indicates the method produces nothing.
	ReturnVoid

	// ReturnAsyncVoid indicates the method is awaitable but produces
	// nothing once awaited.
	ReturnAsyncVoid
)

// TypeInfo identifies the target type of an intercepted invocation.
type TypeInfo struct {
	// Namespace is the package or namespace containing the type.
	Namespace string

	// Name is the bare type name.
	Name string
}

// ParameterInfo describes a single declared parameter.
type ParameterInfo struct {
	// Name is the declared parameter name, if known.
	Name string

	// Position is the zero-based parameter index.
	Position int
}

// MethodInfo describes the method being intercepted.
type MethodInfo struct {
	// Name is the method name.
	Name string

	// Parameters lists the declared parameters in order. The length
	// must match the invocation's argument count.
	Parameters []ParameterInfo

	// ReturnKind classifies the declared return slot.
	ReturnKind ReturnKind
}

// Invocation is the read-only descriptor of one intercepted call,
// supplied by the interception boundary. Implementations must not be
// mutated by the core; argument values are only read to build a
// separate filtered copy for logging.
type Invocation interface {
	// TargetType identifies the type the call is dispatched to.
	TargetType() TypeInfo

	// Method describes the method being invoked.
	Method() *MethodInfo

	// Arguments returns the live argument values in declaration order.
	Arguments() []any
}
