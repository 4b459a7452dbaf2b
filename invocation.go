package diaglog

import "github.com/countincognito/diaglog/core"

// invocation is the plain core.Invocation used by Wrap and by boundary
// adapters that assemble descriptors by hand.
type invocation struct {
	target core.TypeInfo
	method *core.MethodInfo
	args   []any
}

// NewInvocation builds an invocation descriptor from its parts. The
// argument slice is held as-is and never mutated.
func NewInvocation(target core.TypeInfo, method *core.MethodInfo, args []any) core.Invocation {
	return &invocation{
		target: target,
		method: method,
		args:   args,
	}
}

func (i *invocation) TargetType() core.TypeInfo { return i.target }
func (i *invocation) Method() *core.MethodInfo  { return i.method }
func (i *invocation) Arguments() []any          { return i.args }
