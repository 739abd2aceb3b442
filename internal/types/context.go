package types

// TypeContext is the per-check scratch state: what Self currently means,
// the type-argument assignments discovered so far, and a recursion depth
// counter shared by checking and resolution. It is threaded explicitly
// through every check so nested generic arguments each get their own view
// of Self and T.
type TypeContext struct {
	// SelfType is the concrete type Self resolves to, or the zero TypeId
	// outside of method bodies.
	SelfType TypeId

	// Arguments collects parameter assignments as inference discovers
	// them.
	Arguments *TypeArguments

	depth int
}

// NewTypeContext creates a context with an empty working assignment set.
func NewTypeContext(self TypeId) *TypeContext {
	args := NewTypeArguments()
	return &TypeContext{SelfType: self, Arguments: &args}
}

// NewTypeContextWithArguments creates a context sharing an existing
// working assignment set.
func NewTypeContextWithArguments(self TypeId, args *TypeArguments) *TypeContext {
	return &TypeContext{SelfType: self, Arguments: args}
}

// enter bumps the recursion depth; it reports false past MaxTypeDepth so
// pathological cyclic generics degrade instead of overflowing the stack.
func (c *TypeContext) enter() bool {
	if c.depth >= MaxTypeDepth {
		return false
	}
	c.depth++
	return true
}

func (c *TypeContext) leave() {
	c.depth--
}
