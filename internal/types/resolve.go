package types

// Inferred replaces every Self-relative and type-parameter-relative piece
// of the type with its concrete resolution from ctx, recursing through
// generic arguments, closures and placeholders. This is what turns a
// method's declared generic return type into the caller's concrete type.
//
// With immutable set the result is downgraded to an immutable borrow,
// which is what field and method access through a ref receiver produces.
//
// Resolution depth is capped at MaxTypeDepth: past it the result degrades
// to Unknown instead of overflowing the stack on cyclic generics.
func (t TypeRef) Inferred(db *Database, ctx *TypeContext, immutable bool) TypeRef {
	out := t.inferred(db, ctx)
	if immutable {
		out = out.AsRef()
	}
	return out
}

func (t TypeRef) inferred(db *Database, ctx *TypeContext) TypeRef {
	if !ctx.enter() {
		return Unknown()
	}
	defer ctx.leave()

	switch t.Kind {
	case KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf:
		resolved, ok := resolveSelf(t.Kind, ctx)
		if !ok {
			return Unknown()
		}
		return resolved.inferred(db, ctx)
	case KindPlaceholder:
		if v, ok := t.Placeholder.Value(db); ok {
			return v.inferred(db, ctx)
		}
		return t
	case KindNever, KindAny, KindRefAny, KindError, KindUnknown:
		return t
	}

	switch t.Id.Kind {
	case TypeIdTypeParameter:
		if v, ok := ctx.Arguments.Get(t.Id.ParameterID()); ok {
			return withOwnership(t.Kind, v.inferred(db, ctx))
		}
		return t
	case TypeIdClassInstance:
		inst := t.Id.ClassInstance()
		resolved, changed := inferredArguments(db, ctx, inst.Of.TypeParameters(db), inst.Arguments)
		if !changed {
			return t
		}
		return TypeRef{Kind: t.Kind, Id: GenericClassInstance(db, inst.Of, resolved).AsTypeId()}
	case TypeIdTraitInstance:
		inst := t.Id.TraitInstance()
		resolved, changed := inferredArguments(db, ctx, inst.Of.TypeParameters(db), inst.Arguments)
		if !changed {
			return t
		}
		return TypeRef{Kind: t.Kind, Id: GenericTraitInstance(db, inst.Of, resolved).AsTypeId()}
	case TypeIdClosure:
		return t.inferredClosure(db, ctx)
	default:
		return t
	}
}

// inferredArguments resolves every assigned argument, reporting whether
// anything actually changed so unchanged instances keep their table.
func inferredArguments(db *Database, ctx *TypeContext, params []TypeParameterID, args ArgumentsID) (TypeArguments, bool) {
	out := NewTypeArguments()
	changed := false
	for _, param := range params {
		v, ok := args.Get(db, param)
		if !ok {
			continue
		}
		r := v.inferred(db, ctx)
		if r != v {
			changed = true
		}
		out.Assign(param, r)
	}
	return out, changed
}

// inferredClosure rebuilds a closure whose signature mentions parameters
// or Self. An unchanged signature keeps the original closure.
func (t TypeRef) inferredClosure(db *Database, ctx *TypeContext) TypeRef {
	id := t.Id.ClosureID()
	args := id.Arguments(db)
	throw := id.ThrowType(db).inferred(db, ctx)
	ret := id.ReturnType(db).inferred(db, ctx)

	changed := throw != id.ThrowType(db) || ret != id.ReturnType(db)
	resolved := make([]TypeRef, len(args))
	for i, arg := range args {
		resolved[i] = arg.Type.inferred(db, ctx)
		if resolved[i] != arg.Type {
			changed = true
		}
	}
	if !changed {
		return t
	}

	nid := AllocClosure(db, id.IsMoving(db))
	for i, arg := range args {
		nid.NewArgument(db, arg.Name, resolved[i])
	}
	nid.SetThrowType(db, throw)
	nid.SetReturnType(db, ret)
	return TypeRef{Kind: t.Kind, Id: ClosureType(nid)}
}

// withOwnership reapplies an outer qualifier to a resolved value. Infer
// takes whatever ownership the value already has; a borrow qualifier
// borrows the value; an owning qualifier keeps the value's identity.
func withOwnership(kind RefKind, value TypeRef) TypeRef {
	switch value.Kind {
	case KindNever, KindAny, KindRefAny, KindError, KindUnknown, KindPlaceholder:
		return value
	}
	switch kind {
	case KindInfer, KindOwned, KindUni:
		return value
	case KindRef, KindRefUni:
		return value.AsRef()
	case KindMut, KindMutUni:
		if !value.IsMutable() {
			return value.AsRef()
		}
		switch value.Kind {
		case KindUni, KindUniSelf:
			return MutUni(value.Id)
		case KindMutSelf, KindOwnedSelf:
			return MutSelf()
		default:
			return Mut(value.Id)
		}
	default:
		return value
	}
}

// AsRigidType converts a parameter-bearing type into one using rigid
// parameters, optionally redirected through bounds. It is applied to
// every type in a generic definition before its body is checked, so the
// checker cannot narrow a parameter the body must treat abstractly.
func (t TypeRef) AsRigidType(db *Database, bounds TypeBounds) TypeRef {
	switch t.Kind {
	case KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf,
		KindNever, KindAny, KindRefAny, KindError, KindUnknown, KindPlaceholder:
		return t
	}
	return TypeRef{Kind: t.Kind, Id: t.Id.asRigid(db, bounds)}
}

func (t TypeId) asRigid(db *Database, bounds TypeBounds) TypeId {
	switch t.Kind {
	case TypeIdTypeParameter:
		pid := t.ParameterID()
		if repl, ok := bounds.Get(pid); ok {
			pid = repl
		}
		return RigidParameterType(pid)
	case TypeIdClassInstance:
		inst := t.ClassInstance()
		return GenericClassInstance(db, inst.Of,
			rigidArguments(db, bounds, inst.Of.TypeParameters(db), inst.Arguments)).AsTypeId()
	case TypeIdTraitInstance:
		inst := t.TraitInstance()
		return GenericTraitInstance(db, inst.Of,
			rigidArguments(db, bounds, inst.Of.TypeParameters(db), inst.Arguments)).AsTypeId()
	default:
		return t
	}
}

func rigidArguments(db *Database, bounds TypeBounds, params []TypeParameterID, args ArgumentsID) TypeArguments {
	out := NewTypeArguments()
	for _, param := range params {
		if v, ok := args.Get(db, param); ok {
			out.Assign(param, v.AsRigidType(db, bounds))
		}
	}
	return out
}
