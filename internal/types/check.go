package types

// TypeCheck reports whether t is assignable to with. The relation is not
// symmetric. With subtyping=false the match must be exact/invariant (used
// for method-signature compatibility); with subtyping=true a class may
// satisfy a trait it implements (used for expression-to-expected-type
// checks).
//
// The check doubles as the unifier: it may record assignments for
// yet-unbound type parameters in ctx, and may resolve open placeholders.
func (t TypeRef) TypeCheck(db *Database, with TypeRef, ctx *TypeContext, subtyping bool) bool {
	if !ctx.enter() {
		return false
	}
	defer ctx.leave()

	// Universal left-hand values, and left-hand indirections.
	switch t.Kind {
	case KindError, KindNever:
		return true
	case KindPlaceholder:
		if v, ok := t.Placeholder.Value(db); ok {
			return v.TypeCheck(db, with, ctx, subtyping)
		}
	case KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf:
		resolved, ok := resolveSelf(t.Kind, ctx)
		if !ok {
			return false
		}
		return resolved.TypeCheck(db, with, ctx, subtyping)
	}

	// Right-hand type parameters drive inference: reuse the argument the
	// context already recorded for the parameter, or record t as its
	// first assignment. This is how generic calls infer their type
	// arguments from actual argument types.
	if pid, ok := with.typeParameter(); ok {
		if existing, ok := ctx.Arguments.Get(pid); ok {
			return t.TypeCheck(db, existing, ctx, subtyping)
		}
		if !t.CompatibleWithTypeParameter(db, pid, ctx) {
			return false
		}
		ctx.Arguments.Assign(pid, t)
		return true
	}

	// Right-hand placeholders: assigned ones delegate to their value,
	// open ones are resolved right here.
	if with.Kind == KindPlaceholder {
		if v, ok := with.Placeholder.Value(db); ok {
			return t.TypeCheck(db, v, ctx, subtyping)
		}
		if t.Kind == KindPlaceholder {
			// Two open placeholders: record a one-way dependency instead
			// of merging them, so resolution order cannot flip results.
			t.Placeholder.AddDepending(db, with.Placeholder)
			return true
		}
		with.Placeholder.Assign(db, t)
		return true
	}

	if with.Kind == KindError {
		return true
	}

	// Resolve a right-hand Self before consulting the ownership table.
	switch with.Kind {
	case KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf:
		resolved, ok := resolveSelf(with.Kind, ctx)
		if !ok {
			return false
		}
		return t.TypeCheck(db, resolved, ctx, subtyping)
	}

	// An open left-hand placeholder adopts the expected type.
	if t.Kind == KindPlaceholder {
		t.Placeholder.Assign(db, with)
		return true
	}

	// Left-hand non-rigid parameters: an already recorded assignment
	// substitutes in (keeping t's qualifier); an unrecorded one is
	// inferred from the expected side when the qualifier is erased.
	if pid, ok := t.typeParameter(); ok {
		if existing, ok := ctx.Arguments.Get(pid); ok {
			return withOwnership(t.Kind, existing).TypeCheck(db, with, ctx, subtyping)
		}
		if t.Kind == KindInfer {
			if !with.CompatibleWithTypeParameter(db, pid, ctx) {
				return false
			}
			ctx.Arguments.Assign(pid, with)
			return true
		}
	}

	// The ownership table.
	switch t.Kind {
	case KindOwned:
		switch with.Kind {
		case KindOwned:
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		case KindAny, KindRefAny:
			return true
		}
	case KindUni:
		switch with.Kind {
		case KindOwned, KindUni:
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		case KindAny, KindRefAny:
			return true
		}
	case KindRef:
		if with.Kind == KindRef {
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		}
	case KindMut:
		switch with.Kind {
		case KindRef:
			// Covariant when only a ref is demanded.
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		case KindMut:
			// Invariant between mutable borrows: no subtyping through mut.
			return t.Id.typeCheck(db, with.Id, ctx, false)
		}
	case KindRefUni:
		if with.Kind == KindRefUni {
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		}
	case KindMutUni:
		switch with.Kind {
		case KindRefUni:
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		case KindMutUni:
			return t.Id.typeCheck(db, with.Id, ctx, false)
		}
	case KindInfer:
		switch with.Kind {
		case KindOwned, KindUni, KindRef, KindRefUni, KindMut, KindMutUni, KindInfer:
			return t.Id.typeCheck(db, with.Id, ctx, subtyping)
		case KindAny, KindRefAny:
			return true
		}
	case KindAny:
		switch with.Kind {
		case KindAny, KindRefAny:
			return true
		}
	case KindRefAny:
		if with.Kind == KindRefAny {
			return true
		}
	}
	// KindUnknown matches nothing: a type the checker never computed must
	// fail loudly here rather than slip through.
	return false
}

// resolveSelf turns a Self-relative usage into a concrete one using the
// context's Self binding.
func resolveSelf(kind RefKind, ctx *TypeContext) (TypeRef, bool) {
	if !ctx.SelfType.IsValid() {
		return TypeRef{}, false
	}
	switch kind {
	case KindOwnedSelf:
		return Owned(ctx.SelfType), true
	case KindRefSelf:
		return Ref(ctx.SelfType), true
	case KindMutSelf:
		return Mut(ctx.SelfType), true
	case KindUniSelf:
		return Uni(ctx.SelfType), true
	default:
		return TypeRef{}, false
	}
}

// typeCheck compares two type identities under the current context.
func (a TypeId) typeCheck(db *Database, b TypeId, ctx *TypeContext, subtyping bool) bool {
	// A rigid parameter stands only for itself.
	if b.Kind == TypeIdRigidTypeParameter {
		switch a.Kind {
		case TypeIdTypeParameter, TypeIdRigidTypeParameter:
			return a.Index == b.Index
		default:
			return false
		}
	}

	switch a.Kind {
	case TypeIdClass:
		if b.Kind == TypeIdClass {
			return a.Index == b.Index
		}
	case TypeIdTrait:
		if b.Kind == TypeIdTrait {
			return a.Index == b.Index
		}
	case TypeIdModule:
		if b.Kind == TypeIdModule {
			return a.Index == b.Index
		}
	case TypeIdClassInstance:
		switch b.Kind {
		case TypeIdClassInstance:
			if a.ClassID() != b.ClassID() {
				return false
			}
			return checkArguments(db, a.ClassID().TypeParameters(db), a.Arguments, b.Arguments, ctx)
		case TypeIdTraitInstance:
			if !subtyping {
				return false
			}
			return a.ClassInstance().implementsTrait(db, b.TraitInstance(), ctx)
		}
	case TypeIdTraitInstance:
		if b.Kind != TypeIdTraitInstance {
			return false
		}
		ai, bi := a.TraitInstance(), b.TraitInstance()
		if ai.Of == bi.Of {
			return checkArguments(db, ai.Of.TypeParameters(db), ai.Arguments, bi.Arguments, ctx)
		}
		if !subtyping {
			return false
		}
		return ai.implementsTrait(db, bi, ctx)
	case TypeIdTypeParameter, TypeIdRigidTypeParameter:
		switch b.Kind {
		case TypeIdTypeParameter:
			return a.Index == b.Index
		case TypeIdTraitInstance:
			if !subtyping {
				return false
			}
			return a.ParameterID().implementsTrait(db, b.TraitInstance(), ctx)
		}
	case TypeIdClosure:
		if b.Kind == TypeIdClosure {
			return a.ClosureID().typeCheck(db, b.ClosureID(), ctx, subtyping)
		}
	}
	return false
}

// checkArguments compares two instantiations of the same generic
// parameter-wise. An unassigned parameter on either side is compatible
// with anything; this is what lets an empty array literal flow into
// Array[Int]. Assigned arguments are compared invariantly.
func checkArguments(db *Database, params []TypeParameterID, a, b ArgumentsID, ctx *TypeContext) bool {
	for _, param := range params {
		av, aok := a.Get(db, param)
		bv, bok := b.Get(db, param)
		if !aok || !bok {
			continue
		}
		if !av.TypeCheck(db, bv, ctx, false) {
			return false
		}
	}
	return true
}

// typeCheck compares two closures structurally.
func (a ClosureID) typeCheck(db *Database, b ClosureID, ctx *TypeContext, subtyping bool) bool {
	aargs, bargs := a.Arguments(db), b.Arguments(db)
	if len(aargs) != len(bargs) {
		return false
	}
	for i := range aargs {
		if !aargs[i].Type.TypeCheck(db, bargs[i].Type, ctx, false) {
			return false
		}
	}
	athrow, bthrow := a.ThrowType(db), b.ThrowType(db)
	if !athrow.IsUnknown() {
		// A throwing closure cannot pose as a non-throwing one.
		if bthrow.IsUnknown() {
			return false
		}
		if !athrow.TypeCheck(db, bthrow, ctx, subtyping) {
			return false
		}
	}
	bret := b.ReturnType(db)
	if bret.IsUnknown() {
		return true
	}
	return a.ReturnType(db).TypeCheck(db, bret, ctx, subtyping)
}

// ImplementsTraitInstance reports whether values of this type satisfy the
// trait, arguments included. Error and Never satisfy every requirement
// vacuously.
func (t TypeRef) ImplementsTraitInstance(db *Database, with TraitInstance, ctx *TypeContext) bool {
	switch t.Kind {
	case KindError, KindNever:
		return true
	case KindPlaceholder:
		if v, ok := t.Placeholder.Value(db); ok {
			return v.ImplementsTraitInstance(db, with, ctx)
		}
		return false
	case KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf:
		resolved, ok := resolveSelf(t.Kind, ctx)
		if !ok {
			return false
		}
		return resolved.ImplementsTraitInstance(db, with, ctx)
	case KindAny, KindRefAny, KindUnknown:
		return false
	default:
		return t.Id.ImplementsTraitInstance(db, with, ctx)
	}
}

// ImplementsTraitInstance is the identity-level trait-satisfaction query.
func (a TypeId) ImplementsTraitInstance(db *Database, with TraitInstance, ctx *TypeContext) bool {
	switch a.Kind {
	case TypeIdClass:
		return NewClassInstance(a.ClassID()).implementsTrait(db, with, ctx)
	case TypeIdClassInstance:
		return a.ClassInstance().implementsTrait(db, with, ctx)
	case TypeIdTrait:
		return NewTraitInstance(a.TraitID()).implementsTraitOrSelf(db, with, ctx)
	case TypeIdTraitInstance:
		return a.TraitInstance().implementsTraitOrSelf(db, with, ctx)
	case TypeIdTypeParameter, TypeIdRigidTypeParameter:
		return a.ParameterID().implementsTrait(db, with, ctx)
	default:
		return false
	}
}

// ImplementsTraitID reports trait satisfaction by identity alone, with no
// argument comparison. Used for quick `when`-bound pruning.
func (t TypeRef) ImplementsTraitID(db *Database, trait TraitID) bool {
	switch t.Kind {
	case KindError, KindNever:
		return true
	case KindPlaceholder:
		if v, ok := t.Placeholder.Value(db); ok {
			return v.ImplementsTraitID(db, trait)
		}
		return false
	case KindAny, KindRefAny, KindUnknown, KindOwnedSelf, KindRefSelf, KindMutSelf, KindUniSelf:
		return false
	default:
		return t.Id.ImplementsTraitID(db, trait)
	}
}

// ImplementsTraitID is the identity-level form of the query above.
func (a TypeId) ImplementsTraitID(db *Database, trait TraitID) bool {
	switch a.Kind {
	case TypeIdClass, TypeIdClassInstance:
		_, ok := a.ClassID().TraitImplementation(db, trait)
		return ok
	case TypeIdTrait, TypeIdTraitInstance:
		return a.TraitID() == trait || a.TraitID().RequiresTrait(db, trait)
	case TypeIdTypeParameter, TypeIdRigidTypeParameter:
		for _, req := range a.ParameterID().Requirements(db) {
			if req.Of == trait || req.Of.RequiresTrait(db, trait) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CompatibleWithTypeParameter reports whether t may be assigned to the
// parameter, i.e. whether it satisfies all of its required traits.
func (t TypeRef) CompatibleWithTypeParameter(db *Database, param TypeParameterID, ctx *TypeContext) bool {
	for _, req := range param.Requirements(db) {
		if !t.ImplementsTraitInstance(db, req, ctx) {
			return false
		}
	}
	return true
}

// implementsTrait checks a class instantiation against a trait
// instantiation through the class's recorded implementation.
func (i ClassInstance) implementsTrait(db *Database, with TraitInstance, ctx *TypeContext) bool {
	impl, ok := i.Of.TraitImplementation(db, with.Of)
	if !ok {
		return false
	}

	// A bounded implementation only applies when the concrete arguments
	// satisfy the replacement parameters of its `when` clause.
	if impl.Bounds.Len() > 0 {
		for _, orig := range i.Of.TypeParameters(db) {
			repl, bounded := impl.Bounds.Get(orig)
			if !bounded {
				continue
			}
			arg, assigned := i.Arguments.Get(db, orig)
			if !assigned {
				continue
			}
			if !arg.CompatibleWithTypeParameter(db, repl, ctx) {
				return false
			}
		}
	}

	// The implementation's arguments are written in terms of the class's
	// own parameters; redirect them through this instantiation before the
	// trait-level comparison, so Box[Int] presents Iter[Int] rather than
	// Iter[T].
	merged := ctx.Arguments.Clone()
	i.Arguments.CopyInto(db, &merged)
	sub := NewTypeContextWithArguments(ctx.SelfType, &merged)
	sub.depth = ctx.depth
	return checkArguments(db, with.Of.TypeParameters(db), impl.Instance.Arguments, with.Arguments, sub)
}

// implementsTraitOrSelf accepts either the same trait (argument-wise) or
// an ancestor in the requirement chain.
func (i TraitInstance) implementsTraitOrSelf(db *Database, with TraitInstance, ctx *TypeContext) bool {
	if i.Of == with.Of {
		return checkArguments(db, i.Of.TypeParameters(db), i.Arguments, with.Arguments, ctx)
	}
	return i.implementsTrait(db, with, ctx)
}

// implementsTrait checks a trait instantiation against an ancestor in its
// requirement chain, seeing ancestor parameters through the composed
// inherited argument chain.
func (i TraitInstance) implementsTrait(db *Database, with TraitInstance, ctx *TypeContext) bool {
	if !i.Of.RequiresTrait(db, with.Of) {
		return false
	}
	merged := ctx.Arguments.Clone()
	i.Arguments.CopyInto(db, &merged)
	sub := NewTypeContextWithArguments(ctx.SelfType, &merged)
	sub.depth = ctx.depth
	inherited := i.Of.InheritedTypeArguments(db)
	for _, param := range with.Of.TypeParameters(db) {
		wv, wok := with.Arguments.Get(db, param)
		if !wok {
			continue
		}
		iv, iok := inherited.Get(param)
		if !iok {
			continue
		}
		if !iv.TypeCheck(db, wv, sub, false) {
			return false
		}
	}
	return true
}

// implementsTrait checks a parameter's requirement set against a trait
// instantiation, walking requirement chains.
func (p TypeParameterID) implementsTrait(db *Database, with TraitInstance, ctx *TypeContext) bool {
	for _, req := range p.Requirements(db) {
		if req.implementsTraitOrSelf(db, with, ctx) {
			return true
		}
	}
	return false
}
