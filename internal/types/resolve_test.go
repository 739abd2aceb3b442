package types

import "testing"

func TestInferredResolvesParameters(t *testing.T) {
	db := NewDatabase()
	param := AllocTypeParameter(db, "T")
	ctx := NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, intType())

	got := Infer(ParameterType(param)).Inferred(db, ctx, false)
	if got != intType() {
		t.Fatalf("T should resolve to Int, got %s", FormatType(db, got))
	}

	// A borrow qualifier on the parameter borrows the resolved value.
	got = Ref(ParameterType(param)).Inferred(db, ctx, false)
	if got != Ref(ClassType(ClassInt)) {
		t.Fatalf("ref T should resolve to ref Int, got %s", FormatType(db, got))
	}
}

func TestInferredMutDowngradesImmutableValues(t *testing.T) {
	db := NewDatabase()
	param := AllocTypeParameter(db, "T")
	ctx := NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, Ref(ClassType(ClassInt)))

	// mut T with T = ref Int cannot produce a mutable borrow.
	got := Mut(ParameterType(param)).Inferred(db, ctx, false)
	if got != Ref(ClassType(ClassInt)) {
		t.Fatalf("mut T over ref Int should degrade to ref Int, got %s", FormatType(db, got))
	}

	ctx = NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, intType())
	got = Mut(ParameterType(param)).Inferred(db, ctx, false)
	if got != Mut(ClassType(ClassInt)) {
		t.Fatalf("mut T over Int should be mut Int, got %s", FormatType(db, got))
	}
}

func TestInferredResolvesSelf(t *testing.T) {
	db := NewDatabase()
	self := ClassType(ClassString)
	ctx := NewTypeContext(self)

	if got := OwnedSelf().Inferred(db, ctx, false); got != Owned(self) {
		t.Fatalf("Self should resolve to String, got %s", FormatType(db, got))
	}
	if got := RefSelf().Inferred(db, ctx, false); got != Ref(self) {
		t.Fatalf("ref Self should resolve to ref String, got %s", FormatType(db, got))
	}

	// With no Self binding the type degrades to Unknown.
	empty := NewTypeContext(TypeId{})
	if got := OwnedSelf().Inferred(db, empty, false); !got.IsUnknown() {
		t.Fatalf("unbound Self should resolve to Unknown, got %s", FormatType(db, got))
	}
}

func TestInferredImmutableDowngrade(t *testing.T) {
	db := NewDatabase()
	ctx := NewTypeContext(TypeId{})
	got := intType().Inferred(db, ctx, true)
	if got != Ref(ClassType(ClassInt)) {
		t.Fatalf("immutable access should produce ref Int, got %s", FormatType(db, got))
	}
}

func TestInferredRebuildsGenericInstances(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	boxParam := box.NewTypeParameter(db, "T")

	outer := AllocTypeParameter(db, "V")
	inst := ClassInstanceWithTypes(db, box, []TypeRef{Infer(ParameterType(outer))})

	ctx := NewTypeContext(TypeId{})
	ctx.Arguments.Assign(outer, intType())

	got := Owned(inst.AsTypeId()).Inferred(db, ctx, false)
	if got.Id.Kind != TypeIdClassInstance || got.Id.ClassID() != box {
		t.Fatalf("resolution should keep the instance shape")
	}
	v, ok := got.Id.Arguments.Get(db, boxParam)
	if !ok || v != intType() {
		t.Fatalf("Box[V] should resolve to Box[Int], got %s", FormatType(db, got))
	}

	// A fully concrete instance keeps its argument table untouched.
	concrete := ClassInstanceWithTypes(db, box, []TypeRef{intType()})
	if got := Owned(concrete.AsTypeId()).Inferred(db, ctx, false); got != Owned(concrete.AsTypeId()) {
		t.Fatalf("a concrete instance should resolve to itself")
	}
}

func TestInferredResolvesPlaceholders(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)
	ctx := NewTypeContext(TypeId{})

	// Open placeholders stay as they are.
	if got := Placeholder(p).Inferred(db, ctx, false); got != Placeholder(p) {
		t.Fatalf("open placeholder should resolve to itself")
	}

	p.Assign(db, intType())
	if got := Placeholder(p).Inferred(db, ctx, false); got != intType() {
		t.Fatalf("assigned placeholder should resolve to its value")
	}
}

func TestInferredRebuildsClosures(t *testing.T) {
	db := NewDatabase()
	param := AllocTypeParameter(db, "T")
	id := AllocClosure(db, true)
	id.NewArgument(db, "value", Infer(ParameterType(param)))
	id.SetReturnType(db, Infer(ParameterType(param)))

	ctx := NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, stringType())

	got := Owned(ClosureType(id)).Inferred(db, ctx, false)
	if got.Id.Kind != TypeIdClosure {
		t.Fatalf("resolution should keep the closure shape")
	}
	nid := got.Id.ClosureID()
	if nid == id {
		t.Fatalf("a changed closure must be rebuilt, not mutated")
	}
	if !nid.IsMoving(db) {
		t.Fatalf("the move flag must survive resolution")
	}
	if args := nid.Arguments(db); len(args) != 1 || args[0].Type != stringType() {
		t.Fatalf("closure argument should resolve to String")
	}
	if nid.ReturnType(db) != stringType() {
		t.Fatalf("closure return should resolve to String")
	}

	// An unchanged closure keeps its identity.
	plain := AllocClosure(db, false)
	plain.SetReturnType(db, intType())
	if got := Owned(ClosureType(plain)).Inferred(db, ctx, false); got.Id.ClosureID() != plain {
		t.Fatalf("an unchanged closure should resolve to itself")
	}
}

func TestInferredTerminatesOnCyclicPlaceholder(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	param := box.NewTypeParameter(db, "T")

	p := AllocTypePlaceholder(db)
	args := NewTypeArguments()
	args.Assign(param, Placeholder(p))
	inst := GenericClassInstance(db, box, args)
	p.Assign(db, Owned(inst.AsTypeId()))

	ctx := NewTypeContext(TypeId{})
	// The depth cap must turn the cycle into Unknown leaves instead of
	// recursing forever.
	got := Placeholder(p).Inferred(db, ctx, false)
	if got.IsUnknown() {
		return
	}
	if got.Id.Kind != TypeIdClassInstance {
		t.Fatalf("expected a truncated Box chain, got %s", FormatType(db, got))
	}
}

func TestIsInferred(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	box.NewTypeParameter(db, "T")

	open := AllocTypePlaceholder(db)
	closed := AllocTypePlaceholder(db)
	closed.Assign(db, intType())

	cases := []struct {
		name string
		typ  TypeRef
		want bool
	}{
		{"concrete class", intType(), true},
		{"unknown", Unknown(), false},
		{"open placeholder", Placeholder(open), false},
		{"assigned placeholder", Placeholder(closed), true},
		{"instance with open arg", Owned(ClassInstanceWithTypes(db, box, []TypeRef{Placeholder(open)}).AsTypeId()), false},
		{"instance with closed arg", Owned(ClassInstanceWithTypes(db, box, []TypeRef{intType()}).AsTypeId()), true},
		{"never", Never(), true},
	}
	for _, tc := range cases {
		if got := tc.typ.IsInferred(db); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAsRigidType(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	boxParam := box.NewTypeParameter(db, "T")

	param := AllocTypeParameter(db, "T")
	rigid := Owned(ParameterType(param)).AsRigidType(db, TypeBounds{})
	if rigid.Id.Kind != TypeIdRigidTypeParameter || rigid.Id.ParameterID() != param {
		t.Fatalf("parameter should turn rigid")
	}

	// Bounds redirect to the replacement parameter.
	repl := param.CloneForBound(db, nil)
	bounds := NewTypeBounds()
	bounds.Set(param, repl)
	redirected := Owned(ParameterType(param)).AsRigidType(db, bounds)
	if redirected.Id.ParameterID() != repl {
		t.Fatalf("bounded parameter should redirect to its replacement")
	}

	// Parameters inside generic arguments turn rigid too.
	inst := ClassInstanceWithTypes(db, box, []TypeRef{Infer(ParameterType(param))})
	got := Owned(inst.AsTypeId()).AsRigidType(db, TypeBounds{})
	v, ok := got.Id.Arguments.Get(db, boxParam)
	if !ok || v.Id.Kind != TypeIdRigidTypeParameter {
		t.Fatalf("instance arguments should turn rigid")
	}

	// Specials pass through untouched.
	if got := Never().AsRigidType(db, TypeBounds{}); got != Never() {
		t.Fatalf("Never should be unaffected")
	}
}
