package types

import "testing"

func TestFormatBasicTypes(t *testing.T) {
	db := NewDatabase()
	c := ClassType(ClassInt)

	cases := []struct {
		typ  TypeRef
		want string
	}{
		{Owned(c), "Int"},
		{Uni(c), "uni Int"},
		{Ref(c), "ref Int"},
		{Mut(c), "mut Int"},
		{RefUni(c), "ref uni Int"},
		{MutUni(c), "mut uni Int"},
		{Never(), "Never"},
		{Any(), "Any"},
		{RefAny(), "ref Any"},
		{Error(), "<error>"},
		{Unknown(), "<unknown>"},
		{OwnedSelf(), "Self"},
		{RefSelf(), "ref Self"},
	}
	for _, tc := range cases {
		if got := FormatType(db, tc.typ); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestFormatSelfBound(t *testing.T) {
	db := NewDatabase()
	self := ClassType(ClassString)

	if got := FormatTypeWithSelf(db, OwnedSelf(), self); got != "String" {
		t.Errorf("got %q, want %q", got, "String")
	}
	if got := FormatTypeWithSelf(db, MutSelf(), self); got != "mut String" {
		t.Errorf("got %q, want %q", got, "mut String")
	}
}

func TestFormatGenericInstance(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	box.NewTypeParameter(db, "T")

	empty := NewClassInstance(box)
	if got := FormatType(db, Owned(empty.AsTypeId())); got != "Box[T]" {
		t.Errorf("unassigned argument should render as the parameter: %q", got)
	}

	ints := ClassInstanceWithTypes(db, box, []TypeRef{intType()})
	if got := FormatType(db, Ref(ints.AsTypeId())); got != "ref Box[Int]" {
		t.Errorf("got %q, want %q", got, "ref Box[Int]")
	}

	open := AllocTypePlaceholder(db)
	pending := ClassInstanceWithTypes(db, box, []TypeRef{Placeholder(open)})
	if got := FormatType(db, Owned(pending.AsTypeId())); got != "Box[T]" {
		t.Errorf("an open placeholder argument should render as the parameter: %q", got)
	}
	open.Assign(db, floatType())
	if got := FormatType(db, Owned(pending.AsTypeId())); got != "Box[Float]" {
		t.Errorf("a resolved placeholder argument should render its value: %q", got)
	}
}

func TestFormatOpenPlaceholder(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)
	if got := FormatType(db, Placeholder(p)); got != "?" {
		t.Errorf("got %q, want %q", got, "?")
	}
}

func TestFormatTuple(t *testing.T) {
	db := NewDatabase()
	pair := ClassInstanceWithTypes(db, ClassTuple2, []TypeRef{intType(), stringType()})
	if got := FormatType(db, Owned(pair.AsTypeId())); got != "(Int, String)" {
		t.Errorf("got %q, want %q", got, "(Int, String)")
	}
}

func TestFormatClosure(t *testing.T) {
	db := NewDatabase()

	id := AllocClosure(db, true)
	id.NewArgument(db, "value", intType())
	id.SetThrowType(db, stringType())
	id.SetReturnType(db, floatType())
	if got := FormatType(db, Owned(ClosureType(id))); got != "fn move (Int) !! String -> Float" {
		t.Errorf("got %q", got)
	}

	bare := AllocClosure(db, false)
	if got := FormatType(db, Owned(ClosureType(bare))); got != "fn ()" {
		t.Errorf("got %q", got)
	}
}

func TestFormatParameterWithContext(t *testing.T) {
	db := NewDatabase()
	param := AllocTypeParameter(db, "T")
	ctx := NewTypeContext(TypeId{})

	if got := FormatTypeWithContext(db, Infer(ParameterType(param)), ctx); got != "T" {
		t.Errorf("unassigned parameter should render by name: %q", got)
	}

	ctx.Arguments.Assign(param, intType())
	if got := FormatTypeWithContext(db, Infer(ParameterType(param)), ctx); got != "Int" {
		t.Errorf("assigned parameter should render its value: %q", got)
	}

	// The parameter's resolved qualifier must not stack on the usage's.
	ctx = NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, Mut(ClassType(ClassInt)))
	if got := FormatTypeWithContext(db, Ref(ParameterType(param)), ctx); got != "ref Int" {
		t.Errorf("nested qualifiers should collapse: %q", got)
	}
}

func TestFormatRigidParameter(t *testing.T) {
	db := NewDatabase()
	param := AllocTypeParameter(db, "T")
	ctx := NewTypeContext(TypeId{})
	ctx.Arguments.Assign(param, intType())

	// Rigid parameters never resolve through the context.
	if got := FormatTypeWithContext(db, Owned(RigidParameterType(param)), ctx); got != "T" {
		t.Errorf("rigid parameter should render by name: %q", got)
	}
}

func TestFormatCyclicTypeTruncates(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")
	box := AllocClass(db, "Box", mod, VisPublic, false)
	param := box.NewTypeParameter(db, "T")

	p := AllocTypePlaceholder(db)
	args := NewTypeArguments()
	args.Assign(param, Placeholder(p))
	inst := GenericClassInstance(db, box, args)
	p.Assign(db, Owned(inst.AsTypeId()))

	got := FormatType(db, Owned(inst.AsTypeId()))
	if len(got) == 0 || len(got) > 200 {
		t.Fatalf("cyclic type should render finitely, got %d bytes", len(got))
	}
}

func TestFormatMethod(t *testing.T) {
	db := NewDatabase()
	mod := db.NewModule("app")

	meth := AllocMethod(db, "insert", mod, MethodMutable, VisPublic)
	param := meth.NewTypeParameter(db, "V")
	meth.NewArgument(db, "value", Infer(ParameterType(param)))
	meth.SetReturnType(db, Owned(ClassType(ClassBool)))
	if got := FormatMethod(db, meth); got != "fn mut insert[V] (value: V) -> Bool" {
		t.Errorf("got %q", got)
	}

	simple := AllocMethod(db, "run", mod, MethodAsync, VisPublic)
	if got := FormatMethod(db, simple); got != "fn async run" {
		t.Errorf("got %q", got)
	}
}
