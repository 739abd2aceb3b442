package types

import "testing"

func TestPlaceholderAssignment(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)

	if p.IsAssigned(db) {
		t.Fatalf("fresh placeholder should be open")
	}
	if _, ok := p.Value(db); ok {
		t.Fatalf("open placeholder should have no value")
	}

	p.Assign(db, intType())
	v, ok := p.Value(db)
	if !ok || v != intType() {
		t.Fatalf("placeholder should hold Int, got %v", v)
	}

	// Assignment is monotonic within a check pass.
	p.Assign(db, floatType())
	if v, _ := p.Value(db); v != intType() {
		t.Fatalf("second assignment must not replace the first")
	}
}

func TestPlaceholderSelfAssignmentIsNoOp(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)

	p.Assign(db, Placeholder(p))
	if p.IsAssigned(db) {
		t.Fatalf("assigning a placeholder to itself must leave it open")
	}
}

func TestPlaceholderDependingCascade(t *testing.T) {
	db := NewDatabase()
	a := AllocTypePlaceholder(db)
	b := AllocTypePlaceholder(db)
	c := AllocTypePlaceholder(db)

	a.AddDepending(db, b)
	b.AddDepending(db, c)
	a.AddDepending(db, b) // duplicates are ignored

	a.Assign(db, stringType())
	for _, id := range []PlaceholderID{a, b, c} {
		if v, ok := id.Value(db); !ok || v != stringType() {
			t.Fatalf("placeholder %d should have resolved to String", id)
		}
	}
}

func TestPlaceholderDependingCycleTerminates(t *testing.T) {
	db := NewDatabase()
	a := AllocTypePlaceholder(db)
	b := AllocTypePlaceholder(db)

	a.AddDepending(db, b)
	b.AddDepending(db, a)

	a.Assign(db, intType())
	if v, _ := a.Value(db); v != intType() {
		t.Fatalf("a should be Int")
	}
	if v, _ := b.Value(db); v != intType() {
		t.Fatalf("b should have resolved through the cycle")
	}
}

func TestTypeCheckResolvesPlaceholders(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)
	ctx := NewTypeContext(TypeId{})

	// Checking a concrete type against an open placeholder assigns it.
	if !intType().TypeCheck(db, Placeholder(p), ctx, false) {
		t.Fatalf("a concrete type should flow into an open placeholder")
	}
	if v, ok := p.Value(db); !ok || v != intType() {
		t.Fatalf("placeholder should now be Int")
	}

	// Further checks go through the assigned value.
	if !intType().TypeCheck(db, Placeholder(p), ctx, false) {
		t.Fatalf("Int should still check against the resolved placeholder")
	}
	if floatType().TypeCheck(db, Placeholder(p), ctx, false) {
		t.Fatalf("Float should not check against a placeholder holding Int")
	}
}

func TestTypeCheckLinksOpenPlaceholders(t *testing.T) {
	db := NewDatabase()
	a := AllocTypePlaceholder(db)
	b := AllocTypePlaceholder(db)
	ctx := NewTypeContext(TypeId{})

	// Two open placeholders record a dependency instead of merging.
	if !Placeholder(a).TypeCheck(db, Placeholder(b), ctx, false) {
		t.Fatalf("two open placeholders should be compatible")
	}
	if a.IsAssigned(db) || b.IsAssigned(db) {
		t.Fatalf("neither placeholder should have resolved yet")
	}

	a.Assign(db, stringType())
	if v, ok := b.Value(db); !ok || v != stringType() {
		t.Fatalf("b should resolve when a does")
	}
}

func TestOpenPlaceholderAdoptsExpected(t *testing.T) {
	db := NewDatabase()
	p := AllocTypePlaceholder(db)
	ctx := NewTypeContext(TypeId{})

	if !Placeholder(p).TypeCheck(db, Ref(ClassType(ClassInt)), ctx, false) {
		t.Fatalf("an open placeholder should adopt the expected type")
	}
	if v, _ := p.Value(db); v != Ref(ClassType(ClassInt)) {
		t.Fatalf("placeholder should hold ref Int, got %v", v)
	}
}
