package types

import (
	"bytes"
	"strings"
	"testing"
)

func buildSnapshotFixture(t *testing.T) *Database {
	t.Helper()
	db := NewDatabase()
	mod := db.NewModule("app")
	db.SetMainModule(mod)

	point := AllocClass(db, "Point", mod, VisPublic, false)
	point.NewField(db, "x", intType(), VisPublic)
	point.NewField(db, "y", intType(), VisPublic)
	length := AllocMethod(db, "length", mod, MethodInstance, VisPublic)
	length.SetReturnType(db, floatType())
	point.AddMethod(db, length)
	mod.AddClass(db, point)

	toString := AllocTrait(db, "ToString", mod, VisPublic)
	req := AllocMethod(db, "to_string", mod, MethodInstance, VisPublic)
	req.SetReturnType(db, stringType())
	toString.AddRequiredMethod(db, req)
	mod.AddTrait(db, toString)

	opt := AllocClass(db, "Option", mod, VisPublic, true)
	param := opt.NewTypeParameter(db, "T")
	opt.NewVariant(db, "Some", []TypeRef{Infer(ParameterType(param))})
	opt.NewVariant(db, "None", nil)
	mod.AddClass(db, opt)

	return db
}

func TestSnapshotRoundtrip(t *testing.T) {
	db := buildSnapshotFixture(t)

	snap, err := TakeSnapshot(db)
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}
	if snap.Main != "app" {
		t.Fatalf("main module lost: %q", snap.Main)
	}

	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if len(got.Modules) != 1 || got.Modules[0].Name != "app" {
		t.Fatalf("module inventory wrong: %+v", got.Modules)
	}
	m := got.Modules[0]
	if len(m.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(m.Classes))
	}

	// sortedKeys ordering: Option before Point.
	opt, point := m.Classes[0], m.Classes[1]
	if opt.Name != "Option" || point.Name != "Point" {
		t.Fatalf("class order not deterministic: %q, %q", opt.Name, point.Name)
	}
	if !opt.Enum || len(opt.Variants) != 2 || opt.Variants[0].Name != "Some" {
		t.Fatalf("enum shape lost: %+v", opt)
	}
	if len(point.Fields) != 2 || point.Fields[0].Type != "Int" {
		t.Fatalf("field shape lost: %+v", point.Fields)
	}
	if len(point.Methods) != 1 || point.Methods[0].Signature != "fn length -> Float" {
		t.Fatalf("method signature lost: %+v", point.Methods)
	}
	if len(m.Traits) != 1 || m.Traits[0].Name != "ToString" {
		t.Fatalf("trait inventory wrong: %+v", m.Traits)
	}
}

func TestSnapshotRefusesOpenPlaceholders(t *testing.T) {
	db := buildSnapshotFixture(t)
	AllocTypePlaceholder(db)

	if _, err := TakeSnapshot(db); err == nil {
		t.Fatalf("an open placeholder should refuse the snapshot")
	}
}

func TestSnapshotAllowsResolvedPlaceholders(t *testing.T) {
	db := buildSnapshotFixture(t)
	p := AllocTypePlaceholder(db)
	p.Assign(db, intType())

	if _, err := TakeSnapshot(db); err != nil {
		t.Fatalf("resolved placeholders should snapshot fine: %v", err)
	}
}

func TestSnapshotSchemaMismatch(t *testing.T) {
	db := buildSnapshotFixture(t)
	snap, err := TakeSnapshot(db)
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}
	snap.Schema = SnapshotSchema + 1

	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := DecodeSnapshot(&buf); err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected a schema mismatch error, got %v", err)
	}
}

func TestSnapshotGarbageInput(t *testing.T) {
	if _, err := DecodeSnapshot(bytes.NewReader([]byte{0xc1, 0xff, 0x00})); err == nil {
		t.Fatalf("garbage input should fail to decode")
	}
}
