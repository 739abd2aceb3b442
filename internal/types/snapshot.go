package types

import (
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotSchema is bumped whenever the snapshot layout changes, so stale
// files are rejected instead of misread.
const SnapshotSchema uint16 = 1

// Snapshot is the serializable inventory of a fully checked Database:
// module, class, trait and method shapes with formatted types. It exists
// for tooling that wants to inspect a compiled program's type surface
// without re-running the front end.
type Snapshot struct {
	Schema  uint16
	Main    string
	Modules []SnapshotModule
}

// SnapshotModule is one module's inventory.
type SnapshotModule struct {
	Name    string
	Classes []SnapshotClass
	Traits  []SnapshotTrait
	Methods []SnapshotMethod
}

// SnapshotClass is one class's shape.
type SnapshotClass struct {
	Name           string
	Visibility     string
	Enum           bool
	TypeParameters []string
	Fields         []SnapshotField
	Methods        []SnapshotMethod
	Variants       []SnapshotVariant
}

// SnapshotTrait is one trait's shape.
type SnapshotTrait struct {
	Name           string
	Visibility     string
	TypeParameters []string
	Methods        []SnapshotMethod
}

// SnapshotField is one field with its formatted type.
type SnapshotField struct {
	Name string
	Type string
}

// SnapshotMethod is one method with its formatted signature.
type SnapshotMethod struct {
	Name      string
	Kind      string
	Signature string
}

// SnapshotVariant is one enum variant with its formatted member types.
type SnapshotVariant struct {
	Name    string
	Members []string
}

// TakeSnapshot captures the database. It fails when any placeholder is
// still open: snapshots only ever describe fully inferred programs.
func TakeSnapshot(db *Database) (*Snapshot, error) {
	for id := PlaceholderID(1); int(id) < len(db.placeholders); id++ {
		if !id.IsAssigned(db) {
			return nil, fmt.Errorf("types: placeholder %d is unresolved, refusing to snapshot", id)
		}
	}

	snap := &Snapshot{Schema: SnapshotSchema}
	if db.main.IsValid() {
		snap.Main = db.main.Name(db)
	}
	for mid := ModuleID(1); int(mid) < len(db.modules); mid++ {
		snap.Modules = append(snap.Modules, snapshotModule(db, mid))
	}
	return snap, nil
}

func snapshotModule(db *Database, mid ModuleID) SnapshotModule {
	m := mid.get(db)
	out := SnapshotModule{Name: m.Name}
	for _, name := range sortedKeys(m.Classes) {
		out.Classes = append(out.Classes, snapshotClass(db, m.Classes[name]))
	}
	for _, name := range sortedKeys(m.Traits) {
		out.Traits = append(out.Traits, snapshotTrait(db, m.Traits[name]))
	}
	for _, name := range sortedKeys(m.Methods) {
		out.Methods = append(out.Methods, snapshotMethod(db, m.Methods[name]))
	}
	return out
}

func snapshotClass(db *Database, cid ClassID) SnapshotClass {
	c := cid.get(db)
	out := SnapshotClass{
		Name:       c.Name,
		Visibility: c.Visibility.String(),
		Enum:       c.Enum,
	}
	for _, pid := range c.TypeParameters {
		out.TypeParameters = append(out.TypeParameters, pid.Name(db))
	}
	for _, fid := range c.Fields {
		out.Fields = append(out.Fields, SnapshotField{
			Name: fid.Name(db),
			Type: FormatType(db, fid.Type(db)),
		})
	}
	for _, name := range sortedKeys(c.Methods) {
		out.Methods = append(out.Methods, snapshotMethod(db, c.Methods[name]))
	}
	for _, vid := range c.Variants {
		v := SnapshotVariant{Name: vid.Name(db)}
		for _, member := range vid.Members(db) {
			v.Members = append(v.Members, FormatType(db, member))
		}
		out.Variants = append(out.Variants, v)
	}
	return out
}

func snapshotTrait(db *Database, tid TraitID) SnapshotTrait {
	t := tid.get(db)
	out := SnapshotTrait{
		Name:       t.Name,
		Visibility: t.Visibility.String(),
	}
	for _, pid := range t.TypeParameters {
		out.TypeParameters = append(out.TypeParameters, pid.Name(db))
	}
	for _, name := range sortedKeys(t.RequiredMethods) {
		out.Methods = append(out.Methods, snapshotMethod(db, t.RequiredMethods[name]))
	}
	for _, name := range sortedKeys(t.DefaultMethods) {
		out.Methods = append(out.Methods, snapshotMethod(db, t.DefaultMethods[name]))
	}
	return out
}

// sortedKeys keeps snapshot output stable across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func snapshotMethod(db *Database, mid MethodID) SnapshotMethod {
	return SnapshotMethod{
		Name:      mid.Name(db),
		Kind:      mid.Kind(db).String(),
		Signature: FormatMethod(db, mid),
	}
}

// Encode writes the snapshot in msgpack form.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("types: failed to encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot and validates its schema version.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("types: failed to decode snapshot: %w", err)
	}
	if snap.Schema != SnapshotSchema {
		return nil, fmt.Errorf("types: snapshot schema %d does not match %d", snap.Schema, SnapshotSchema)
	}
	return &snap, nil
}
