package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Depth limits that turn runaway recursion on cyclic generic definitions
// into a degraded but safe result instead of a stack overflow.
const (
	// MaxTypeDepth caps type resolution; past it Inferred yields Unknown.
	MaxTypeDepth = 64
	// MaxFormatDepth caps formatting; past it the formatter prints "...".
	MaxFormatDepth = 8
)

// Built-in classes occupy fixed slots right after the arena sentinel, so
// the rest of the compiler can refer to them as constants without lookups.
const (
	ClassString    ClassID = 1
	ClassByteArray ClassID = 2
	ClassInt       ClassID = 3
	ClassFloat     ClassID = 4
	ClassBool      ClassID = 5
	ClassNil       ClassID = 6
	ClassFuture    ClassID = 7
	ClassTuple1    ClassID = 8
	ClassTuple2    ClassID = 9
	ClassTuple3    ClassID = 10
	ClassTuple4    ClassID = 11
	ClassTuple5    ClassID = 12
	ClassTuple6    ClassID = 13
	ClassTuple7    ClassID = 14
	ClassTuple8    ClassID = 15
	ClassArray     ClassID = 16

	// LastBuiltinClass is the highest seeded class slot.
	LastBuiltinClass = ClassArray
)

// Database is the arena owning every type-system entity for one
// compilation. Nothing is reference counted; cycles in the type graph
// exist only in the index space. A single compilation uses a single
// Database from a single goroutine.
type Database struct {
	modules      []Module
	classes      []Class
	traits       []Trait
	methods      []Method
	closures     []Closure
	fields       []Field
	variables    []Variable
	constants    []Constant
	params       []TypeParameter
	variants     []Variant
	placeholders []TypePlaceholder
	arguments    []TypeArguments

	moduleIndex map[string]ModuleID
	main        ModuleID
}

// NewDatabase creates an empty database seeded with the built-in classes.
func NewDatabase() *Database {
	db := &Database{
		moduleIndex: make(map[string]ModuleID, 8),
	}
	// Slot 0 of every arena is the No*ID sentinel.
	db.modules = append(db.modules, Module{})
	db.classes = append(db.classes, Class{})
	db.traits = append(db.traits, Trait{})
	db.methods = append(db.methods, Method{})
	db.closures = append(db.closures, Closure{})
	db.fields = append(db.fields, Field{})
	db.variables = append(db.variables, Variable{})
	db.constants = append(db.constants, Constant{})
	db.params = append(db.params, TypeParameter{})
	db.variants = append(db.variants, Variant{})
	db.placeholders = append(db.placeholders, TypePlaceholder{})
	db.arguments = append(db.arguments, TypeArguments{})

	for _, name := range []string{
		"String", "ByteArray", "Int", "Float", "Bool", "Nil", "Future",
		"Tuple1", "Tuple2", "Tuple3", "Tuple4", "Tuple5", "Tuple6",
		"Tuple7", "Tuple8", "Array",
	} {
		AllocClass(db, name, NoModuleID, VisPublic, false)
	}

	// The generic built-ins carry their parameters from the start, so
	// instantiating a seeded tuple or array assigns real arguments.
	ClassFuture.NewTypeParameter(db, "T")
	ClassArray.NewTypeParameter(db, "T")
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for id := ClassTuple1; id <= ClassTuple8; id++ {
		arity := int(id-ClassTuple1) + 1
		for _, name := range names[:arity] {
			id.NewTypeParameter(db, name)
		}
	}
	return db
}

// NewModule registers a module under its fully qualified name. Allocating
// the same name twice returns the existing module.
func (db *Database) NewModule(name string) ModuleID {
	if id, ok := db.moduleIndex[name]; ok {
		return id
	}
	id := ModuleID(arenaIndex(len(db.modules), "modules"))
	db.modules = append(db.modules, Module{
		Name:      name,
		Classes:   make(map[string]ClassID),
		Traits:    make(map[string]TraitID),
		Constants: make(map[string]ConstantID),
		Methods:   make(map[string]MethodID),
	})
	db.moduleIndex[name] = id
	return id
}

// ModuleByName returns the module registered under name. Looking up a name
// that was never registered is a bug in the surrounding compiler stages
// and panics.
func (db *Database) ModuleByName(name string) ModuleID {
	id, ok := db.moduleIndex[name]
	if !ok {
		panic(fmt.Sprintf("types: module %q was never registered", name))
	}
	return id
}

// HasModule reports whether a module name is registered.
func (db *Database) HasModule(name string) bool {
	_, ok := db.moduleIndex[name]
	return ok
}

// SetMainModule designates the entry-point module.
func (db *Database) SetMainModule(id ModuleID) { db.main = id }

// MainModule returns the designated entry-point module.
func (db *Database) MainModule() ModuleID { return db.main }

// NumberOfModules reports how many modules are registered.
func (db *Database) NumberOfModules() int { return len(db.modules) - 1 }

// NumberOfClasses reports how many classes are allocated, built-ins
// included.
func (db *Database) NumberOfClasses() int { return len(db.classes) - 1 }

// NumberOfTraits reports how many traits are allocated.
func (db *Database) NumberOfTraits() int { return len(db.traits) - 1 }

// NumberOfMethods reports how many methods are allocated.
func (db *Database) NumberOfMethods() int { return len(db.methods) - 1 }

// NumberOfPlaceholders reports how many placeholders are allocated.
func (db *Database) NumberOfPlaceholders() int { return len(db.placeholders) - 1 }

// arenaIndex guards arena growth: allocating past uint32 range means the
// surrounding compiler went off the rails, so it is fatal.
func arenaIndex(length int, what string) uint32 {
	value, err := safecast.Conv[uint32](length)
	if err != nil {
		panic(fmt.Errorf("types: %s arena overflow: %w", what, err))
	}
	return value
}
