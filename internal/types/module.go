package types

// Module groups the classes, traits, constants and module methods declared
// in one source module.
type Module struct {
	Name      string
	Classes   map[string]ClassID
	Traits    map[string]TraitID
	Constants map[string]ConstantID
	Methods   map[string]MethodID
}

func (id ModuleID) get(db *Database) *Module {
	return &db.modules[id]
}

// Name returns the fully qualified module name.
func (id ModuleID) Name(db *Database) string {
	return id.get(db).Name
}

// AddClass registers a class under its name inside the module.
func (id ModuleID) AddClass(db *Database, class ClassID) {
	m := id.get(db)
	m.Classes[class.Name(db)] = class
}

// AddTrait registers a trait under its name inside the module.
func (id ModuleID) AddTrait(db *Database, trait TraitID) {
	m := id.get(db)
	m.Traits[trait.Name(db)] = trait
}

// AddConstant registers a constant under its name inside the module.
func (id ModuleID) AddConstant(db *Database, constant ConstantID) {
	m := id.get(db)
	m.Constants[constant.Name(db)] = constant
}

// AddMethod registers a module method under its name.
func (id ModuleID) AddMethod(db *Database, method MethodID) {
	m := id.get(db)
	m.Methods[method.Name(db)] = method
}

// Class looks up a class declared in this module.
func (id ModuleID) Class(db *Database, name string) (ClassID, bool) {
	c, ok := id.get(db).Classes[name]
	return c, ok
}

// Trait looks up a trait declared in this module.
func (id ModuleID) Trait(db *Database, name string) (TraitID, bool) {
	t, ok := id.get(db).Traits[name]
	return t, ok
}

// Constant looks up a constant declared in this module.
func (id ModuleID) Constant(db *Database, name string) (ConstantID, bool) {
	c, ok := id.get(db).Constants[name]
	return c, ok
}

// Method looks up a module method.
func (id ModuleID) Method(db *Database, name string) (MethodID, bool) {
	m, ok := id.get(db).Methods[name]
	return m, ok
}
