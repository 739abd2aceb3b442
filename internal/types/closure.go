package types

// Closure is an anonymous block: arguments, throw type and return type,
// but no receiver of its own.
type Closure struct {
	Moving    bool
	Arguments []Argument
	Throw     TypeRef
	Return    TypeRef
}

// AllocClosure appends a closure to the database and returns its ID.
func AllocClosure(db *Database, moving bool) ClosureID {
	id := ClosureID(arenaIndex(len(db.closures), "closures"))
	db.closures = append(db.closures, Closure{Moving: moving})
	return id
}

func (id ClosureID) get(db *Database) *Closure { return &db.closures[id] }

// IsMoving reports whether the closure captures by move.
func (id ClosureID) IsMoving(db *Database) bool { return id.get(db).Moving }

// NewArgument declares the next argument and its backing variable.
func (id ClosureID) NewArgument(db *Database, name string, typ TypeRef) VariableID {
	vid := AllocVariable(db, name, typ, false)
	c := id.get(db)
	c.Arguments = append(c.Arguments, Argument{Name: name, Type: typ, Variable: vid})
	return vid
}

// Arguments returns the declared arguments in order.
func (id ClosureID) Arguments(db *Database) []Argument { return id.get(db).Arguments }

// NumberOfArguments returns the argument count.
func (id ClosureID) NumberOfArguments(db *Database) int { return len(id.get(db).Arguments) }

// SetReturnType sets the declared return type.
func (id ClosureID) SetReturnType(db *Database, typ TypeRef) { id.get(db).Return = typ }

// ReturnType returns the declared return type.
func (id ClosureID) ReturnType(db *Database) TypeRef { return id.get(db).Return }

// SetThrowType sets the declared throw type.
func (id ClosureID) SetThrowType(db *Database, typ TypeRef) { id.get(db).Throw = typ }

// ThrowType returns the declared throw type.
func (id ClosureID) ThrowType(db *Database) TypeRef { return id.get(db).Throw }

// Variable is a local binding: method arguments, `let` bindings and the
// like.
type Variable struct {
	Name    string
	Type    TypeRef
	Mutable bool
}

// AllocVariable appends a variable to the database and returns its ID.
func AllocVariable(db *Database, name string, typ TypeRef, mutable bool) VariableID {
	id := VariableID(arenaIndex(len(db.variables), "variables"))
	db.variables = append(db.variables, Variable{Name: name, Type: typ, Mutable: mutable})
	return id
}

func (id VariableID) get(db *Database) *Variable { return &db.variables[id] }

// Name returns the variable name.
func (id VariableID) Name(db *Database) string { return id.get(db).Name }

// Type returns the variable type.
func (id VariableID) Type(db *Database) TypeRef { return id.get(db).Type }

// IsMutable reports whether the binding may be reassigned.
func (id VariableID) IsMutable(db *Database) bool { return id.get(db).Mutable }

// Constant is a module-level constant.
type Constant struct {
	Name       string
	Module     ModuleID
	Type       TypeRef
	Visibility Visibility
}

// AllocConstant appends a constant to the database and returns its ID.
func AllocConstant(db *Database, name string, module ModuleID, typ TypeRef, vis Visibility) ConstantID {
	id := ConstantID(arenaIndex(len(db.constants), "constants"))
	db.constants = append(db.constants, Constant{Name: name, Module: module, Type: typ, Visibility: vis})
	return id
}

func (id ConstantID) get(db *Database) *Constant { return &db.constants[id] }

// Name returns the constant name.
func (id ConstantID) Name(db *Database) string { return id.get(db).Name }

// Type returns the constant type.
func (id ConstantID) Type(db *Database) TypeRef { return id.get(db).Type }

// SetType overwrites the constant type once its value is checked.
func (id ConstantID) SetType(db *Database, typ TypeRef) { id.get(db).Type = typ }
