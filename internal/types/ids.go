package types

// Every entity in the Database is addressed by a small copyable index.
// Index 0 of every arena is reserved as the "absent" sentinel, so the zero
// value of any ID means "no such entity". IDs are only meaningful for the
// Database that produced them.

// ModuleID identifies a module in the database.
type ModuleID uint32

// NoModuleID marks the absence of a module reference.
const NoModuleID ModuleID = 0

// IsValid reports whether the module ID refers to an allocated module.
func (id ModuleID) IsValid() bool { return id != NoModuleID }

// ClassID identifies a class in the database.
type ClassID uint32

// NoClassID marks the absence of a class reference.
const NoClassID ClassID = 0

// IsValid reports whether the class ID refers to an allocated class.
func (id ClassID) IsValid() bool { return id != NoClassID }

// TraitID identifies a trait in the database.
type TraitID uint32

// NoTraitID marks the absence of a trait reference.
const NoTraitID TraitID = 0

// IsValid reports whether the trait ID refers to an allocated trait.
func (id TraitID) IsValid() bool { return id != NoTraitID }

// MethodID identifies a method in the database.
type MethodID uint32

// NoMethodID marks the absence of a method reference.
const NoMethodID MethodID = 0

// IsValid reports whether the method ID refers to an allocated method.
func (id MethodID) IsValid() bool { return id != NoMethodID }

// ClosureID identifies a closure in the database.
type ClosureID uint32

// NoClosureID marks the absence of a closure reference.
const NoClosureID ClosureID = 0

// IsValid reports whether the closure ID refers to an allocated closure.
func (id ClosureID) IsValid() bool { return id != NoClosureID }

// FieldID identifies a class field in the database.
type FieldID uint32

// NoFieldID marks the absence of a field reference.
const NoFieldID FieldID = 0

// IsValid reports whether the field ID refers to an allocated field.
func (id FieldID) IsValid() bool { return id != NoFieldID }

// VariableID identifies a local variable in the database.
type VariableID uint32

// NoVariableID marks the absence of a variable reference.
const NoVariableID VariableID = 0

// IsValid reports whether the variable ID refers to an allocated variable.
func (id VariableID) IsValid() bool { return id != NoVariableID }

// ConstantID identifies a module constant in the database.
type ConstantID uint32

// NoConstantID marks the absence of a constant reference.
const NoConstantID ConstantID = 0

// IsValid reports whether the constant ID refers to an allocated constant.
func (id ConstantID) IsValid() bool { return id != NoConstantID }

// TypeParameterID identifies a generic type parameter in the database.
type TypeParameterID uint32

// NoTypeParameterID marks the absence of a type parameter reference.
const NoTypeParameterID TypeParameterID = 0

// IsValid reports whether the ID refers to an allocated type parameter.
func (id TypeParameterID) IsValid() bool { return id != NoTypeParameterID }

// VariantID identifies an enum variant in the database.
type VariantID uint32

// NoVariantID marks the absence of a variant reference.
const NoVariantID VariantID = 0

// IsValid reports whether the variant ID refers to an allocated variant.
func (id VariantID) IsValid() bool { return id != NoVariantID }

// PlaceholderID identifies a type placeholder in the database.
type PlaceholderID uint32

// NoPlaceholderID marks the absence of a placeholder reference.
const NoPlaceholderID PlaceholderID = 0

// IsValid reports whether the ID refers to an allocated placeholder.
func (id PlaceholderID) IsValid() bool { return id != NoPlaceholderID }

// ArgumentsID identifies a TypeArguments table in the database. Generic
// instances carry this index instead of the mapping itself, keeping them
// cheap to copy.
type ArgumentsID uint32

// NoArgumentsID marks the absence of assigned type arguments.
const NoArgumentsID ArgumentsID = 0

// IsValid reports whether the ID refers to an allocated arguments table.
func (id ArgumentsID) IsValid() bool { return id != NoArgumentsID }

// Visibility controls what may reference an entity.
type Visibility uint8

const (
	// VisPrivate limits access to the defining module.
	VisPrivate Visibility = iota
	// VisPublic allows access from any module.
	VisPublic
)

func (v Visibility) String() string {
	if v == VisPublic {
		return "public"
	}
	return "private"
}
