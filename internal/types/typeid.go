package types

// TypeIdKind selects what a TypeId names.
type TypeIdKind uint8

const (
	// TypeIdInvalid is the zero value; it names nothing.
	TypeIdInvalid TypeIdKind = iota
	// TypeIdClass names a class without instantiation.
	TypeIdClass
	// TypeIdTrait names a trait without instantiation.
	TypeIdTrait
	// TypeIdModule names a module.
	TypeIdModule
	// TypeIdClassInstance names a class plus its type arguments.
	TypeIdClassInstance
	// TypeIdTraitInstance names a trait plus its type arguments.
	TypeIdTraitInstance
	// TypeIdTypeParameter names a substitutable generic parameter.
	TypeIdTypeParameter
	// TypeIdRigidTypeParameter names a parameter that must not be
	// substituted further; used while checking a generic's own body.
	TypeIdRigidTypeParameter
	// TypeIdClosure names a closure.
	TypeIdClosure
)

// TypeId is the identity of a named type, independent of how it is used.
// It is a compact descriptor: Kind selects the arena Index points into,
// and Arguments carries the instantiation for the instance kinds.
type TypeId struct {
	Kind      TypeIdKind
	Index     uint32
	Arguments ArgumentsID
}

// IsValid reports whether the TypeId names anything.
func (t TypeId) IsValid() bool { return t.Kind != TypeIdInvalid }

// ClassType names a class without instantiation.
func ClassType(id ClassID) TypeId {
	return TypeId{Kind: TypeIdClass, Index: uint32(id)}
}

// TraitType names a trait without instantiation.
func TraitType(id TraitID) TypeId {
	return TypeId{Kind: TypeIdTrait, Index: uint32(id)}
}

// ModuleType names a module.
func ModuleType(id ModuleID) TypeId {
	return TypeId{Kind: TypeIdModule, Index: uint32(id)}
}

// ClosureType names a closure.
func ClosureType(id ClosureID) TypeId {
	return TypeId{Kind: TypeIdClosure, Index: uint32(id)}
}

// ParameterType names a substitutable type parameter.
func ParameterType(id TypeParameterID) TypeId {
	return TypeId{Kind: TypeIdTypeParameter, Index: uint32(id)}
}

// RigidParameterType names a parameter pinned to itself.
func RigidParameterType(id TypeParameterID) TypeId {
	return TypeId{Kind: TypeIdRigidTypeParameter, Index: uint32(id)}
}

// ClassInstance is a class plus an index into the type-argument table:
// "this generic, instantiated this way".
type ClassInstance struct {
	Of        ClassID
	Arguments ArgumentsID
}

// NewClassInstance wraps a class with no assigned arguments. For
// non-generic classes this is the only instance there is; for generic
// ones it is the fully lenient, empty-literal instance.
func NewClassInstance(of ClassID) ClassInstance {
	return ClassInstance{Of: of}
}

// GenericClassInstance stores the given assignments and wraps the class
// with them.
func GenericClassInstance(db *Database, of ClassID, args TypeArguments) ClassInstance {
	return ClassInstance{Of: of, Arguments: AllocTypeArguments(db, args)}
}

// ClassInstanceWithTypes assigns the class parameters in order from the
// given list, for call sites that know all arguments up front.
func ClassInstanceWithTypes(db *Database, of ClassID, args []TypeRef) ClassInstance {
	table := NewTypeArguments()
	for i, param := range of.TypeParameters(db) {
		if i >= len(args) {
			break
		}
		table.Assign(param, args[i])
	}
	return GenericClassInstance(db, of, table)
}

// ClassInstanceWithPlaceholders assigns a fresh placeholder to every
// parameter, for call sites that know none of the arguments yet.
func ClassInstanceWithPlaceholders(db *Database, of ClassID) ClassInstance {
	table := NewTypeArguments()
	for _, param := range of.TypeParameters(db) {
		table.Assign(param, Placeholder(AllocTypePlaceholder(db)))
	}
	return GenericClassInstance(db, of, table)
}

// AsTypeId converts the instance into a TypeId.
func (i ClassInstance) AsTypeId() TypeId {
	return TypeId{Kind: TypeIdClassInstance, Index: uint32(i.Of), Arguments: i.Arguments}
}

// TraitInstance is a trait plus an index into the type-argument table.
type TraitInstance struct {
	Of        TraitID
	Arguments ArgumentsID
}

// NewTraitInstance wraps a trait with no assigned arguments.
func NewTraitInstance(of TraitID) TraitInstance {
	return TraitInstance{Of: of}
}

// GenericTraitInstance stores the given assignments and wraps the trait
// with them.
func GenericTraitInstance(db *Database, of TraitID, args TypeArguments) TraitInstance {
	return TraitInstance{Of: of, Arguments: AllocTypeArguments(db, args)}
}

// TraitInstanceWithTypes assigns the trait parameters in order from the
// given list.
func TraitInstanceWithTypes(db *Database, of TraitID, args []TypeRef) TraitInstance {
	table := NewTypeArguments()
	for i, param := range of.TypeParameters(db) {
		if i >= len(args) {
			break
		}
		table.Assign(param, args[i])
	}
	return GenericTraitInstance(db, of, table)
}

// AsTypeId converts the instance into a TypeId.
func (i TraitInstance) AsTypeId() TypeId {
	return TypeId{Kind: TypeIdTraitInstance, Index: uint32(i.Of), Arguments: i.Arguments}
}

// Method looks up a method on the trait behind the instance.
func (i TraitInstance) Method(db *Database, name string) (MethodID, bool) {
	return i.Of.Method(db, name)
}

// ClassID returns the class for the class kinds.
func (t TypeId) ClassID() ClassID { return ClassID(t.Index) }

// TraitID returns the trait for the trait kinds.
func (t TypeId) TraitID() TraitID { return TraitID(t.Index) }

// ModuleID returns the module for the module kind.
func (t TypeId) ModuleID() ModuleID { return ModuleID(t.Index) }

// ClosureID returns the closure for the closure kind.
func (t TypeId) ClosureID() ClosureID { return ClosureID(t.Index) }

// ParameterID returns the parameter for both parameter kinds.
func (t TypeId) ParameterID() TypeParameterID { return TypeParameterID(t.Index) }

// ClassInstance returns the instance view of a class-instance TypeId.
func (t TypeId) ClassInstance() ClassInstance {
	return ClassInstance{Of: ClassID(t.Index), Arguments: t.Arguments}
}

// TraitInstance returns the instance view of a trait-instance TypeId.
func (t TypeId) TraitInstance() TraitInstance {
	return TraitInstance{Of: TraitID(t.Index), Arguments: t.Arguments}
}

// Name returns the display name of whatever the TypeId names.
func (t TypeId) Name(db *Database) string {
	switch t.Kind {
	case TypeIdClass, TypeIdClassInstance:
		return t.ClassID().Name(db)
	case TypeIdTrait, TypeIdTraitInstance:
		return t.TraitID().Name(db)
	case TypeIdModule:
		return t.ModuleID().Name(db)
	case TypeIdTypeParameter, TypeIdRigidTypeParameter:
		return t.ParameterID().Name(db)
	case TypeIdClosure:
		return "fn"
	default:
		return "<invalid>"
	}
}
