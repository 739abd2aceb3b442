package types

// TraitImplementation records one `impl Trait for Class` together with the
// extra bounds of its `when` clause, if any.
type TraitImplementation struct {
	Instance TraitInstance
	Bounds   TypeBounds
}

// Class is a user-defined or built-in class: fields, methods, generic
// parameters, implemented traits and, for enums, the variant list.
type Class struct {
	Name           string
	Module         ModuleID
	Visibility     Visibility
	Enum           bool
	Fields         []FieldID
	TypeParameters []TypeParameterID
	Methods        map[string]MethodID
	Implemented    map[TraitID]TraitImplementation
	Variants       []VariantID
}

// AllocClass appends a class to the database and returns its ID.
func AllocClass(db *Database, name string, module ModuleID, vis Visibility, enum bool) ClassID {
	id := ClassID(arenaIndex(len(db.classes), "classes"))
	db.classes = append(db.classes, Class{
		Name:        name,
		Module:      module,
		Visibility:  vis,
		Enum:        enum,
		Methods:     make(map[string]MethodID),
		Implemented: make(map[TraitID]TraitImplementation),
	})
	return id
}

func (id ClassID) get(db *Database) *Class {
	return &db.classes[id]
}

// Name returns the class name.
func (id ClassID) Name(db *Database) string { return id.get(db).Name }

// Module returns the module the class is declared in.
func (id ClassID) Module(db *Database) ModuleID { return id.get(db).Module }

// Visibility returns the declared visibility.
func (id ClassID) Visibility(db *Database) Visibility { return id.get(db).Visibility }

// IsEnum reports whether the class is an enum class.
func (id ClassID) IsEnum(db *Database) bool { return id.get(db).Enum }

// IsBuiltin reports whether the class occupies one of the seeded slots.
func (id ClassID) IsBuiltin(db *Database) bool { return id >= ClassString && id <= LastBuiltinClass }

// IsGeneric reports whether the class declares type parameters.
func (id ClassID) IsGeneric(db *Database) bool { return len(id.get(db).TypeParameters) > 0 }

// IsTuple reports whether the class is one of the tuple built-ins.
func (id ClassID) IsTuple(db *Database) bool { return id >= ClassTuple1 && id <= ClassTuple8 }

// NewTypeParameter declares a generic parameter on the class.
func (id ClassID) NewTypeParameter(db *Database, name string) TypeParameterID {
	pid := AllocTypeParameter(db, name)
	c := id.get(db)
	c.TypeParameters = append(c.TypeParameters, pid)
	return pid
}

// TypeParameters returns the declared parameters in order.
func (id ClassID) TypeParameters(db *Database) []TypeParameterID {
	return id.get(db).TypeParameters
}

// NewField declares a field at the next index.
func (id ClassID) NewField(db *Database, name string, typ TypeRef, vis Visibility) FieldID {
	c := id.get(db)
	fid := AllocField(db, name, uint32(len(c.Fields)), typ, vis)
	c.Fields = append(c.Fields, fid)
	return fid
}

// Fields returns the declared fields in index order.
func (id ClassID) Fields(db *Database) []FieldID { return id.get(db).Fields }

// NumberOfFields returns the field count, used for layout generation.
func (id ClassID) NumberOfFields(db *Database) int { return len(id.get(db).Fields) }

// Field looks up a field by name.
func (id ClassID) Field(db *Database, name string) (FieldID, bool) {
	for _, fid := range id.get(db).Fields {
		if fid.Name(db) == name {
			return fid, true
		}
	}
	return NoFieldID, false
}

// AddMethod registers a method under its name.
func (id ClassID) AddMethod(db *Database, method MethodID) {
	id.get(db).Methods[method.Name(db)] = method
}

// Method looks up a method declared directly on the class.
func (id ClassID) Method(db *Database, name string) (MethodID, bool) {
	m, ok := id.get(db).Methods[name]
	return m, ok
}

// AddTraitImplementation records that the class implements a trait. A
// later implementation of the same trait replaces the earlier one; the
// semantic pass reports the redefinition.
func (id ClassID) AddTraitImplementation(db *Database, impl TraitImplementation) {
	id.get(db).Implemented[impl.Instance.Of] = impl
}

// TraitImplementation returns the implementation of the given trait.
func (id ClassID) TraitImplementation(db *Database, trait TraitID) (TraitImplementation, bool) {
	impl, ok := id.get(db).Implemented[trait]
	return impl, ok
}

// NewVariant declares an enum variant with the given member types.
func (id ClassID) NewVariant(db *Database, name string, members []TypeRef) VariantID {
	c := id.get(db)
	vid := AllocVariant(db, name, uint32(len(c.Variants)), members)
	c.Variants = append(c.Variants, vid)
	return vid
}

// Variants returns the enum variants in declaration order.
func (id ClassID) Variants(db *Database) []VariantID { return id.get(db).Variants }

// Variant looks up an enum variant by name.
func (id ClassID) Variant(db *Database, name string) (VariantID, bool) {
	for _, vid := range id.get(db).Variants {
		if vid.Name(db) == name {
			return vid, true
		}
	}
	return NoVariantID, false
}

// Field is a single class field.
type Field struct {
	Name       string
	Index      uint32
	Type       TypeRef
	Visibility Visibility
}

// AllocField appends a field to the database and returns its ID.
func AllocField(db *Database, name string, index uint32, typ TypeRef, vis Visibility) FieldID {
	id := FieldID(arenaIndex(len(db.fields), "fields"))
	db.fields = append(db.fields, Field{Name: name, Index: index, Type: typ, Visibility: vis})
	return id
}

func (id FieldID) get(db *Database) *Field { return &db.fields[id] }

// Name returns the field name.
func (id FieldID) Name(db *Database) string { return id.get(db).Name }

// Index returns the position of the field inside its class.
func (id FieldID) Index(db *Database) uint32 { return id.get(db).Index }

// Type returns the declared field type.
func (id FieldID) Type(db *Database) TypeRef { return id.get(db).Type }

// SetType overwrites the field type, used when declarations are processed
// in multiple passes.
func (id FieldID) SetType(db *Database, typ TypeRef) { id.get(db).Type = typ }

// Variant is a single enum variant.
type Variant struct {
	Name    string
	Index   uint32
	Members []TypeRef
}

// AllocVariant appends an enum variant to the database and returns its ID.
func AllocVariant(db *Database, name string, index uint32, members []TypeRef) VariantID {
	id := VariantID(arenaIndex(len(db.variants), "variants"))
	db.variants = append(db.variants, Variant{Name: name, Index: index, Members: members})
	return id
}

func (id VariantID) get(db *Database) *Variant { return &db.variants[id] }

// Name returns the variant name.
func (id VariantID) Name(db *Database) string { return id.get(db).Name }

// Index returns the variant's tag value inside its enum.
func (id VariantID) Index(db *Database) uint32 { return id.get(db).Index }

// Members returns the member types carried by the variant.
func (id VariantID) Members(db *Database) []TypeRef { return id.get(db).Members }
