package types

// TypeArguments maps a generic's type parameters to the types assigned to
// them at one particular use site. Instances refer to a table by
// ArgumentsID so they stay cheap to copy; a TypeContext owns its working
// table directly.
type TypeArguments struct {
	mapping map[TypeParameterID]TypeRef
}

// NewTypeArguments returns an empty assignment table.
func NewTypeArguments() TypeArguments {
	return TypeArguments{mapping: make(map[TypeParameterID]TypeRef)}
}

// Assign records the value for a parameter, replacing any earlier value.
func (a *TypeArguments) Assign(param TypeParameterID, value TypeRef) {
	if a.mapping == nil {
		a.mapping = make(map[TypeParameterID]TypeRef)
	}
	a.mapping[param] = value
}

// Get returns the assigned value for a parameter.
func (a *TypeArguments) Get(param TypeParameterID) (TypeRef, bool) {
	v, ok := a.mapping[param]
	return v, ok
}

// Len reports how many parameters have assignments.
func (a *TypeArguments) Len() int { return len(a.mapping) }

// Clone returns an independent copy of the table.
func (a *TypeArguments) Clone() TypeArguments {
	out := TypeArguments{mapping: make(map[TypeParameterID]TypeRef, len(a.mapping))}
	for k, v := range a.mapping {
		out.mapping[k] = v
	}
	return out
}

// CopyInto copies all assignments into other, overwriting collisions.
func (a *TypeArguments) CopyInto(other *TypeArguments) {
	for k, v := range a.mapping {
		other.Assign(k, v)
	}
}

// MoveInto is CopyInto for a table that is no longer needed afterwards.
func (a *TypeArguments) MoveInto(other *TypeArguments) {
	a.CopyInto(other)
	a.mapping = nil
}

// Params returns the parameters that have assignments, in no particular
// order.
func (a *TypeArguments) Params() []TypeParameterID {
	out := make([]TypeParameterID, 0, len(a.mapping))
	for k := range a.mapping {
		out = append(out, k)
	}
	return out
}

// AllocTypeArguments stores a table in the database so instances can refer
// to it by index.
func AllocTypeArguments(db *Database, args TypeArguments) ArgumentsID {
	id := ArgumentsID(arenaIndex(len(db.arguments), "type arguments"))
	db.arguments = append(db.arguments, args)
	return id
}

func (id ArgumentsID) get(db *Database) *TypeArguments {
	return &db.arguments[id]
}

// Get returns the assigned value for a parameter. The sentinel table is
// empty, so unassigned lookups simply miss.
func (id ArgumentsID) Get(db *Database, param TypeParameterID) (TypeRef, bool) {
	if !id.IsValid() {
		return TypeRef{}, false
	}
	return id.get(db).Get(param)
}

// CopyInto copies the table's assignments into a working table.
func (id ArgumentsID) CopyInto(db *Database, other *TypeArguments) {
	if !id.IsValid() {
		return
	}
	id.get(db).CopyInto(other)
}

// Len reports how many parameters the table assigns.
func (id ArgumentsID) Len(db *Database) int {
	if !id.IsValid() {
		return 0
	}
	return id.get(db).Len()
}
