package types

// TypeParameter is a declared generic slot together with the traits any
// assigned type must implement. "Rigid" is not a property of the
// parameter itself but of the TypeId referring to it; see AsRigidType.
type TypeParameter struct {
	Name         string
	Requirements []TraitInstance
}

// AllocTypeParameter appends a type parameter to the database and returns
// its ID.
func AllocTypeParameter(db *Database, name string) TypeParameterID {
	id := TypeParameterID(arenaIndex(len(db.params), "type parameters"))
	db.params = append(db.params, TypeParameter{Name: name})
	return id
}

func (id TypeParameterID) get(db *Database) *TypeParameter {
	return &db.params[id]
}

// Name returns the parameter name.
func (id TypeParameterID) Name(db *Database) string { return id.get(db).Name }

// AddRequirement adds a trait any assigned type must implement.
func (id TypeParameterID) AddRequirement(db *Database, requirement TraitInstance) {
	p := id.get(db)
	p.Requirements = append(p.Requirements, requirement)
}

// Requirements returns the required traits in declaration order.
func (id TypeParameterID) Requirements(db *Database) []TraitInstance {
	return id.get(db).Requirements
}

// CloneForBound allocates a parameter carrying the union of the original
// requirements and the extra ones of a `when` clause. Used only while
// checking one bounded trait implementation.
func (id TypeParameterID) CloneForBound(db *Database, extra []TraitInstance) TypeParameterID {
	orig := id.get(db)
	reqs := make([]TraitInstance, 0, len(orig.Requirements)+len(extra))
	reqs = append(reqs, orig.Requirements...)
	reqs = append(reqs, extra...)
	nid := AllocTypeParameter(db, orig.Name)
	nid.get(db).Requirements = reqs
	return nid
}

// TypeBounds maps an original parameter to the replacement parameter used
// while checking one bounded trait implementation. The replacement's
// requirements are the union of the original's and the `when` clause.
type TypeBounds struct {
	mapping map[TypeParameterID]TypeParameterID
}

// NewTypeBounds returns an empty bounds table.
func NewTypeBounds() TypeBounds {
	return TypeBounds{mapping: make(map[TypeParameterID]TypeParameterID)}
}

// Set records a replacement for a parameter.
func (b *TypeBounds) Set(original, replacement TypeParameterID) {
	if b.mapping == nil {
		b.mapping = make(map[TypeParameterID]TypeParameterID)
	}
	b.mapping[original] = replacement
}

// Get returns the replacement for a parameter, if any.
func (b TypeBounds) Get(original TypeParameterID) (TypeParameterID, bool) {
	r, ok := b.mapping[original]
	return r, ok
}

// Len reports how many parameters are bounded.
func (b TypeBounds) Len() int { return len(b.mapping) }
