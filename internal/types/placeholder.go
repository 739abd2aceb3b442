package types

// TypePlaceholder is a shared inference cell for "a type not yet known".
// It starts out unassigned and is filled in exactly once per check pass;
// assignment cascades to dependent placeholders so that several literal
// positions resolve together (repeated empty-array elements, say).
type TypePlaceholder struct {
	value     TypeRef // zero value (Unknown) while unassigned
	depending []PlaceholderID
}

// AllocTypePlaceholder appends an unassigned placeholder to the database
// and returns its ID.
func AllocTypePlaceholder(db *Database) PlaceholderID {
	id := PlaceholderID(arenaIndex(len(db.placeholders), "placeholders"))
	db.placeholders = append(db.placeholders, TypePlaceholder{})
	return id
}

func (id PlaceholderID) get(db *Database) *TypePlaceholder {
	return &db.placeholders[id]
}

// Value returns the assigned type, or false while the placeholder is
// still open.
func (id PlaceholderID) Value(db *Database) (TypeRef, bool) {
	v := id.get(db).value
	if v.Kind == KindUnknown {
		return TypeRef{}, false
	}
	return v, true
}

// IsAssigned reports whether the placeholder has resolved.
func (id PlaceholderID) IsAssigned(db *Database) bool {
	_, ok := id.Value(db)
	return ok
}

// Assign resolves the placeholder and cascades to its dependents.
// Assigning a placeholder to itself is a no-op, and an already assigned
// placeholder keeps its value: inference is monotonic within a check pass.
func (id PlaceholderID) Assign(db *Database, value TypeRef) {
	if value.Kind == KindPlaceholder && value.Placeholder == id {
		return
	}
	p := id.get(db)
	if p.value.Kind != KindUnknown {
		return
	}
	p.value = value
	for _, dep := range p.depending {
		dep.Assign(db, value)
	}
}

// AddDepending records a one-way dependency: when this placeholder
// resolves, other resolves to the same value. Open placeholders are never
// merged into each other, which keeps inference independent of check
// order.
func (id PlaceholderID) AddDepending(db *Database, other PlaceholderID) {
	if id == other {
		return
	}
	p := id.get(db)
	for _, dep := range p.depending {
		if dep == other {
			return
		}
	}
	p.depending = append(p.depending, other)
}
