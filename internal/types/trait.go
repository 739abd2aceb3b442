package types

// Trait is an interface-like contract: required methods, default methods,
// generic parameters and the traits it itself requires.
type Trait struct {
	Name            string
	Module          ModuleID
	Visibility      Visibility
	TypeParameters  []TypeParameterID
	Requirements    []TraitInstance
	DefaultMethods  map[string]MethodID
	RequiredMethods map[string]MethodID

	// InheritedArguments composes the parameter assignments of all
	// ancestor traits, computed when a requirement is added so deep
	// requirement chains need no runtime walk.
	InheritedArguments TypeArguments
}

// AllocTrait appends a trait to the database and returns its ID.
func AllocTrait(db *Database, name string, module ModuleID, vis Visibility) TraitID {
	id := TraitID(arenaIndex(len(db.traits), "traits"))
	db.traits = append(db.traits, Trait{
		Name:            name,
		Module:          module,
		Visibility:      vis,
		DefaultMethods:  make(map[string]MethodID),
		RequiredMethods: make(map[string]MethodID),
	})
	return id
}

func (id TraitID) get(db *Database) *Trait { return &db.traits[id] }

// Name returns the trait name.
func (id TraitID) Name(db *Database) string { return id.get(db).Name }

// Module returns the module the trait is declared in.
func (id TraitID) Module(db *Database) ModuleID { return id.get(db).Module }

// Visibility returns the declared visibility.
func (id TraitID) Visibility(db *Database) Visibility { return id.get(db).Visibility }

// IsGeneric reports whether the trait declares type parameters.
func (id TraitID) IsGeneric(db *Database) bool { return len(id.get(db).TypeParameters) > 0 }

// NewTypeParameter declares a generic parameter on the trait.
func (id TraitID) NewTypeParameter(db *Database, name string) TypeParameterID {
	pid := AllocTypeParameter(db, name)
	t := id.get(db)
	t.TypeParameters = append(t.TypeParameters, pid)
	return pid
}

// TypeParameters returns the declared parameters in order.
func (id TraitID) TypeParameters(db *Database) []TypeParameterID {
	return id.get(db).TypeParameters
}

// AddRequirement records that the trait requires another trait. The
// ancestor's inherited argument chain is folded into this trait's chain
// right away, together with the requirement's own assignments.
func (id TraitID) AddRequirement(db *Database, requirement TraitInstance) {
	base := requirement.Of.get(db).InheritedArguments.Clone()
	if requirement.Of.IsGeneric(db) {
		requirement.Arguments.CopyInto(db, &base)
	}
	t := id.get(db)
	base.MoveInto(&t.InheritedArguments)
	t.Requirements = append(t.Requirements, requirement)
}

// Requirements returns the directly required traits.
func (id TraitID) Requirements(db *Database) []TraitInstance {
	return id.get(db).Requirements
}

// InheritedTypeArguments exposes the composed ancestor parameter chain.
func (id TraitID) InheritedTypeArguments(db *Database) *TypeArguments {
	return &id.get(db).InheritedArguments
}

// AddDefaultMethod registers a method with a default implementation.
func (id TraitID) AddDefaultMethod(db *Database, method MethodID) {
	id.get(db).DefaultMethods[method.Name(db)] = method
}

// AddRequiredMethod registers a method implementors must provide.
func (id TraitID) AddRequiredMethod(db *Database, method MethodID) {
	id.get(db).RequiredMethods[method.Name(db)] = method
}

// MethodExists reports whether the trait itself declares the method.
func (id TraitID) MethodExists(db *Database, name string) bool {
	t := id.get(db)
	_, def := t.DefaultMethods[name]
	_, req := t.RequiredMethods[name]
	return def || req
}

// Method looks up a method, walking the requirement chain when the trait
// does not declare it directly.
func (id TraitID) Method(db *Database, name string) (MethodID, bool) {
	t := id.get(db)
	if m, ok := t.DefaultMethods[name]; ok {
		return m, true
	}
	if m, ok := t.RequiredMethods[name]; ok {
		return m, true
	}
	for _, req := range t.Requirements {
		if m, ok := req.Of.Method(db, name); ok {
			return m, true
		}
	}
	return NoMethodID, false
}

// RequiresTrait reports whether the trait transitively requires the given
// trait. Requirement cycles are a declaration error reported elsewhere;
// the walk guards against them anyway.
func (id TraitID) RequiresTrait(db *Database, other TraitID) bool {
	return id.requiresTrait(db, other, make(map[TraitID]struct{}))
}

func (id TraitID) requiresTrait(db *Database, other TraitID, seen map[TraitID]struct{}) bool {
	if _, ok := seen[id]; ok {
		return false
	}
	seen[id] = struct{}{}
	for _, req := range id.get(db).Requirements {
		if req.Of == other || req.Of.requiresTrait(db, other, seen) {
			return true
		}
	}
	return false
}
