package types

// RefKind is the ownership qualifier or special marker of a TypeRef.
type RefKind uint8

const (
	// KindUnknown is the default "not yet computed" sentinel. It is
	// deliberately compatible with nothing, so an unresolved type fails
	// loudly at the next check instead of matching silently.
	KindUnknown RefKind = iota
	// KindOwned is a value the current scope owns.
	KindOwned
	// KindUni is a unique value: owned and never aliased.
	KindUni
	// KindRef is an immutable borrow.
	KindRef
	// KindRefUni is an immutable borrow of a unique value.
	KindRefUni
	// KindMut is a mutable borrow.
	KindMut
	// KindMutUni is a mutable borrow of a unique value.
	KindMutUni
	// KindInfer is ownership-erased, used only for type parameters.
	KindInfer
	// KindOwnedSelf is an owned value of whatever Self resolves to.
	KindOwnedSelf
	// KindRefSelf is an immutable borrow of Self.
	KindRefSelf
	// KindMutSelf is a mutable borrow of Self.
	KindMutSelf
	// KindUniSelf is a unique value of Self.
	KindUniSelf
	// KindNever is the bottom type of non-returning expressions.
	KindNever
	// KindAny is the FFI escape hatch for owned foreign values.
	KindAny
	// KindRefAny is the FFI escape hatch for borrowed foreign values.
	KindRefAny
	// KindError poisons a position after a reported type error so
	// dependent expressions keep checking without cascading diagnostics.
	KindError
	// KindPlaceholder defers to an inference cell.
	KindPlaceholder
)

// TypeRef is a usage-site type: an ownership qualifier on top of a TypeId,
// or one of the special markers. Created fresh at every use, never
// interned.
type TypeRef struct {
	Kind        RefKind
	Id          TypeId
	Placeholder PlaceholderID
}

// Owned wraps a TypeId as an owned value.
func Owned(id TypeId) TypeRef { return TypeRef{Kind: KindOwned, Id: id} }

// Uni wraps a TypeId as a unique value.
func Uni(id TypeId) TypeRef { return TypeRef{Kind: KindUni, Id: id} }

// Ref wraps a TypeId as an immutable borrow.
func Ref(id TypeId) TypeRef { return TypeRef{Kind: KindRef, Id: id} }

// RefUni wraps a TypeId as an immutable borrow of a unique value.
func RefUni(id TypeId) TypeRef { return TypeRef{Kind: KindRefUni, Id: id} }

// Mut wraps a TypeId as a mutable borrow.
func Mut(id TypeId) TypeRef { return TypeRef{Kind: KindMut, Id: id} }

// MutUni wraps a TypeId as a mutable borrow of a unique value.
func MutUni(id TypeId) TypeRef { return TypeRef{Kind: KindMutUni, Id: id} }

// Infer wraps a TypeId with ownership erased; used for type parameters in
// signatures whose ownership follows the assigned type.
func Infer(id TypeId) TypeRef { return TypeRef{Kind: KindInfer, Id: id} }

// OwnedSelf is an owned Self.
func OwnedSelf() TypeRef { return TypeRef{Kind: KindOwnedSelf} }

// RefSelf is a borrowed Self.
func RefSelf() TypeRef { return TypeRef{Kind: KindRefSelf} }

// MutSelf is a mutably borrowed Self.
func MutSelf() TypeRef { return TypeRef{Kind: KindMutSelf} }

// UniSelf is a unique Self.
func UniSelf() TypeRef { return TypeRef{Kind: KindUniSelf} }

// Never is the bottom type.
func Never() TypeRef { return TypeRef{Kind: KindNever} }

// Any is the owned FFI escape hatch.
func Any() TypeRef { return TypeRef{Kind: KindAny} }

// RefAny is the borrowed FFI escape hatch.
func RefAny() TypeRef { return TypeRef{Kind: KindRefAny} }

// Error is the poison type of failed checks.
func Error() TypeRef { return TypeRef{Kind: KindError} }

// Unknown is the uninitialized sentinel.
func Unknown() TypeRef { return TypeRef{Kind: KindUnknown} }

// Placeholder defers to an inference cell.
func Placeholder(id PlaceholderID) TypeRef {
	return TypeRef{Kind: KindPlaceholder, Placeholder: id}
}

// hasId reports whether the variant carries a TypeId payload.
func (t TypeRef) hasId() bool {
	switch t.Kind {
	case KindOwned, KindUni, KindRef, KindRefUni, KindMut, KindMutUni, KindInfer:
		return true
	default:
		return false
	}
}

// typeParameter returns the parameter behind a non-rigid parameter
// reference of any qualifier.
func (t TypeRef) typeParameter() (TypeParameterID, bool) {
	if t.hasId() && t.Id.Kind == TypeIdTypeParameter {
		return t.Id.ParameterID(), true
	}
	return NoTypeParameterID, false
}

// IsError reports whether the type is the poison marker.
func (t TypeRef) IsError() bool { return t.Kind == KindError }

// IsNever reports whether the type is the bottom type.
func (t TypeRef) IsNever() bool { return t.Kind == KindNever }

// IsUnknown reports whether the type was never computed.
func (t TypeRef) IsUnknown() bool { return t.Kind == KindUnknown }

// IsPlaceholder reports whether the type defers to an inference cell.
func (t TypeRef) IsPlaceholder() bool { return t.Kind == KindPlaceholder }

// IsOwnedOrUni reports whether the value can be moved by the holder.
func (t TypeRef) IsOwnedOrUni() bool {
	switch t.Kind {
	case KindOwned, KindUni, KindOwnedSelf, KindUniSelf:
		return true
	default:
		return false
	}
}

// IsMutable reports whether the value may be mutated through this usage.
func (t TypeRef) IsMutable() bool {
	switch t.Kind {
	case KindOwned, KindUni, KindMut, KindMutUni, KindOwnedSelf, KindMutSelf, KindUniSelf, KindAny:
		return true
	default:
		return false
	}
}

// AsRef converts the usage into an immutable borrow of the same type.
func (t TypeRef) AsRef() TypeRef {
	switch t.Kind {
	case KindOwned, KindMut, KindInfer:
		return Ref(t.Id)
	case KindUni, KindMutUni:
		return RefUni(t.Id)
	case KindOwnedSelf, KindMutSelf:
		return RefSelf()
	case KindUniSelf:
		return UniSelf()
	case KindAny:
		return RefAny()
	default:
		return t
	}
}

// ClassID returns the class behind the usage when it names a class or a
// class instance directly.
func (t TypeRef) ClassID(db *Database) (ClassID, bool) {
	if !t.hasId() {
		return NoClassID, false
	}
	switch t.Id.Kind {
	case TypeIdClass, TypeIdClassInstance:
		return t.Id.ClassID(), true
	default:
		return NoClassID, false
	}
}

// IsInferred reports whether no open placeholders remain anywhere inside
// the type. Codegen and layout generation only run once this holds for
// every checked expression.
func (t TypeRef) IsInferred(db *Database) bool {
	return t.isInferred(db, 0)
}

func (t TypeRef) isInferred(db *Database, depth int) bool {
	if depth > MaxTypeDepth {
		return false
	}
	switch t.Kind {
	case KindUnknown:
		return false
	case KindPlaceholder:
		v, ok := t.Placeholder.Value(db)
		if !ok {
			return false
		}
		return v.isInferred(db, depth+1)
	}
	if !t.hasId() {
		return true
	}
	switch t.Id.Kind {
	case TypeIdClassInstance:
		return argumentsInferred(db, t.Id.ClassID().TypeParameters(db), t.Id.Arguments, depth)
	case TypeIdTraitInstance:
		return argumentsInferred(db, t.Id.TraitID().TypeParameters(db), t.Id.Arguments, depth)
	case TypeIdClosure:
		c := t.Id.ClosureID()
		for _, arg := range c.Arguments(db) {
			if !arg.Type.isInferred(db, depth+1) {
				return false
			}
		}
		// An Unknown throw or return type means "not declared", which is
		// fine; a lingering placeholder inside a declared one is not.
		if typ := c.ThrowType(db); !typ.IsUnknown() && !typ.isInferred(db, depth+1) {
			return false
		}
		if typ := c.ReturnType(db); !typ.IsUnknown() && !typ.isInferred(db, depth+1) {
			return false
		}
		return true
	default:
		return true
	}
}

func argumentsInferred(db *Database, params []TypeParameterID, args ArgumentsID, depth int) bool {
	for _, param := range params {
		if v, ok := args.Get(db, param); ok {
			if !v.isInferred(db, depth+1) {
				return false
			}
		}
	}
	return true
}
