package types

import (
	"strings"
)

// FormatType renders a type for diagnostics.
func FormatType(db *Database, t TypeRef) string {
	f := NewTypeFormatter(db, TypeId{}, nil)
	f.FormatRef(t)
	return f.String()
}

// FormatTypeWithSelf renders a type with Self bound, so Self-relative
// usages display as the concrete type.
func FormatTypeWithSelf(db *Database, t TypeRef, self TypeId) string {
	f := NewTypeFormatter(db, self, nil)
	f.FormatRef(t)
	return f.String()
}

// FormatTypeWithContext renders a type as the given check context sees
// it, resolving recorded parameter assignments.
func FormatTypeWithContext(db *Database, t TypeRef, ctx *TypeContext) string {
	f := NewTypeFormatter(db, ctx.SelfType, ctx.Arguments)
	f.FormatRef(t)
	return f.String()
}

// TypeFormatter accumulates a human-readable rendering of a type. Descent
// depth is tracked and truncated to "..." past MaxFormatDepth, so cyclic
// generic definitions terminate.
type TypeFormatter struct {
	db        *Database
	self      TypeId
	arguments *TypeArguments
	buf       strings.Builder
	depth     int
}

// NewTypeFormatter creates a formatter. self and arguments may be the
// zero TypeId and nil when no context applies.
func NewTypeFormatter(db *Database, self TypeId, arguments *TypeArguments) *TypeFormatter {
	return &TypeFormatter{db: db, self: self, arguments: arguments}
}

// String returns everything formatted so far.
func (f *TypeFormatter) String() string { return f.buf.String() }

func (f *TypeFormatter) write(s string) { f.buf.WriteString(s) }

func (f *TypeFormatter) descend(fn func()) {
	if f.depth >= MaxFormatDepth {
		f.write("...")
		return
	}
	f.depth++
	fn()
	f.depth--
}

// FormatRef renders an ownership-qualified type usage.
func (f *TypeFormatter) FormatRef(t TypeRef) {
	f.formatRef(t, false)
}

// formatRef renders t; prefixed tells it an outer ownership prefix was
// already written, so a nested one would stutter and is dropped.
func (f *TypeFormatter) formatRef(t TypeRef, prefixed bool) {
	switch t.Kind {
	case KindOwned:
		f.formatId(t.Id, prefixed)
	case KindUni:
		f.prefix("uni ", prefixed)
		f.formatId(t.Id, true)
	case KindRef:
		f.prefix("ref ", prefixed)
		f.formatId(t.Id, true)
	case KindRefUni:
		f.prefix("ref uni ", prefixed)
		f.formatId(t.Id, true)
	case KindMut:
		f.prefix("mut ", prefixed)
		f.formatId(t.Id, true)
	case KindMutUni:
		f.prefix("mut uni ", prefixed)
		f.formatId(t.Id, true)
	case KindInfer:
		f.formatId(t.Id, prefixed)
	case KindOwnedSelf:
		f.formatSelf("", prefixed)
	case KindRefSelf:
		f.formatSelf("ref ", prefixed)
	case KindMutSelf:
		f.formatSelf("mut ", prefixed)
	case KindUniSelf:
		f.formatSelf("uni ", prefixed)
	case KindNever:
		f.write("Never")
	case KindAny:
		f.write("Any")
	case KindRefAny:
		f.prefix("ref ", prefixed)
		f.write("Any")
	case KindError:
		f.write("<error>")
	case KindUnknown:
		f.write("<unknown>")
	case KindPlaceholder:
		if v, ok := t.Placeholder.Value(f.db); ok {
			f.descend(func() { f.formatRef(v, prefixed) })
		} else {
			f.write("?")
		}
	}
}

func (f *TypeFormatter) prefix(p string, prefixed bool) {
	if !prefixed {
		f.write(p)
	}
}

func (f *TypeFormatter) formatSelf(p string, prefixed bool) {
	f.prefix(p, prefixed)
	if f.self.IsValid() {
		f.descend(func() { f.FormatId(f.self) })
		return
	}
	f.write("Self")
}

// FormatId renders a type identity.
func (f *TypeFormatter) FormatId(t TypeId) {
	f.formatId(t, false)
}

// formatId renders t; prefixed drops the ownership prefix of a resolved
// parameter value so "ref mut T" style stutter collapses.
func (f *TypeFormatter) formatId(t TypeId, prefixed bool) {
	switch t.Kind {
	case TypeIdClass, TypeIdTrait, TypeIdModule:
		f.write(t.Name(f.db))
	case TypeIdClassInstance:
		inst := t.ClassInstance()
		if inst.Of.IsTuple(f.db) {
			f.formatTuple(inst)
			return
		}
		f.formatGeneric(t.Name(f.db), inst.Of.TypeParameters(f.db), inst.Arguments)
	case TypeIdTraitInstance:
		inst := t.TraitInstance()
		f.formatGeneric(t.Name(f.db), inst.Of.TypeParameters(f.db), inst.Arguments)
	case TypeIdTypeParameter, TypeIdRigidTypeParameter:
		pid := t.ParameterID()
		if f.arguments != nil && t.Kind == TypeIdTypeParameter {
			if v, ok := f.arguments.Get(pid); ok {
				f.descend(func() { f.formatRef(v, prefixed) })
				return
			}
		}
		f.write(pid.Name(f.db))
	case TypeIdClosure:
		f.formatClosure(t.ClosureID())
	default:
		f.write("<invalid>")
	}
}

// formatGeneric prints Name[A, B]. A parameter with no assignment, or one
// assigned an open placeholder, displays as the parameter itself.
func (f *TypeFormatter) formatGeneric(name string, params []TypeParameterID, args ArgumentsID) {
	f.write(name)
	if len(params) == 0 {
		return
	}
	f.write("[")
	for i, param := range params {
		if i > 0 {
			f.write(", ")
		}
		f.formatArgument(param, args)
	}
	f.write("]")
}

func (f *TypeFormatter) formatArgument(param TypeParameterID, args ArgumentsID) {
	v, ok := args.Get(f.db, param)
	if !ok || (v.Kind == KindPlaceholder && !v.Placeholder.IsAssigned(f.db)) {
		f.write(param.Name(f.db))
		return
	}
	f.descend(func() { f.formatRef(v, false) })
}

func (f *TypeFormatter) formatTuple(inst ClassInstance) {
	f.write("(")
	for i, param := range inst.Of.TypeParameters(f.db) {
		if i > 0 {
			f.write(", ")
		}
		f.formatArgument(param, inst.Arguments)
	}
	f.write(")")
}

func (f *TypeFormatter) formatClosure(id ClosureID) {
	f.write("fn")
	if id.IsMoving(f.db) {
		f.write(" move")
	}
	f.write(" (")
	for i, arg := range id.Arguments(f.db) {
		if i > 0 {
			f.write(", ")
		}
		f.descend(func() { f.formatRef(arg.Type, false) })
	}
	f.write(")")
	if throw := id.ThrowType(f.db); !throw.IsUnknown() {
		f.write(" !! ")
		f.descend(func() { f.formatRef(throw, false) })
	}
	if ret := id.ReturnType(f.db); !ret.IsUnknown() {
		f.write(" -> ")
		f.descend(func() { f.formatRef(ret, false) })
	}
}

// FormatMethod renders a method signature for diagnostics and tooling.
func (f *TypeFormatter) FormatMethod(id MethodID) {
	switch id.Kind(f.db) {
	case MethodAsync:
		f.write("fn async ")
	case MethodMoving:
		f.write("fn move ")
	case MethodMutable:
		f.write("fn mut ")
	case MethodStatic:
		f.write("fn static ")
	default:
		f.write("fn ")
	}
	f.write(id.Name(f.db))

	if params := id.TypeParameters(f.db); len(params) > 0 {
		f.write("[")
		for i, param := range params {
			if i > 0 {
				f.write(", ")
			}
			f.write(param.Name(f.db))
		}
		f.write("]")
	}
	if args := id.Arguments(f.db); len(args) > 0 {
		f.write(" (")
		for i, arg := range args {
			if i > 0 {
				f.write(", ")
			}
			f.write(arg.Name)
			f.write(": ")
			f.descend(func() { f.formatRef(arg.Type, false) })
		}
		f.write(")")
	}
	if throw := id.ThrowType(f.db); !throw.IsUnknown() {
		f.write(" !! ")
		f.descend(func() { f.formatRef(throw, false) })
	}
	if ret := id.ReturnType(f.db); !ret.IsUnknown() {
		f.write(" -> ")
		f.descend(func() { f.formatRef(ret, false) })
	}
}

// FormatMethod renders a method signature into a fresh string.
func FormatMethod(db *Database, id MethodID) string {
	f := NewTypeFormatter(db, TypeId{}, nil)
	f.FormatMethod(id)
	return f.String()
}
