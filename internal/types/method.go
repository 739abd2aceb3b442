package types

// MethodKind describes how a method takes its receiver.
type MethodKind uint8

const (
	// MethodInstance takes the receiver immutably.
	MethodInstance MethodKind = iota
	// MethodMutable takes the receiver mutably.
	MethodMutable
	// MethodMoving consumes the receiver.
	MethodMoving
	// MethodAsync runs on a process and takes the receiver by reference.
	MethodAsync
	// MethodStatic takes no receiver.
	MethodStatic
	// MethodDestructor runs when the receiver is dropped.
	MethodDestructor
)

func (k MethodKind) String() string {
	switch k {
	case MethodInstance:
		return "instance"
	case MethodMutable:
		return "mutable"
	case MethodMoving:
		return "moving"
	case MethodAsync:
		return "async"
	case MethodStatic:
		return "static"
	case MethodDestructor:
		return "destructor"
	default:
		return "unknown"
	}
}

// MethodSource records where a method on a class came from.
type MethodSource uint8

const (
	// SourceDirect means the method was written on the class itself.
	SourceDirect MethodSource = iota
	// SourceImplementation means the method came from a plain trait
	// implementation.
	SourceImplementation
	// SourceBoundedImplementation means the method came from a trait
	// implementation with a `when` clause, so it is only available when
	// the bounds hold.
	SourceBoundedImplementation
)

// Argument is one named method or closure argument.
type Argument struct {
	Name     string
	Type     TypeRef
	Variable VariableID
}

// Method is a named block with a receiver, a Self binding and a kind.
type Method struct {
	Name           string
	Module         ModuleID
	Kind           MethodKind
	Source         MethodSource
	Visibility     Visibility
	TypeParameters []TypeParameterID
	Arguments      []Argument
	Throw          TypeRef
	Return         TypeRef
	Receiver       TypeRef
	SelfType       TypeId
}

// AllocMethod appends a method to the database and returns its ID.
func AllocMethod(db *Database, name string, module ModuleID, kind MethodKind, vis Visibility) MethodID {
	id := MethodID(arenaIndex(len(db.methods), "methods"))
	db.methods = append(db.methods, Method{
		Name:       name,
		Module:     module,
		Kind:       kind,
		Visibility: vis,
	})
	return id
}

func (id MethodID) get(db *Database) *Method { return &db.methods[id] }

// Name returns the method name.
func (id MethodID) Name(db *Database) string { return id.get(db).Name }

// Module returns the module the method is declared in.
func (id MethodID) Module(db *Database) ModuleID { return id.get(db).Module }

// Kind returns the receiver kind.
func (id MethodID) Kind(db *Database) MethodKind { return id.get(db).Kind }

// Visibility returns the declared visibility.
func (id MethodID) Visibility(db *Database) Visibility { return id.get(db).Visibility }

// Source reports where the method came from.
func (id MethodID) Source(db *Database) MethodSource { return id.get(db).Source }

// SetSource records where the method came from.
func (id MethodID) SetSource(db *Database, src MethodSource) { id.get(db).Source = src }

// NewTypeParameter declares a generic parameter on the method.
func (id MethodID) NewTypeParameter(db *Database, name string) TypeParameterID {
	pid := AllocTypeParameter(db, name)
	m := id.get(db)
	m.TypeParameters = append(m.TypeParameters, pid)
	return pid
}

// TypeParameters returns the declared parameters in order.
func (id MethodID) TypeParameters(db *Database) []TypeParameterID {
	return id.get(db).TypeParameters
}

// NewArgument declares the next argument and its backing variable.
func (id MethodID) NewArgument(db *Database, name string, typ TypeRef) VariableID {
	vid := AllocVariable(db, name, typ, false)
	m := id.get(db)
	m.Arguments = append(m.Arguments, Argument{Name: name, Type: typ, Variable: vid})
	return vid
}

// Arguments returns the declared arguments in order.
func (id MethodID) Arguments(db *Database) []Argument { return id.get(db).Arguments }

// NumberOfArguments returns the argument count.
func (id MethodID) NumberOfArguments(db *Database) int { return len(id.get(db).Arguments) }

// Argument looks up an argument by name, for named-argument call checking.
func (id MethodID) Argument(db *Database, name string) (Argument, bool) {
	for _, arg := range id.get(db).Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return Argument{}, false
}

// SetReturnType sets the declared return type.
func (id MethodID) SetReturnType(db *Database, typ TypeRef) { id.get(db).Return = typ }

// ReturnType returns the declared return type.
func (id MethodID) ReturnType(db *Database) TypeRef { return id.get(db).Return }

// SetThrowType sets the declared throw type.
func (id MethodID) SetThrowType(db *Database, typ TypeRef) { id.get(db).Throw = typ }

// ThrowType returns the declared throw type.
func (id MethodID) ThrowType(db *Database) TypeRef { return id.get(db).Throw }

// SetReceiver sets the type of `self` inside the method body.
func (id MethodID) SetReceiver(db *Database, typ TypeRef) { id.get(db).Receiver = typ }

// Receiver returns the type of `self` inside the method body.
func (id MethodID) Receiver(db *Database) TypeRef { return id.get(db).Receiver }

// SetSelfType binds what `Self` resolves to inside the method.
func (id MethodID) SetSelfType(db *Database, typ TypeId) { id.get(db).SelfType = typ }

// SelfType returns the binding for `Self` inside the method.
func (id MethodID) SelfType(db *Database) TypeId { return id.get(db).SelfType }
