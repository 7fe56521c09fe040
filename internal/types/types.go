package types

import (
	"fmt"
	"reflect"
	"strings"
)

// Visibility is the declared access level of a member.
type Visibility int

const (
	Public Visibility = iota
	Protected
	PackagePrivate
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case PackagePrivate:
		return "package"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// TypeDescriptor describes a registered type: its constructors, methods,
// fields and direct supertype. A descriptor is frozen once registered and
// must not be modified afterwards.
type TypeDescriptor struct {
	Name  string          // qualified name, e.g. "lang.String"
	Super *TypeDescriptor // nil at the root of a hierarchy

	// GoType is the dynamic Go type of instances. Abstract and primitive
	// descriptors leave it nil.
	GoType reflect.Type

	Primitive bool
	Box       *TypeDescriptor // boxed counterpart of a primitive

	// NumericOrder is the widening position of a numeric type
	// (byte=1 ... double=6). Zero for everything else.
	NumericOrder int

	Constructors []*Constructor
	Methods      []*Method
	Fields       []*Field

	frozen bool
}

func (t *TypeDescriptor) String() string {
	if t == nil {
		return "null"
	}
	return t.Name
}

// Boxed returns the boxed counterpart of a primitive, or t itself.
func (t *TypeDescriptor) Boxed() *TypeDescriptor {
	if t.Primitive && t.Box != nil {
		return t.Box
	}
	return t
}

// Extends reports whether other appears strictly above t in its hierarchy chain.
func (t *TypeDescriptor) Extends(other *TypeDescriptor) bool {
	if other == nil {
		return false
	}
	for s := t.Super; s != nil; s = s.Super {
		if s == other {
			return true
		}
	}
	return false
}

// IsSubtypeOf reports whether t is other or extends it.
func (t *TypeDescriptor) IsSubtypeOf(other *TypeDescriptor) bool {
	return t == other || t.Extends(other)
}

// Frozen reports whether t has been registered.
func (t *TypeDescriptor) Frozen() bool { return t.frozen }

// Member is the common view of constructors and methods used during
// overload resolution.
type Member interface {
	MemberName() string
	Parameters() []*TypeDescriptor
	Access() Visibility
	Declaring() *TypeDescriptor
}

// ConstructorName is the member name reported for constructors.
const ConstructorName = "<init>"

// Constructor creates instances of its declaring type.
type Constructor struct {
	Params     []*TypeDescriptor
	Visibility Visibility
	// New receives arguments already converted to the Go types of Params.
	New func(args []any) (any, error)

	owner *TypeDescriptor
}

func (c *Constructor) MemberName() string            { return ConstructorName }
func (c *Constructor) Parameters() []*TypeDescriptor { return c.Params }
func (c *Constructor) Access() Visibility            { return c.Visibility }
func (c *Constructor) Declaring() *TypeDescriptor    { return c.owner }

func (c *Constructor) String() string {
	return c.owner.String() + FormatParams(c.Params)
}

// Method is a named static or instance operation.
type Method struct {
	Name       string
	Params     []*TypeDescriptor
	Result     *TypeDescriptor // Void when the method produces no result
	Static     bool
	Visibility Visibility
	// Call receives a nil recv for static methods. Arguments are already
	// converted to the Go types of Params.
	Call func(recv any, args []any) (any, error)

	owner *TypeDescriptor
}

func (m *Method) MemberName() string            { return m.Name }
func (m *Method) Parameters() []*TypeDescriptor { return m.Params }
func (m *Method) Access() Visibility            { return m.Visibility }
func (m *Method) Declaring() *TypeDescriptor    { return m.owner }

func (m *Method) String() string {
	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}
	b.WriteString(m.Result.String())
	b.WriteByte(' ')
	b.WriteString(m.owner.String())
	b.WriteByte('.')
	b.WriteString(m.Name)
	b.WriteString(FormatParams(m.Params))
	return b.String()
}

// Field is a named storage slot. Get and Set receive a nil recv for static
// fields; Set is called regardless of Final when access override is enabled.
type Field struct {
	Name       string
	Type       *TypeDescriptor
	Static     bool
	Final      bool
	Visibility Visibility
	Get        func(recv any) any
	Set        func(recv any, v any)

	owner *TypeDescriptor
}

func (f *Field) Declaring() *TypeDescriptor { return f.owner }
func (f *Field) Access() Visibility         { return f.Visibility }

// FormatParams renders a parameter or argument type list, e.g. "(int, lang.String)".
// Nil entries render as "null".
func FormatParams(params []*TypeDescriptor) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

func sameParams(a, b []*TypeDescriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
