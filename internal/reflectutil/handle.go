// Package reflectutil is a fluent wrapper over the type registry: it builds
// instances, calls methods and reads or writes fields by name, choosing
// among overloads by the runtime types of the arguments.
//
// A Handle wraps either a type (static context) or a value:
//
//	h := reflectutil.Reflect(types.String)
//	s, err := h.NewInstance("abc")
//	n, err := s.Method("indexOf", "c")
//	fmt.Println(n.Get()) // 2
//
// Members of every visibility are reachable and final fields can be
// written; see resolve.Config to turn that off.
package reflectutil

import (
	"fmt"

	"utilcode/internal/resolve"
	"utilcode/internal/types"
	"utilcode/internal/value"
)

// Reflector creates Handles bound to one resolver configuration.
type Reflector struct {
	res *resolve.Resolver
}

// New creates a Reflector for cfg.
func New(cfg resolve.Config) *Reflector {
	return &Reflector{res: resolve.New(cfg)}
}

var std = New(resolve.DefaultConfig())

// Reflect wraps t for static access using the default configuration.
func Reflect(t *types.TypeDescriptor) *Handle { return std.Reflect(t) }

// ReflectByName resolves a qualified type name. The optional loader is
// searched instead of the system registry.
func ReflectByName(name string, loader ...types.Loader) (*Handle, error) {
	return std.ReflectByName(name, loader...)
}

// ReflectValue wraps v with its runtime type.
func ReflectValue(v any) *Handle { return std.ReflectValue(v) }

// ReflectAs wraps v but resolves members starting at t.
func ReflectAs(t *types.TypeDescriptor, v any) *Handle { return std.ReflectAs(t, v) }

// Reflect wraps t for static access.
func (r *Reflector) Reflect(t *types.TypeDescriptor) *Handle {
	return &Handle{res: r.res, typ: t, static: true}
}

// ReflectByName resolves a qualified type name through loader, or through
// the reflector's own loader when none is given.
func (r *Reflector) ReflectByName(name string, loader ...types.Loader) (*Handle, error) {
	res := r.res
	if len(loader) > 0 && loader[0] != nil {
		res = resolve.New(resolve.Config{Loader: loader[0], Override: r.res.Override()})
	}
	t, ok := res.Loader().Load(name)
	if !ok {
		return nil, &resolve.Error{Kind: resolve.TypeNotFound, Member: name}
	}
	return &Handle{res: res, typ: t, static: true}, nil
}

// ReflectValue wraps v with its runtime type. A nil v yields a handle
// carrying no value, typed as the universal base type.
func (r *Reflector) ReflectValue(v any) *Handle {
	if h, ok := v.(*Handle); ok {
		return h
	}
	t := r.res.Loader().TypeOf(v)
	if t == nil {
		t = types.Object
	}
	return &Handle{res: r.res, typ: t, target: v}
}

// ReflectAs wraps v and resolves members starting at t instead of the
// runtime type of v.
func (r *Reflector) ReflectAs(t *types.TypeDescriptor, v any) *Handle {
	return &Handle{res: r.res, typ: t.Boxed(), target: unwrap(v)}
}

// Handle is an immutable view of a type or a value. Operations that
// produce something return a new Handle.
type Handle struct {
	res    *resolve.Resolver
	typ    *types.TypeDescriptor
	target any
	static bool
}

// Type returns the descriptor members are resolved from.
func (h *Handle) Type() *types.TypeDescriptor { return h.typ }

// IsType reports whether h wraps a type rather than a value.
func (h *Handle) IsType() bool { return h.static }

// Get returns the wrapped value, or the *types.TypeDescriptor for a type handle.
func (h *Handle) Get() any {
	if h.static {
		return h.typ
	}
	return h.target
}

// NewInstance calls the constructor of the wrapped type that best matches args.
func (h *Handle) NewInstance(args ...any) (*Handle, error) {
	if !h.static {
		return nil, &resolve.Error{
			Kind:   resolve.NoMatchingMember,
			Type:   h.typ.Name,
			Member: types.ConstructorName,
			Err:    fmt.Errorf("constructors need a type handle"),
		}
	}
	args = unwrapAll(args)
	c, err := h.res.ResolveConstructor(h.typ, h.res.TypesOf(args))
	if err != nil {
		return nil, err
	}
	obj, err := h.res.Construct(c, args)
	if err != nil {
		return nil, err
	}
	return h.wrap(obj, h.typ), nil
}

// Method calls the method called name that best matches args. A type
// handle sees only static methods. When the method produces no result,
// h itself is returned so calls keep chaining on the same target.
func (h *Handle) Method(name string, args ...any) (*Handle, error) {
	args = unwrapAll(args)
	m, err := h.res.ResolveMethod(h.typ, name, h.res.TypesOf(args), h.static)
	if err != nil {
		return nil, err
	}
	out, err := h.res.Invoke(m, h.target, args)
	if err != nil {
		return nil, err
	}
	if m.Result == types.Void {
		return h, nil
	}
	return h.wrap(out, m.Result), nil
}

// Field reads the field called name. The result is typed by the field's
// declared type.
func (h *Handle) Field(name string) (*Handle, error) {
	v, f, err := h.res.GetField(h.typ, h.target, name, h.static)
	if err != nil {
		return nil, err
	}
	return &Handle{res: h.res, typ: f.Type.Boxed(), target: v}, nil
}

// SetField assigns v to the field called name and returns h.
func (h *Handle) SetField(name string, v any) (*Handle, error) {
	if err := h.res.SetField(h.typ, h.target, name, unwrap(v), h.static); err != nil {
		return nil, err
	}
	return h, nil
}

// Equal reports whether other has the same shape and wraps the identical
// type or value.
func (h *Handle) Equal(other *Handle) bool {
	if h == nil || other == nil || h.static != other.static {
		return false
	}
	if h.static {
		return h.typ == other.typ
	}
	return value.Identical(h.target, other.target)
}

// Hash returns the hash of the wrapped value.
func (h *Handle) Hash() uint64 {
	return value.Hash(h.Get())
}

func (h *Handle) String() string {
	return value.String(h.Get())
}

// wrap builds a value handle for v, preferring its runtime type over the
// declared one.
func (h *Handle) wrap(v any, declared *types.TypeDescriptor) *Handle {
	t := h.res.Loader().TypeOf(v)
	if t == nil || (t == types.Object && declared != nil) {
		t = declared.Boxed()
	}
	return &Handle{res: h.res, typ: t, target: v}
}

func unwrap(v any) any {
	if h, ok := v.(*Handle); ok {
		return h.Get()
	}
	return v
}

func unwrapAll(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = unwrap(a)
	}
	return out
}
