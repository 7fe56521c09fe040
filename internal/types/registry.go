package types

import (
	"fmt"
	"reflect"
	"sync"

	"utilcode/internal/value"
)

// Loader resolves type descriptors by qualified name and by the dynamic
// type of a Go value.
type Loader interface {
	// Load finds a descriptor by qualified name.
	Load(name string) (*TypeDescriptor, bool)
	// TypeOf returns the runtime descriptor of v, nil when v carries no
	// value, and Object for Go values of unregistered types.
	TypeOf(v any) *TypeDescriptor
}

// Registry holds registered descriptors with lookup indexes. A registry
// may have a parent loader that is consulted when a lookup misses.
type Registry struct {
	mu     sync.RWMutex
	parent Loader

	// Index by qualified name
	byName map[string]*TypeDescriptor

	// Index by Go dynamic type for runtime type lookup
	byGoType map[reflect.Type]*TypeDescriptor

	// Registration order, for listings
	order []*TypeDescriptor
}

// NewRegistry creates an empty registry. A nil parent makes it a root.
func NewRegistry(parent Loader) *Registry {
	return &Registry{
		parent:   parent,
		byName:   make(map[string]*TypeDescriptor),
		byGoType: make(map[reflect.Type]*TypeDescriptor),
	}
}

var system = NewRegistry(nil)

// System returns the process-wide registry that holds the lang types.
func System() *Registry { return system }

// Register adds t to the system registry. Called from init() functions.
func Register(t *TypeDescriptor) { system.Register(t) }

// Lookup finds a descriptor in the system registry.
func Lookup(name string) (*TypeDescriptor, bool) { return system.Load(name) }

// TypeOf returns the runtime descriptor of v using the system registry.
func TypeOf(v any) *TypeDescriptor { return system.TypeOf(v) }

// All returns the descriptors of the system registry in registration order.
func All() []*TypeDescriptor { return system.All() }

// Register validates and freezes t, then indexes it.
// Panics if the name or Go type is already registered, if the hierarchy
// has a cycle, or if any member is malformed.
func (r *Registry) Register(t *TypeDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t == nil || t.Name == "" {
		panic("types: cannot register a descriptor without a name")
	}
	if t.frozen {
		panic(fmt.Sprintf("type %s is already registered", t.Name))
	}
	if _, exists := r.byName[t.Name]; exists {
		panic(fmt.Sprintf("type name %q is already registered", t.Name))
	}
	if t.GoType != nil {
		if prev, exists := r.byGoType[t.GoType]; exists {
			panic(fmt.Sprintf("Go type %v of %s is already registered as %s", t.GoType, t.Name, prev.Name))
		}
	}
	if t.Primitive && t.Super != nil {
		panic(fmt.Sprintf("primitive type %s cannot have a supertype", t.Name))
	}

	// The hierarchy must terminate.
	seen := map[*TypeDescriptor]bool{t: true}
	for s := t.Super; s != nil; s = s.Super {
		if seen[s] {
			panic(fmt.Sprintf("type %s has a cyclic hierarchy through %s", t.Name, s.Name))
		}
		seen[s] = true
	}

	validateMembers(t)
	setOwners(t)

	t.frozen = true
	r.byName[t.Name] = t
	if t.GoType != nil {
		r.byGoType[t.GoType] = t
	}
	r.order = append(r.order, t)
}

func validateMembers(t *TypeDescriptor) {
	for i, c := range t.Constructors {
		if c.New == nil {
			panic(fmt.Sprintf("constructor #%d of %s has no implementation", i, t.Name))
		}
		checkParams(t.Name, ConstructorName, c.Params)
		for _, prev := range t.Constructors[:i] {
			if sameParams(prev.Params, c.Params) {
				panic(fmt.Sprintf("constructor %s%s is declared twice", t.Name, FormatParams(c.Params)))
			}
		}
	}

	for i, m := range t.Methods {
		if m.Name == "" {
			panic(fmt.Sprintf("method #%d of %s has no name", i, t.Name))
		}
		if m.Call == nil {
			panic(fmt.Sprintf("method %s.%s has no implementation", t.Name, m.Name))
		}
		if m.Result == nil {
			panic(fmt.Sprintf("method %s.%s has no result type (use types.Void)", t.Name, m.Name))
		}
		checkParams(t.Name, m.Name, m.Params)
		for _, prev := range t.Methods[:i] {
			if prev.Name == m.Name && sameParams(prev.Params, m.Params) {
				panic(fmt.Sprintf("method %s.%s%s is declared twice", t.Name, m.Name, FormatParams(m.Params)))
			}
		}
	}

	for i, f := range t.Fields {
		if f.Name == "" {
			panic(fmt.Sprintf("field #%d of %s has no name", i, t.Name))
		}
		if f.Type == nil || f.Type == Void {
			panic(fmt.Sprintf("field %s.%s has no usable type", t.Name, f.Name))
		}
		if f.Get == nil || f.Set == nil {
			panic(fmt.Sprintf("field %s.%s needs both Get and Set", t.Name, f.Name))
		}
		for _, prev := range t.Fields[:i] {
			if prev.Name == f.Name {
				panic(fmt.Sprintf("field %s.%s is declared twice", t.Name, f.Name))
			}
		}
	}
}

// setOwners runs only after every member has passed validation, so a
// rejected descriptor keeps no owner links.
func setOwners(t *TypeDescriptor) {
	for _, c := range t.Constructors {
		c.owner = t
	}
	for _, m := range t.Methods {
		m.owner = t
	}
	for _, f := range t.Fields {
		f.owner = t
	}
}

func checkParams(typeName, member string, params []*TypeDescriptor) {
	for i, p := range params {
		if p == nil || p == Void {
			panic(fmt.Sprintf("%s.%s: parameter %d has no usable type", typeName, member, i))
		}
	}
}

// Load finds a descriptor by qualified name, falling back to the parent.
func (r *Registry) Load(name string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return t, true
	}
	if r.parent != nil {
		return r.parent.Load(name)
	}
	return nil, false
}

// TypeOf returns the runtime descriptor of v. Nil values, including typed
// nil pointers, slices and maps, have no type.
func (r *Registry) TypeOf(v any) *TypeDescriptor {
	if value.IsNil(v) {
		return nil
	}
	r.mu.RLock()
	t, ok := r.byGoType[reflect.TypeOf(v)]
	r.mu.RUnlock()
	if ok {
		return t
	}
	if r.parent != nil {
		return r.parent.TypeOf(v)
	}
	return Object
}

// All returns the descriptors registered directly in r, in registration order.
func (r *Registry) All() []*TypeDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*TypeDescriptor, len(r.order))
	copy(out, r.order)
	return out
}
