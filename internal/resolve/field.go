package resolve

import (
	"fmt"

	"utilcode/internal/types"
	"utilcode/internal/value"
)

// LookupField finds the first field called name walking up from start.
// With static set, instance fields are skipped.
func (r *Resolver) LookupField(start *types.TypeDescriptor, name string, static bool) (*types.Field, error) {
	for level := start; level != nil; level = level.Super {
		for _, f := range level.Fields {
			if f.Name != name {
				continue
			}
			if (static && !f.Static) || !r.eligible(f.Visibility) {
				continue
			}
			return f, nil
		}
	}
	return nil, &Error{Kind: NoSuchField, Type: start.Name, Member: name}
}

// GetField reads the field called name. recv is ignored for static fields.
func (r *Resolver) GetField(start *types.TypeDescriptor, recv any, name string, static bool) (any, *types.Field, error) {
	f, err := r.LookupField(start, name, static)
	if err != nil {
		return nil, nil, err
	}
	if f.Static {
		recv = nil
	} else if value.IsNil(recv) {
		return nil, nil, &Error{
			Kind:   InvocationFailure,
			Type:   f.Declaring().Name,
			Member: name,
			Err:    fmt.Errorf("instance field read without a receiver"),
		}
	}
	out, err := protect(func() (any, error) { return f.Get(recv), nil })
	if err != nil {
		return nil, nil, &Error{Kind: InvocationFailure, Type: f.Declaring().Name, Member: name, Err: err}
	}
	return out, f, nil
}

// SetField assigns v to the field called name. Final fields are written
// too when access override is enabled. Assigning no value to a primitive
// field, or a value whose type does not fit, fails with InvalidAssignment.
func (r *Resolver) SetField(start *types.TypeDescriptor, recv any, name string, v any, static bool) error {
	f, err := r.LookupField(start, name, static)
	if err != nil {
		return err
	}
	invalid := func(cause error) error {
		return &Error{Kind: InvalidAssignment, Type: f.Declaring().Name, Member: name, Err: cause}
	}

	if f.Final && !r.override {
		return invalid(fmt.Errorf("field is final"))
	}
	actual := r.loader.TypeOf(v)
	if Compatibility(f.Type, actual) == Incompatible {
		return invalid(fmt.Errorf("cannot assign %s to %s", actual, f.Type))
	}

	conv := v
	if t := f.Type.Boxed(); t.NumericOrder > 0 {
		if conv, err = value.Convert(v, t.GoType); err != nil {
			return invalid(err)
		}
	}

	if f.Static {
		recv = nil
	} else if value.IsNil(recv) {
		return &Error{
			Kind:   InvocationFailure,
			Type:   f.Declaring().Name,
			Member: name,
			Err:    fmt.Errorf("instance field written without a receiver"),
		}
	}
	_, err = protect(func() (any, error) {
		f.Set(recv, conv)
		return nil, nil
	})
	if err != nil {
		return &Error{Kind: InvocationFailure, Type: f.Declaring().Name, Member: name, Err: err}
	}
	return nil
}
