package resolve

import (
	"fmt"

	"utilcode/internal/types"
)

// Rank is the quality of the match between a formal parameter type and an
// actual argument. Lower ranks are better.
type Rank int

const (
	Exact Rank = iota
	Widening
	Assignable
	Universal
	Incompatible
)

func (r Rank) String() string {
	switch r {
	case Exact:
		return "exact"
	case Widening:
		return "widening"
	case Assignable:
		return "assignable"
	case Universal:
		return "universal"
	case Incompatible:
		return "incompatible"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Compatibility ranks passing an argument whose runtime type is actual to a
// parameter of type formal. A nil actual is the absence of a value.
func Compatibility(formal, actual *types.TypeDescriptor) Rank {
	if actual == nil {
		switch {
		case formal.Primitive:
			return Incompatible
		case formal.IsSubtypeOf(types.Number):
			return Assignable
		default:
			return Universal
		}
	}

	f, a := formal.Boxed(), actual.Boxed()

	// T := T, with primitives and their boxes treated alike
	if f == a {
		return Exact
	}

	// int := byte, double := long, ...
	if a.NumericOrder > 0 && f.NumericOrder > a.NumericOrder {
		return Widening
	}
	// Number := Long
	if f.NumericOrder == 0 && f.IsSubtypeOf(types.Number) && a.Extends(f) {
		return Widening
	}

	// Primitives accept nothing else.
	if formal.Primitive {
		return Incompatible
	}

	if f == types.Object {
		return Universal
	}
	if a.Extends(f) {
		return Assignable
	}
	return Incompatible
}

// moreSpecific reports whether parameter type a is at least as specific as b.
func moreSpecific(a, b *types.TypeDescriptor) bool {
	a, b = a.Boxed(), b.Boxed()
	if a.IsSubtypeOf(b) {
		return true
	}
	return a.NumericOrder > 0 && b.NumericOrder > a.NumericOrder
}
