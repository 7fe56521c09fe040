package value

import (
	"encoding/hex"
	"fmt"
	"hash/maphash"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

// Object is the value produced by constructing the universal base type.
// Each Object has its own identity.
type Object struct {
	id uuid.UUID
}

// NewObject returns a fresh Object.
func NewObject() *Object {
	return &Object{id: uuid.New()}
}

// ID returns the identity token of o.
func (o *Object) ID() uuid.UUID { return o.id }

func (o *Object) String() string {
	return "lang.Object@" + hex.EncodeToString(o.id[:4])
}

// Hasher is implemented by values that define their own hash.
type Hasher interface {
	Hash() uint64
}

var seed = maphash.MakeSeed()

// IsNil reports whether v carries no value: an untyped nil or a nil
// pointer, slice, map, channel, function or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Identical reports whether a and b are the same value: pointer identity
// for reference kinds, == for everything else that is comparable.
func Identical(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Comparable() {
		return a == b
	}
	return false
}

// Hash returns the hash of v. Values implementing Hasher decide their own
// hash; reference kinds hash by identity.
func Hash(v any) uint64 {
	if IsNil(v) {
		return 0
	}
	if h, ok := v.(Hasher); ok {
		return h.Hash()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return maphash.Comparable(seed, rv.Pointer())
	}
	if rv.Comparable() {
		return maphash.Comparable(seed, v)
	}
	return maphash.String(seed, fmt.Sprintf("%#v", v))
}

// String renders v the way the lang types print themselves.
func String(v any) string {
	if IsNil(v) {
		return "null"
	}
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case rune:
		return string(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case []rune:
		return string(x)
	case []byte:
		return fmt.Sprintf("bytes(%d)", len(x))
	case error:
		return x.Error()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat always keeps a fractional part, so 2 prints as "2.0".
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' || c == 'N' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}

// Int64 returns the integral value of a numeric v, truncating floats.
func Int64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), true
	}
	return 0, false
}

// Float64 returns the floating-point value of a numeric v.
func Float64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Convert returns v as a value of Go type to. Nil values and a nil target
// type pass through unchanged; numeric values are converted between kinds.
func Convert(v any, to reflect.Type) (any, error) {
	if to == nil || IsNil(v) {
		return v, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == to {
		return v, nil
	}
	if rv.Type().AssignableTo(to) {
		return v, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(to.Kind()) {
		return rv.Convert(to).Interface(), nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", v, to)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
