package types

import (
	"reflect"

	"utilcode/internal/value"
)

// Built-in descriptors. Members are attached in init() because several of
// them refer to their own declaring type.
var (
	// Object is the universal base type.
	Object = &TypeDescriptor{Name: "lang.Object", GoType: reflect.TypeFor[*value.Object]()}
	// Number is the abstract root of the numeric wrapper family.
	Number = &TypeDescriptor{Name: "lang.Number", Super: Object}

	Boolean   = &TypeDescriptor{Name: "lang.Boolean", Super: Object, GoType: reflect.TypeFor[bool]()}
	Character = &TypeDescriptor{Name: "lang.Character", Super: Object, GoType: reflect.TypeFor[rune]()}
	Byte      = &TypeDescriptor{Name: "lang.Byte", Super: Number, GoType: reflect.TypeFor[int8](), NumericOrder: 1}
	Short     = &TypeDescriptor{Name: "lang.Short", Super: Number, GoType: reflect.TypeFor[int16](), NumericOrder: 2}
	Integer   = &TypeDescriptor{Name: "lang.Integer", Super: Number, GoType: reflect.TypeFor[int](), NumericOrder: 3}
	Long      = &TypeDescriptor{Name: "lang.Long", Super: Number, GoType: reflect.TypeFor[int64](), NumericOrder: 4}
	Float     = &TypeDescriptor{Name: "lang.Float", Super: Number, GoType: reflect.TypeFor[float32](), NumericOrder: 5}
	Double    = &TypeDescriptor{Name: "lang.Double", Super: Number, GoType: reflect.TypeFor[float64](), NumericOrder: 6}

	String    = &TypeDescriptor{Name: "lang.String", Super: Object, GoType: reflect.TypeFor[string]()}
	ByteArray = &TypeDescriptor{Name: "byte[]", Super: Object, GoType: reflect.TypeFor[[]byte]()}
	CharArray = &TypeDescriptor{Name: "char[]", Super: Object, GoType: reflect.TypeFor[[]rune]()}

	// Void is the result type of methods that produce nothing.
	Void = &TypeDescriptor{Name: "void", Primitive: true}

	Bool    = &TypeDescriptor{Name: "boolean", Primitive: true, Box: Boolean}
	Char    = &TypeDescriptor{Name: "char", Primitive: true, Box: Character}
	Int8    = &TypeDescriptor{Name: "byte", Primitive: true, Box: Byte}
	Int16   = &TypeDescriptor{Name: "short", Primitive: true, Box: Short}
	Int     = &TypeDescriptor{Name: "int", Primitive: true, Box: Integer}
	Int64   = &TypeDescriptor{Name: "long", Primitive: true, Box: Long}
	Float32 = &TypeDescriptor{Name: "float", Primitive: true, Box: Float}
	Float64 = &TypeDescriptor{Name: "double", Primitive: true, Box: Double}
)

func params(ts ...*TypeDescriptor) []*TypeDescriptor { return ts }

func init() {
	declareObject()
	declareNumber()
	declareInteger()
	declareString()

	for _, t := range []*TypeDescriptor{
		Object, Number,
		Boolean, Character, Byte, Short, Integer, Long, Float, Double,
		String, ByteArray, CharArray,
		Void, Bool, Char, Int8, Int16, Int, Int64, Float32, Float64,
	} {
		Register(t)
	}
}

func declareObject() {
	Object.Constructors = []*Constructor{
		{New: func(args []any) (any, error) { return value.NewObject(), nil }},
	}
	Object.Methods = []*Method{
		{
			Name:   "toString",
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				return value.String(recv), nil
			},
		},
		{
			Name:   "hashCode",
			Result: Int,
			Call: func(recv any, args []any) (any, error) {
				return int(int32(value.Hash(recv))), nil
			},
		},
		{
			Name:   "equals",
			Params: params(Object),
			Result: Bool,
			Call: func(recv any, args []any) (any, error) {
				return value.Identical(recv, args[0]), nil
			},
		},
	}
}

func declareNumber() {
	Number.Methods = []*Method{
		{
			Name:   "intValue",
			Result: Int,
			Call: func(recv any, args []any) (any, error) {
				n, _ := value.Int64(recv)
				return int(n), nil
			},
		},
		{
			Name:   "longValue",
			Result: Int64,
			Call: func(recv any, args []any) (any, error) {
				n, _ := value.Int64(recv)
				return n, nil
			},
		},
		{
			Name:   "floatValue",
			Result: Float32,
			Call: func(recv any, args []any) (any, error) {
				f, _ := value.Float64(recv)
				return float32(f), nil
			},
		},
		{
			Name:   "doubleValue",
			Result: Float64,
			Call: func(recv any, args []any) (any, error) {
				f, _ := value.Float64(recv)
				return f, nil
			},
		},
	}
}
