package types

import (
	"fmt"
	"strconv"
	"strings"

	"utilcode/internal/value"
)

func declareInteger() {
	Integer.Methods = []*Method{
		{
			Name:   "toString",
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				return strconv.Itoa(recv.(int)), nil
			},
		},
		{
			Name:   "valueOf",
			Params: params(Int),
			Result: Integer,
			Static: true,
			Call: func(recv any, args []any) (any, error) {
				return args[0].(int), nil
			},
		},
		{
			Name:   "parseInt",
			Params: params(String),
			Result: Int,
			Static: true,
			Call: func(recv any, args []any) (any, error) {
				s, _ := args[0].(string)
				n, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("parseInt: invalid integer %q", s)
				}
				return n, nil
			},
		},
	}
}

func declareString() {
	String.Constructors = []*Constructor{
		{New: func(args []any) (any, error) { return "", nil }},
		{
			Params: params(String),
			New: func(args []any) (any, error) {
				s, _ := args[0].(string)
				return s, nil
			},
		},
		{
			Params: params(ByteArray),
			New: func(args []any) (any, error) {
				b, _ := args[0].([]byte)
				return string(b), nil
			},
		},
		{
			Params: params(CharArray),
			New: func(args []any) (any, error) {
				r, _ := args[0].([]rune)
				return string(r), nil
			},
		},
		{
			Params: params(CharArray, Int, Int),
			New: func(args []any) (any, error) {
				r, _ := args[0].([]rune)
				return runeRange(r, args[1].(int), args[2].(int))
			},
		},
	}

	String.Methods = []*Method{
		{
			Name:   "trim",
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				return strings.TrimFunc(recv.(string), func(r rune) bool { return r <= ' ' }), nil
			},
		},
		{
			Name:   "substring",
			Params: params(Int),
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				r := []rune(recv.(string))
				begin := args[0].(int)
				return runeRange(r, begin, len(r)-begin)
			},
		},
		{
			Name:   "substring",
			Params: params(Int, Int),
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				begin, end := args[0].(int), args[1].(int)
				return runeRange([]rune(recv.(string)), begin, end-begin)
			},
		},
		{
			Name:   "concat",
			Params: params(String),
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				if value.IsNil(args[0]) {
					return nil, fmt.Errorf("concat: null argument")
				}
				return recv.(string) + args[0].(string), nil
			},
		},
		{
			Name:   "indexOf",
			Params: params(String),
			Result: Int,
			Call: func(recv any, args []any) (any, error) {
				if value.IsNil(args[0]) {
					return nil, fmt.Errorf("indexOf: null argument")
				}
				s := recv.(string)
				i := strings.Index(s, args[0].(string))
				if i < 0 {
					return -1, nil
				}
				return len([]rune(s[:i])), nil
			},
		},
		{
			Name:   "length",
			Result: Int,
			Call: func(recv any, args []any) (any, error) {
				return len([]rune(recv.(string))), nil
			},
		},
		{
			Name:   "isEmpty",
			Result: Bool,
			Call: func(recv any, args []any) (any, error) {
				return recv.(string) == "", nil
			},
		},
		{
			Name:   "toString",
			Result: String,
			Call: func(recv any, args []any) (any, error) {
				return recv, nil
			},
		},
		staticValueOf(Bool),
		staticValueOf(Char),
		staticValueOf(Int),
		staticValueOf(Int64),
		staticValueOf(Float32),
		staticValueOf(Float64),
		staticValueOf(CharArray),
		staticValueOf(Object),
		{
			Name:   "copyValueOf",
			Params: params(CharArray),
			Result: String,
			Static: true,
			Call: func(recv any, args []any) (any, error) {
				r, _ := args[0].([]rune)
				return string(r), nil
			},
		},
		{
			Name:   "copyValueOf",
			Params: params(CharArray, Int, Int),
			Result: String,
			Static: true,
			Call: func(recv any, args []any) (any, error) {
				r, _ := args[0].([]rune)
				return runeRange(r, args[1].(int), args[2].(int))
			},
		},
	}
}

// staticValueOf declares String.valueOf for one parameter type.
func staticValueOf(param *TypeDescriptor) *Method {
	return &Method{
		Name:   "valueOf",
		Params: params(param),
		Result: String,
		Static: true,
		Call: func(recv any, args []any) (any, error) {
			return value.String(args[0]), nil
		},
	}
}

// runeRange returns count runes of r starting at offset.
func runeRange(r []rune, offset, count int) (string, error) {
	if offset < 0 || count < 0 || offset+count > len(r) {
		return "", fmt.Errorf("index out of range: offset %d, count %d, length %d", offset, count, len(r))
	}
	return string(r[offset : offset+count]), nil
}
