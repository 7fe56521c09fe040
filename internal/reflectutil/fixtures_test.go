package reflectutil_test

import (
	"fmt"
	"reflect"

	"utilcode/internal/types"
)

// Fixture types registered for the handle tests.

type constructorType int

const (
	noArgs constructorType = iota
	objectArg
	numberArg
	integerArg
)

func ptrOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}

func getBoxed(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func boxed(v any) *int {
	if v == nil {
		return nil
	}
	n := v.(int)
	return &n
}

// ---- test1: plain instance and static fields ----

type test1 struct {
	iInt1 int
	iInt2 *int
	iData *test1
}

var (
	test1SInt1 int
	test1SInt2 *int
	test1SData *test1
)

// ---- test2: constructor overloads ----

type test2 struct {
	n    any
	kind constructorType
}

// ---- test3: method overloads ----

type test3 struct {
	n    any
	kind constructorType
}

// ---- test4 / test5: void methods, public and private ----

type test4 struct{ calls int }
type test5 struct{ calls int }

var test4Static, test5Static int

// ---- test6: null arguments ----

type test6 struct {
	m map[string]any
}

// ---- test7: private constructors with boxed parameters ----

type test7 struct {
	i any
	s any
}

// ---- test8: final fields ----

type test8 struct {
	fInt1 int
	fInt2 *int
	iData *test8
}

var (
	test8SFInt1 int
	test8SFInt2 *int
	test8SData  *test8
)

// ---- privateStaticFinal ----

var (
	psfI1 = 1
	psfI2 = boxed(1)
)

// ---- privateConstructors ----

type privateConstructors struct {
	str any
}

// ---- hierarchy ----

const (
	publicBaseResult  = "PUBLIC_BASE"
	privateBaseResult = "PRIVATE_BASE"
	privateSubResult  = "PRIVATE_SUB"
)

type hierBase struct {
	invisible2 int
	visible2   int
}

func (b *hierBase) base() *hierBase { return b }

type hierSub struct {
	hierBase
	invisible3 int
	visible3   int
}

type baser interface{ base() *hierBase }

var hierInvisible1, hierVisible1 int

// ---- thrower: failing members ----

type thrower struct{}

var (
	test1Type       = &types.TypeDescriptor{Name: "fixture.Test1", Super: types.Object, GoType: reflect.TypeFor[*test1]()}
	test2Type       = &types.TypeDescriptor{Name: "fixture.Test2", Super: types.Object, GoType: reflect.TypeFor[*test2]()}
	test3Type       = &types.TypeDescriptor{Name: "fixture.Test3", Super: types.Object, GoType: reflect.TypeFor[*test3]()}
	test4Type       = &types.TypeDescriptor{Name: "fixture.Test4", Super: types.Object, GoType: reflect.TypeFor[*test4]()}
	test5Type       = &types.TypeDescriptor{Name: "fixture.Test5", Super: types.Object, GoType: reflect.TypeFor[*test5]()}
	test6Type       = &types.TypeDescriptor{Name: "fixture.Test6", Super: types.Object, GoType: reflect.TypeFor[*test6]()}
	test7Type       = &types.TypeDescriptor{Name: "fixture.Test7", Super: types.Object, GoType: reflect.TypeFor[*test7]()}
	test8Type       = &types.TypeDescriptor{Name: "fixture.Test8", Super: types.Object, GoType: reflect.TypeFor[*test8]()}
	psfType         = &types.TypeDescriptor{Name: "fixture.TestPrivateStaticFinal", Super: types.Object}
	privCtorsType   = &types.TypeDescriptor{Name: "fixture.PrivateConstructors", Super: types.Object, GoType: reflect.TypeFor[*privateConstructors]()}
	hierBaseType    = &types.TypeDescriptor{Name: "fixture.HierarchyBase", Super: types.Object, GoType: reflect.TypeFor[*hierBase]()}
	hierSubType     = &types.TypeDescriptor{Name: "fixture.HierarchySub", Super: hierBaseType, GoType: reflect.TypeFor[*hierSub]()}
	throwerType     = &types.TypeDescriptor{Name: "fixture.Thrower", Super: types.Object, GoType: reflect.TypeFor[*thrower]()}
)

func init() {
	declareTest1()
	declareTest2()
	declareTest3()
	declareVoids()
	declareTest6()
	declareTest7()
	declareTest8()
	declarePrivates()
	declareHierarchy()
	declareThrower()

	for _, t := range []*types.TypeDescriptor{
		test1Type, test2Type, test3Type, test4Type, test5Type, test6Type, test7Type, test8Type,
		psfType, privCtorsType, hierBaseType, hierSubType, throwerType,
	} {
		types.Register(t)
	}
}

func declareTest1() {
	test1Type.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &test1{}, nil }},
	}
	test1Type.Fields = []*types.Field{
		{
			Name: "I_INT1", Type: types.Int,
			Get: func(r any) any { return r.(*test1).iInt1 },
			Set: func(r, v any) { r.(*test1).iInt1 = v.(int) },
		},
		{
			Name: "I_INT2", Type: types.Integer,
			Get: func(r any) any { return getBoxed(r.(*test1).iInt2) },
			Set: func(r, v any) { r.(*test1).iInt2 = boxed(v) },
		},
		{
			Name: "I_DATA", Type: test1Type,
			Get: func(r any) any { return ptrOrNil(r.(*test1).iData) },
			Set: func(r, v any) { r.(*test1).iData, _ = v.(*test1) },
		},
		{
			Name: "S_INT1", Type: types.Int, Static: true,
			Get: func(any) any { return test1SInt1 },
			Set: func(_, v any) { test1SInt1 = v.(int) },
		},
		{
			Name: "S_INT2", Type: types.Integer, Static: true,
			Get: func(any) any { return getBoxed(test1SInt2) },
			Set: func(_, v any) { test1SInt2 = boxed(v) },
		},
		{
			Name: "S_DATA", Type: test1Type, Static: true,
			Get: func(any) any { return ptrOrNil(test1SData) },
			Set: func(_, v any) { test1SData, _ = v.(*test1) },
		},
	}
}

func declareTest2() {
	ctor := func(kind constructorType) func(args []any) (any, error) {
		return func(args []any) (any, error) {
			t := &test2{kind: kind}
			if len(args) > 0 {
				t.n = args[0]
			}
			return t, nil
		}
	}
	test2Type.Constructors = []*types.Constructor{
		{Visibility: types.Private, New: ctor(noArgs)},
		{Visibility: types.Private, Params: []*types.TypeDescriptor{types.Object}, New: ctor(objectArg)},
		{Visibility: types.Private, Params: []*types.TypeDescriptor{types.Number}, New: ctor(numberArg)},
		{Visibility: types.Private, Params: []*types.TypeDescriptor{types.Int}, New: ctor(integerArg)},
	}
}

func declareTest3() {
	method := func(kind constructorType, params ...*types.TypeDescriptor) *types.Method {
		return &types.Method{
			Name:   "method",
			Params: params,
			Result: test3Type,
			Call: func(recv any, args []any) (any, error) {
				t := recv.(*test3)
				t.kind = kind
				t.n = nil
				if len(args) > 0 {
					t.n = args[0]
				}
				return t, nil
			},
		}
	}
	test3Type.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &test3{}, nil }},
	}
	test3Type.Methods = []*types.Method{
		method(noArgs),
		method(objectArg, types.Object),
		method(numberArg, types.Number),
		method(integerArg, types.Int),
	}
}

func declareVoids() {
	test4Type.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &test4{}, nil }},
	}
	test4Type.Methods = []*types.Method{
		{
			Name: "i_method", Result: types.Void,
			Call: func(recv any, args []any) (any, error) { recv.(*test4).calls++; return nil, nil },
		},
		{
			Name: "s_method", Result: types.Void, Static: true,
			Call: func(recv any, args []any) (any, error) { test4Static++; return nil, nil },
		},
	}

	test5Type.Constructors = []*types.Constructor{
		{Visibility: types.Private, New: func(args []any) (any, error) { return &test5{}, nil }},
	}
	test5Type.Methods = []*types.Method{
		{
			Name: "i_method", Result: types.Void, Visibility: types.Private,
			Call: func(recv any, args []any) (any, error) { recv.(*test5).calls++; return nil, nil },
		},
		{
			Name: "s_method", Result: types.Void, Static: true, Visibility: types.Private,
			Call: func(recv any, args []any) (any, error) { test5Static++; return nil, nil },
		},
	}
}

func declareTest6() {
	test6Type.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &test6{m: map[string]any{}}, nil }},
	}
	test6Type.Methods = []*types.Method{
		{
			Name:   "put",
			Params: []*types.TypeDescriptor{types.String, types.Object},
			Result: types.Void,
			Call: func(recv any, args []any) (any, error) {
				key, _ := args[0].(string)
				recv.(*test6).m[key] = args[1]
				return nil, nil
			},
		},
	}
}

func declareTest7() {
	test7Type.Constructors = []*types.Constructor{
		{
			Visibility: types.Private,
			Params:     []*types.TypeDescriptor{types.Integer},
			New:        func(args []any) (any, error) { return &test7{i: args[0]}, nil },
		},
		{
			Visibility: types.Private,
			Params:     []*types.TypeDescriptor{types.String},
			New:        func(args []any) (any, error) { return &test7{s: args[0]}, nil },
		},
		{
			Visibility: types.Private,
			Params:     []*types.TypeDescriptor{types.String, types.Integer},
			New:        func(args []any) (any, error) { return &test7{s: args[0], i: args[1]}, nil },
		},
	}
}

func declareTest8() {
	test8Type.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &test8{fInt2: boxed(0)}, nil }},
	}
	test8Type.Fields = []*types.Field{
		{
			Name: "F_INT1", Type: types.Int, Final: true,
			Get: func(r any) any { return r.(*test8).fInt1 },
			Set: func(r, v any) { r.(*test8).fInt1 = v.(int) },
		},
		{
			Name: "F_INT2", Type: types.Integer, Final: true,
			Get: func(r any) any { return getBoxed(r.(*test8).fInt2) },
			Set: func(r, v any) { r.(*test8).fInt2 = boxed(v) },
		},
		{
			Name: "I_DATA", Type: test8Type,
			Get: func(r any) any { return ptrOrNil(r.(*test8).iData) },
			Set: func(r, v any) { r.(*test8).iData, _ = v.(*test8) },
		},
		{
			Name: "SF_INT1", Type: types.Int, Static: true, Final: true,
			Get: func(any) any { return test8SFInt1 },
			Set: func(_, v any) { test8SFInt1 = v.(int) },
		},
		{
			Name: "SF_INT2", Type: types.Integer, Static: true, Final: true,
			Get: func(any) any { return getBoxed(test8SFInt2) },
			Set: func(_, v any) { test8SFInt2 = boxed(v) },
		},
		{
			Name: "S_DATA", Type: test8Type, Static: true,
			Get: func(any) any { return ptrOrNil(test8SData) },
			Set: func(_, v any) { test8SData, _ = v.(*test8) },
		},
	}
}

func declarePrivates() {
	psfType.Fields = []*types.Field{
		{
			Name: "I1", Type: types.Int, Static: true, Final: true, Visibility: types.Private,
			Get: func(any) any { return psfI1 },
			Set: func(_, v any) { psfI1 = v.(int) },
		},
		{
			Name: "I2", Type: types.Integer, Static: true, Final: true, Visibility: types.Private,
			Get: func(any) any { return getBoxed(psfI2) },
			Set: func(_, v any) { psfI2 = boxed(v) },
		},
	}

	privCtorsType.Constructors = []*types.Constructor{
		{Visibility: types.Private, New: func(args []any) (any, error) { return &privateConstructors{}, nil }},
		{
			Visibility: types.Private,
			Params:     []*types.TypeDescriptor{types.String},
			New:        func(args []any) (any, error) { return &privateConstructors{str: args[0]}, nil },
		},
	}
	privCtorsType.Fields = []*types.Field{
		{
			Name: "string", Type: types.String, Visibility: types.Private,
			Get: func(r any) any { return r.(*privateConstructors).str },
			Set: func(r, v any) { r.(*privateConstructors).str = v },
		},
	}
}

func declareHierarchy() {
	intField := func(name string, vis types.Visibility, ptr func(r any) *int) *types.Field {
		return &types.Field{
			Name: name, Type: types.Int, Visibility: vis,
			Get: func(r any) any { return *ptr(r) },
			Set: func(r, v any) { *ptr(r) = v.(int) },
		}
	}
	staticField := func(name string, vis types.Visibility, p *int) *types.Field {
		return &types.Field{
			Name: name, Type: types.Int, Static: true, Visibility: vis,
			Get: func(any) any { return *p },
			Set: func(_, v any) { *p = v.(int) },
		}
	}
	result := func(s string) func(any, []any) (any, error) {
		return func(any, []any) (any, error) { return s, nil }
	}

	hierBaseType.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &hierBase{}, nil }},
	}
	hierBaseType.Fields = []*types.Field{
		staticField("invisibleField1", types.Private, &hierInvisible1),
		intField("invisibleField2", types.Private, func(r any) *int { return &r.(baser).base().invisible2 }),
		staticField("visibleField1", types.Public, &hierVisible1),
		intField("visibleField2", types.Public, func(r any) *int { return &r.(baser).base().visible2 }),
	}
	hierBaseType.Methods = []*types.Method{
		{Name: "pub_base_method", Params: []*types.TypeDescriptor{types.Int}, Result: types.String, Call: result(publicBaseResult)},
		{Name: "very_priv_method", Result: types.String, Visibility: types.Private, Call: result(privateBaseResult)},
		{Name: "priv_method", Params: []*types.TypeDescriptor{types.Int}, Result: types.String, Visibility: types.Private, Call: result(privateBaseResult)},
	}

	hierSubType.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &hierSub{}, nil }},
	}
	hierSubType.Fields = []*types.Field{
		intField("invisibleField3", types.Private, func(r any) *int { return &r.(*hierSub).invisible3 }),
		intField("visibleField3", types.Public, func(r any) *int { return &r.(*hierSub).visible3 }),
	}
	hierSubType.Methods = []*types.Method{
		{Name: "priv_method", Params: []*types.TypeDescriptor{types.Int}, Result: types.String, Visibility: types.Private, Call: result(privateSubResult)},
	}
}

func declareThrower() {
	throwerType.Constructors = []*types.Constructor{
		{New: func(args []any) (any, error) { return &thrower{}, nil }},
		{
			Params: []*types.TypeDescriptor{types.String},
			New: func(args []any) (any, error) {
				return nil, fmt.Errorf("refused %v", args[0])
			},
		},
	}
	throwerType.Methods = []*types.Method{
		{
			Name: "fail", Result: types.Void,
			Call: func(any, []any) (any, error) { return nil, errBoom },
		},
		{
			Name: "explode", Result: types.Void,
			Call: func(any, []any) (any, error) { panic("kaboom") },
		},
	}
}

var errBoom = fmt.Errorf("boom")
