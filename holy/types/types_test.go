package types

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/nalgeon/be"
)

var (
	num     = Typ[Num]
	str     = Typ[Str]
	boolean = Typ[Bool]
	anyT    = Typ[Any]
)

func samples() []Type {
	return []Type{
		num, str, boolean, Typ[Void],
		NewList(num),
		NewList(NewList(str)),
		NewTuple(num),
		NewDict(str, num),
		NewDict(num, NewList(boolean)),
		NewFunc([]Type{num, num}, []string{"a", "b"}, Typ[Void]),
	}
}

func TestAnyAbsorbsOnlyExpected(t *testing.T) {
	for _, typ := range samples() {
		if !Compatible(anyT, typ) {
			t.Errorf("any should accept %s", typ)
		}
		if Compatible(typ, anyT) {
			t.Errorf("%s should not accept any", typ)
		}
	}
}

func TestCompatibleReflexive(t *testing.T) {
	for _, typ := range samples() {
		if !Compatible(typ, typ) {
			t.Errorf("%s not compatible with itself: %# v", typ, pretty.Formatter(typ))
		}
	}
}

func TestCompatibleNested(t *testing.T) {
	be.True(t, Compatible(NewList(NewList(num)), NewList(NewList(num))))
	be.True(t, !Compatible(NewList(num), NewList(str)))
	be.True(t, !Compatible(NewList(num), NewTuple(num)))
	be.True(t, !Compatible(NewList(num), NewDict(num, num)))
	be.True(t, Compatible(NewList(anyT), NewList(num)))
	be.True(t, !Compatible(NewList(num), NewList(anyT)))
	be.True(t, Compatible(NewTuple(NewList(anyT)), NewTuple(NewList(str))))
}

func TestCompatibleDictKeys(t *testing.T) {
	be.True(t, Compatible(NewDict(anyT, num), NewDict(str, num)))
	be.True(t, !Compatible(NewDict(str, num), NewDict(anyT, num)))
	be.True(t, !Compatible(NewDict(str, num), NewDict(num, num)))
	be.True(t, Compatible(NewDict(str, anyT), NewDict(str, NewList(num))))
	be.True(t, !Compatible(NewDict(str, num), NewDict(str, str)))
}

func TestIdentical(t *testing.T) {
	f := NewFunc([]Type{num}, []string{"a"}, str)
	g := NewFunc([]Type{num}, []string{"b"}, str)
	h := NewFunc([]Type{num, num}, []string{"a", "b"}, str)

	be.True(t, Identical(f, g))
	be.True(t, !Identical(f, h))
	be.True(t, !Identical(NewList(anyT), NewList(num)))
	be.True(t, Identical(NewDict(str, NewTuple(num)), NewDict(str, NewTuple(num))))
	be.True(t, !Identical(num, NewList(num)))
}

func TestTypeString(t *testing.T) {
	be.Equal(t, NewDict(str, NewList(num)).String(), "dict<str, list<num>>")
	be.Equal(t, NewTuple(boolean).String(), "tuple<bool>")
	be.Equal(t, NewFunc([]Type{num, str}, []string{"a", "b"}, Typ[Void]).String(), "func(num, str) void")
	be.Equal(t, NewFunc(nil, nil, num).String(), "func() num")
}

func TestUnify(t *testing.T) {
	u, ok := unify(NewList(anyT), NewList(num))
	be.True(t, ok)
	be.True(t, Identical(u, NewList(num)))

	u, ok = unify(NewList(num), NewList(anyT))
	be.True(t, ok)
	be.True(t, Identical(u, NewList(num)))

	_, ok = unify(num, str)
	be.True(t, !ok)
}

func TestValid(t *testing.T) {
	be.True(t, !Valid(Typ[Invalid]))
	be.True(t, !Valid(Typ[Undefined]))
	be.True(t, !Valid(nil))
	be.True(t, Valid(Typ[Void]))
	be.True(t, IsKind(Typ[Num], Num))
	be.True(t, !IsKind(NewList(num), Num))
}
