package types

import (
	"fmt"
	"strings"
)

// Type is one of *Basic, *List, *Tuple, *Dict or *Func.
type Type interface {
	// Get string representation of type, identical to the type syntax.
	String() string

	aType()
}

type (
	List struct {
		Elem Type
	}

	// Tuples are homogeneous, like lists, but cannot be reassigned.
	Tuple struct {
		Elem Type
	}

	Dict struct {
		Key   Type
		Value Type
	}

	Func struct {
		Params []Type
		Names  []string // Parameter names, same length as Params
		Result Type
	}
)

func NewList(elem Type) *List       { return &List{Elem: elem} }
func NewTuple(elem Type) *Tuple     { return &Tuple{Elem: elem} }
func NewDict(key, value Type) *Dict { return &Dict{Key: key, Value: value} }
func NewFunc(params []Type, names []string, result Type) *Func {
	return &Func{Params: params, Names: names, Result: result}
}

func (*Basic) aType() {}
func (*List) aType()  {}
func (*Tuple) aType() {}
func (*Dict) aType()  {}
func (*Func) aType()  {}

func (l *List) String() string  { return fmt.Sprintf("list<%s>", l.Elem) }
func (t *Tuple) String() string { return fmt.Sprintf("tuple<%s>", t.Elem) }
func (d *Dict) String() string  { return fmt.Sprintf("dict<%s, %s>", d.Key, d.Value) }

func (f *Func) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), f.Result)
}

// Identical reports whether a and b are structurally the same type.
// Parameter names are not part of a function type.
func Identical(a, b Type) bool {
	switch a := a.(type) {
	case *Basic:
		b, ok := b.(*Basic)
		return ok && a.kind == b.kind

	case *List:
		b, ok := b.(*List)
		return ok && Identical(a.Elem, b.Elem)

	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && Identical(a.Elem, b.Elem)

	case *Dict:
		b, ok := b.(*Dict)
		return ok && Identical(a.Key, b.Key) && Identical(a.Value, b.Value)

	case *Func:
		b, ok := b.(*Func)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Identical(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Identical(a.Result, b.Result)
	}

	return false
}

// Compatible reports whether a value of type actual can be used where
// expected is required. It is not symmetric: Any only absorbs on the
// expected side, and dict keys must match exactly unless expected is Any.
func Compatible(expected, actual Type) bool {
	if IsKind(expected, Any) {
		return true
	}

	switch e := expected.(type) {
	case *Dict:
		a, ok := actual.(*Dict)
		if !ok {
			return false
		}
		keyOk := IsKind(e.Key, Any) || Identical(e.Key, a.Key)
		return keyOk && Compatible(e.Value, a.Value)

	case *List:
		a, ok := actual.(*List)
		return ok && Compatible(e.Elem, a.Elem)

	case *Tuple:
		a, ok := actual.(*Tuple)
		return ok && Compatible(e.Elem, a.Elem)
	}

	return Identical(expected, actual)
}

// unify returns the more specific of a and b when one is compatible with the
// other. Used to find the element type of aggregate literals.
func unify(a, b Type) (Type, bool) {
	switch {
	case Compatible(a, b):
		return b, true
	case Compatible(b, a):
		return a, true
	}
	return nil, false
}
