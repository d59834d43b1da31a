package types

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
)

// Accessors are only allowed on identifiers. Each derives the type of the
// receiver first, which reports it if undefined.

func (c *Checker) VisitLen(node *ast.Len) {
	c.result = c.length(node)
}

func (c *Checker) length(node *ast.Len) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	switch t.(type) {
	case *List, *Tuple, *Dict:
		return Typ[Num]
	}
	if IsKind(t, Str) {
		return Typ[Num]
	}

	return c.receiverErr(node.X, t, "len")
}

func (c *Checker) VisitValues(node *ast.Values) {
	c.result = c.project(node.X, "values", func(d *Dict) Type { return d.Value })
}

func (c *Checker) VisitKeys(node *ast.Keys) {
	c.result = c.project(node.X, "keys", func(d *Dict) Type { return d.Key })
}

// Projects either the key or value type of a dict into a list.
func (c *Checker) project(x *ast.Ident, name string, elem func(*Dict) Type) Type {
	t := c.typeOf(x)
	if !Valid(t) {
		return Typ[Invalid]
	}

	if d, ok := t.(*Dict); ok {
		return NewList(elem(d))
	}
	return c.receiverErr(x, t, name)
}

func (c *Checker) VisitCopy(node *ast.Copy) {
	c.result = c.duplicate(node)
}

func (c *Checker) duplicate(node *ast.Copy) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	switch t.(type) {
	case *List, *Tuple, *Dict:
		return t
	}
	return c.receiverErr(node.X, t, "copy")
}

func (c *Checker) VisitSum(node *ast.Sum) {
	c.result = c.sumOf(node)
}

func (c *Checker) sumOf(node *ast.Sum) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	if elem, ok := elemOf(t); ok && IsKind(elem, Num) {
		return Typ[Num]
	}
	return c.receiverErr(node.X, t, "sum")
}

func (c *Checker) VisitIndex(node *ast.Index) {
	c.result = c.access(node.X, node.Indices)
}

// access walks one container layer per index, starting at the type of x.
func (c *Checker) access(x *ast.Ident, path []ast.Expr) Type {
	t := c.typeOf(x)
	for _, idx := range path {
		if !Valid(t) {
			return Typ[Invalid]
		}
		t = c.index(x, t, idx)
	}
	return t
}

// index returns the type of one element of container, checking idx against
// the index type of the container.
func (c *Checker) index(x *ast.Ident, container Type, idx ast.Expr) Type {
	switch ct := container.(type) {
	case *List:
		if c.expect(idx, Typ[Num], "index of "+x.Name) {
			return ct.Elem
		}
		return Typ[Invalid]

	case *Tuple:
		if c.expect(idx, Typ[Num], "index of "+x.Name) {
			return ct.Elem
		}
		return Typ[Invalid]

	case *Dict:
		if c.expect(idx, ct.Key, "key of "+x.Name) {
			return ct.Value
		}
		return Typ[Invalid]
	}

	if IsKind(container, Str) {
		if c.expect(idx, Typ[Num], "index of "+x.Name) {
			return Typ[Str]
		}
		return Typ[Invalid]
	}

	c.err(TypeMismatch, idx, "cannot index into %s, %s is not a container", x.Name, container)
	return Typ[Invalid]
}

func (c *Checker) VisitSlice(node *ast.Slice) {
	c.result = c.sliceOf(node)
}

func (c *Checker) sliceOf(node *ast.Slice) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	if _, ok := t.(*List); !ok && !IsKind(t, Str) {
		return c.receiverErr(node.X, t, "slice")
	}

	low := c.expect(node.Low, Typ[Num], "slice of "+node.X.Name)
	high := c.expect(node.High, Typ[Num], "slice of "+node.X.Name)
	if !low || !high {
		return Typ[Invalid]
	}
	return t
}

func (c *Checker) VisitAppend(node *ast.Append) {
	c.result = c.appendTo(node)
}

func (c *Checker) appendTo(node *ast.Append) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	list, ok := t.(*List)
	if !ok {
		if _, isTuple := t.(*Tuple); isTuple {
			c.err(ImmutableReassignment, node.X, "cannot append to tuple %s", node.X.Name)
			return Typ[Invalid]
		}
		return c.receiverErr(node.X, t, "append")
	}

	if !c.expect(node.Value, list.Elem, "append to "+node.X.Name) {
		return Typ[Invalid]
	}
	return Typ[Void]
}

func (c *Checker) VisitCount(node *ast.Count) {
	c.result = c.countOf(node)
}

func (c *Checker) countOf(node *ast.Count) Type {
	t := c.typeOf(node.X)
	if !Valid(t) {
		return Typ[Invalid]
	}

	elem, ok := elemOf(t)
	if !ok {
		return c.receiverErr(node.X, t, "count")
	}

	if !c.expect(node.Value, elem, "count of "+node.X.Name) {
		return Typ[Invalid]
	}
	return Typ[Num]
}

func (c *Checker) VisitJoin(node *ast.Join) {
	c.result = c.joinOf(node)
}

func (c *Checker) joinOf(node *ast.Join) Type {
	x, y := c.typeOf(node.X), c.typeOf(node.Other)
	if !Valid(x) || !Valid(y) {
		return Typ[Invalid]
	}

	switch x.(type) {
	case *List, *Tuple, *Dict:
	default:
		return c.receiverErr(node.X, x, "join")
	}

	if !Identical(x, y) {
		c.err(TypeMismatch, node, "cannot join %s of type %s with %s of type %s", node.X.Name, x, node.Other.Name, y)
		return Typ[Invalid]
	}
	return x
}

func (c *Checker) VisitPop(node *ast.Pop) {
	c.result = c.mutate(node.X, node.Path, nil)
}

func (c *Checker) VisitInsert(node *ast.Insert) {
	c.result = c.mutate(node.X, node.Path, node.Value)
}

// mutate checks pop and insert. The path is walked like an index access and,
// for insert, value must fit the type reached. Both derive the receiver
// type. Tuples cannot be mutated.
func (c *Checker) mutate(x *ast.Ident, path []ast.Expr, value ast.Expr) Type {
	t := c.typeOf(x)
	if !Valid(t) {
		return Typ[Invalid]
	}

	name := "pop"
	if value != nil {
		name = "insert"
	}

	switch t.(type) {
	case *Tuple:
		c.err(ImmutableReassignment, x, "cannot %s on tuple %s", name, x.Name)
		return Typ[Invalid]
	case *List, *Dict:
	default:
		return c.receiverErr(x, t, name)
	}

	reached := c.access(x, path)
	if !Valid(reached) {
		return Typ[Invalid]
	}

	if value != nil && !c.expect(value, reached, fmt.Sprintf("%s into %s", name, x.Name)) {
		return Typ[Invalid]
	}
	return t
}

// elemOf returns the element type of a list or tuple.
func elemOf(t Type) (Type, bool) {
	switch t := t.(type) {
	case *List:
		return t.Elem, true
	case *Tuple:
		return t.Elem, true
	}
	return nil, false
}

func (c *Checker) receiverErr(x *ast.Ident, t Type, accessor string) Type {
	c.err(TypeMismatch, x, "cannot use %s on %s of type %s", accessor, x.Name, t)
	return Typ[Invalid]
}
