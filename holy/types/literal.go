package types

import "github.com/jesperkha/holy/holy/ast"

func (c *Checker) VisitListLit(node *ast.ListLit) {
	elem := c.elemType(node, node.Elems, "list elements")
	c.result = wrap(elem, func(t Type) Type { return NewList(t) })
}

func (c *Checker) VisitTupleLit(node *ast.TupleLit) {
	elem := c.elemType(node, node.Elems, "tuple elements")
	c.result = wrap(elem, func(t Type) Type { return NewTuple(t) })
}

func (c *Checker) VisitDictLit(node *ast.DictLit) {
	keys := make([]ast.Expr, len(node.Pairs))
	values := make([]ast.Expr, len(node.Pairs))
	for i, pair := range node.Pairs {
		keys[i] = pair.Key
		values[i] = pair.Value
	}

	key := c.elemType(node, keys, "dict keys")
	value := c.elemType(node, values, "dict values")
	if !Valid(key) || !Valid(value) {
		c.result = Typ[Invalid]
		return
	}

	if len(node.Pairs) > 0 && !validKey(key) {
		c.err(InvalidDictKeyType, node.Pairs[0].Key, "invalid dict key type %s, must be num, str or bool", key)
		c.result = Typ[Invalid]
		return
	}

	c.result = NewDict(key, value)
}

func wrap(elem Type, f func(Type) Type) Type {
	if !Valid(elem) {
		return elem
	}
	return f(elem)
}

// elemType derives the common type of all elements, which must be
// consistent with each other. An empty literal has elements of type Any.
func (c *Checker) elemType(node ast.Expr, elems []ast.Expr, what string) Type {
	if len(elems) == 0 {
		return Typ[Any]
	}

	// Derive every element first so that all errors inside are reported.
	types := make([]Type, len(elems))
	valid := true
	for i, e := range elems {
		types[i] = c.typeOf(e)
		valid = valid && Valid(types[i])
	}

	if !valid {
		return Typ[Invalid]
	}

	cur := types[0]
	for _, t := range types[1:] {
		next, ok := unify(cur, t)
		if !ok {
			c.err(TypeMismatch, node, "inconsistent types in %s: %s and %s", what, cur, t)
			return Typ[Invalid]
		}
		cur = next
	}

	return cur
}
