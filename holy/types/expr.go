package types

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
)

func (c *Checker) VisitIdent(node *ast.Ident) {
	c.result = c.ident(node)
}

func (c *Checker) ident(node *ast.Ident) Type {
	t := c.ctx.Table.Resolve(node.Name)
	if IsKind(t, Undefined) {
		c.err(UndefinedVariable, node, "variable %s needs to be defined first", node.Name)
		return Typ[Invalid]
	}
	return t
}

func (c *Checker) VisitLiteral(node *ast.Literal) {
	switch node.T.Type {
	case token.NUMBER:
		c.result = Typ[Num]
	case token.STRING:
		c.result = Typ[Str]
	case token.TRUE, token.FALSE:
		c.result = Typ[Bool]
	default:
		panic(fmt.Sprintf("unknown literal token %s", node.T))
	}
}

func (c *Checker) VisitInput(node *ast.Input) {
	t, ok := c.resolveType(node.Type)
	switch {
	case !ok:
		c.result = Typ[Invalid]
	case IsKind(t, Void):
		c.err(TypeMismatch, node, "cannot read input of type void")
		c.result = Typ[Invalid]
	default:
		c.result = t
	}
}

func (c *Checker) VisitUnary(node *ast.Unary) {
	c.result = c.unary(node)
}

func (c *Checker) unary(node *ast.Unary) Type {
	x := c.typeOf(node.X)
	if !Valid(x) {
		return Typ[Invalid]
	}

	switch node.Op.Type {
	case token.NOT:
		if IsKind(x, Bool) || IsKind(x, Num) {
			return x
		}
	case token.MINUS:
		if IsKind(x, Num) {
			return x
		}
	default:
		panic(fmt.Sprintf("unknown unary operator %s", node.Op))
	}

	c.err(InvalidOperatorForType, node, "operator %s not defined for %s", node.Op.Lexeme, x)
	return Typ[Invalid]
}

// A flat chain like a + b + c parses to a left-deep tree. Its left spine is
// typed bottom-up in a loop so only real nesting counts towards MaxDepth.
func (c *Checker) VisitBinary(node *ast.Binary) {
	spine := []*ast.Binary{}
	for x, ok := node.X.(*ast.Binary); ok; x, ok = x.X.(*ast.Binary) {
		if _, done := c.ctx.Types[x]; done {
			break
		}
		spine = append(spine, x)
	}

	for i := len(spine) - 1; i >= 0; i-- {
		c.ctx.Types[spine[i]] = c.binary(spine[i])
	}

	c.result = c.binary(node)
}

func (c *Checker) binary(node *ast.Binary) Type {
	x, y := c.typeOf(node.X), c.typeOf(node.Y)
	if !Valid(x) || !Valid(y) {
		return Typ[Invalid]
	}

	both := func(kind BasicKind) bool {
		return IsKind(x, kind) && IsKind(y, kind)
	}

	switch node.Op.Type {
	case token.PLUS:
		if both(Num) || both(Str) {
			return x
		}

	case token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET:
		if both(Num) {
			return Typ[Num]
		}

	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ, token.EQ_EQ, token.NOT_EQ:
		if both(Num) {
			return Typ[Bool]
		}

	case token.AND_AND, token.OR_OR:
		if both(Bool) {
			return Typ[Bool]
		}

	// Bitwise on numbers, logical on bools.
	case token.AND, token.OR:
		if both(Num) || both(Bool) {
			return x
		}

	default:
		panic(fmt.Sprintf("unknown binary operator %s", node.Op))
	}

	c.err(InvalidOperatorForType, node, "operator %s not defined for %s and %s", node.Op.Lexeme, x, y)
	return Typ[Invalid]
}

func (c *Checker) VisitCall(node *ast.Call) {
	c.result = c.analyzeCall(node)
}

// analyzeCall checks the callee and arguments and returns the declared result
// type of the function, or Invalid on any failure.
func (c *Checker) analyzeCall(node *ast.Call) Type {
	name := node.Callee.Name
	t := c.typeOf(node.Callee)
	if !Valid(t) {
		return Typ[Invalid]
	}

	f, ok := t.(*Func)
	if !ok {
		c.err(TypeMismatch, node.Callee, "cannot call %s of type %s", name, t)
		return Typ[Invalid]
	}

	have, want := len(node.Args), len(f.Params)
	if have != want {
		qualifier := "too many"
		if have < want {
			qualifier = "too few"
		}
		c.err(ArityMismatch, node, "%s arguments in call to %s, have %d, want %d", qualifier, name, have, want)
		return Typ[Invalid]
	}

	ok = true
	for i, arg := range node.Args {
		where := fmt.Sprintf("argument %d (%s) of %s", i+1, f.Names[i], name)
		ok = c.expect(arg, f.Params[i], where) && ok
	}

	if !ok {
		return Typ[Invalid]
	}
	return f.Result
}
