package types

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
)

func (c *Checker) VisitVarDecl(node *ast.VarDecl) {
	name := node.Name.Lexeme
	typ, ok := c.resolveType(node.Type)
	if !ok {
		c.typeOf(node.Init)
		return
	}

	if IsKind(typ, Void) {
		c.err(TypeMismatch, node.Type, "variable %s cannot have type void", name)
		return
	}

	if c.expect(node.Init, typ, "declaration of "+name) {
		c.ctx.Table.Declare(name, typ, node.Name.Pos.Line())
	}
}

func (c *Checker) VisitAssign(node *ast.Assign) {
	name := node.Target.Name
	t := c.typeOf(node.Target)
	if !Valid(t) {
		return
	}

	// The expected type narrows one container layer per index.
	for _, idx := range node.Indices {
		if _, ok := t.(*Tuple); ok {
			c.err(ImmutableReassignment, node.Target, "cannot assign to element of tuple %s", name)
			return
		}
		if t = c.index(node.Target, t, idx); !Valid(t) {
			return
		}
	}

	if _, ok := t.(*Tuple); ok && len(node.Indices) == 0 {
		c.err(ImmutableReassignment, node.Target, "cannot assign to tuple %s", name)
		return
	}

	switch node.Op.Type {
	case token.PLUS_EQ:
		if !IsKind(t, Num) && !IsKind(t, Str) {
			c.err(InvalidOperatorForType, node, "operator += not defined for %s", t)
			return
		}
	case token.MINUS_EQ, token.MULT_EQ, token.DIV_EQ:
		if !IsKind(t, Num) {
			c.err(InvalidOperatorForType, node, "operator %s not defined for %s", node.Op.Lexeme, t)
			return
		}
	}

	// Input must ask for exactly the target type.
	if in, ok := node.Value.(*ast.Input); ok {
		if typ := c.typeOf(in); Valid(typ) && !Identical(typ, t) {
			c.err(TypeMismatch, in, "input asks for %s, but %s has type %s", typ, name, t)
		}
		return
	}

	c.expect(node.Value, t, "assignment to "+name)
}

func (c *Checker) VisitExprStmt(node *ast.ExprStmt) {
	c.typeOf(node.E)
}

// Conditions must be bool. Reports NonBooleanCondition unless the condition
// already failed on its own.
func (c *Checker) cond(e ast.Expr) {
	if c.analyzeExpr(e, Typ[Bool]) {
		return
	}

	if t := c.typeOf(e); Valid(t) {
		c.err(NonBooleanCondition, e, "condition must be bool, got %s", t)
	}
}

// Checks a body block in a new scope.
func (c *Checker) scoped(kind ScopeKind, block *ast.Block) *Scope {
	scope := c.ctx.Table.CreateScope(kind, block)
	c.block(block)
	c.ctx.Table.CloseScope()
	return scope
}

func (c *Checker) block(block *ast.Block) {
	defer c.leave()
	if !c.enter(block) {
		return
	}

	for _, stmt := range block.Stmts {
		stmt.Accept(c)
	}
}

func (c *Checker) VisitBlock(node *ast.Block) {
	c.block(node)
}

func (c *Checker) VisitWhile(node *ast.While) {
	c.cond(node.Cond)
	c.scoped(WhileScope, node.Body)
}

func (c *Checker) VisitFor(node *ast.For) {
	c.ctx.Table.CreateScope(ForScope, node.Body)
	node.Init.Accept(c)
	c.cond(node.Cond)
	node.Post.Accept(c)
	c.block(node.Body)
	c.ctx.Table.CloseScope()
}

// Each branch gets its own scope. They are siblings, opened and closed in
// chain order.
func (c *Checker) VisitIf(node *ast.If) {
	c.cond(node.Cond)
	scope := c.scoped(IfScope, node.Body)
	scope.open = node.Else == nil

	for _, elif := range node.Elifs {
		c.cond(elif.Cond)
		c.scoped(ElifScope, elif.Body)
	}

	if node.Else != nil {
		c.scoped(ElseScope, node.Else)
	}
}

func (c *Checker) VisitTry(node *ast.Try) {
	c.scoped(TryScope, node.Body)
	if node.Catch != nil {
		c.scoped(CatchScope, node.Catch)
	}
}

func (c *Checker) VisitFunc(node *ast.Func) {
	// A partly invalid signature is still bound, so calls and the body are
	// checked without cascading UndefinedVariable errors.
	f := c.signature(node.Params, node.RetType)

	// Declared before the body is checked to allow recursion.
	c.ctx.Table.Declare(node.Name.Lexeme, f, node.Name.Pos.Line())
	c.body(FuncScope, f, node, node.Params, node.Block)
}

func (c *Checker) VisitClosure(node *ast.Closure) {
	f := c.signature(node.Params, node.Type)
	bodyType, bodyOk := c.resolveType(node.BodyType)
	if !bodyOk {
		bodyType = Typ[Invalid]
	}

	c.ctx.Table.Declare(node.Name.Lexeme, f, node.Name.Pos.Line())

	if Valid(f.Result) && Valid(bodyType) && !Identical(f.Result, bodyType) {
		c.err(ClosureSignatureMismatch, node, "closure %s is declared as %s but its body returns %s",
			node.Name.Lexeme, f.Result, bodyType)
		return
	}

	c.body(ClosureScope, f, node, node.Params, node.Block)
}

// body checks a function or closure body with the parameters bound in its
// scope, then checks that every path returns for non-void functions.
func (c *Checker) body(kind ScopeKind, f *Func, node ast.Node, params *ast.NamedTuple, block *ast.Block) {
	scope := c.ctx.Table.CreateScope(kind, block)
	c.ctx.PushFunc(f)

	for i, field := range params.Fields {
		c.ctx.Table.Declare(f.Names[i], f.Params[i], field.Name.Pos.Line())
	}

	c.block(block)
	c.ctx.Table.CloseScope()
	c.ctx.PopFunc()

	if Valid(f.Result) && !IsKind(f.Result, Void) && !complete(scope) {
		c.err(MissingReturn, node, "missing return in %s returning %s", kind, f.Result)
	}
}

func (c *Checker) VisitReturn(node *ast.Return) {
	f, ok := c.ctx.CurFunc()
	if !ok {
		c.err(ReturnOutsideFunction, node, "return outside function")
		return
	}

	if node.E == nil {
		if Valid(f.Result) && !IsKind(f.Result, Void) {
			c.err(TypeMismatch, node, "missing return value, expected %s", f.Result)
			return
		}
		c.ctx.Table.MarkReturned()
		return
	}

	if c.expect(node.E, f.Result, "return") {
		c.ctx.Table.MarkReturned()
	}
}

func (c *Checker) VisitPrint(node *ast.Print) {
	for i, arg := range node.Args {
		c.expect(arg, Typ[Num], fmt.Sprintf("argument %d of print", i+1))
	}
}
