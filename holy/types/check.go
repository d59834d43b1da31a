package types

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
	"github.com/jesperkha/holy/holy/util"
)

var _ ast.Visitor = (*Checker)(nil)

// Checker implements the Visitor interface to effectively traverse the AST.
// Statements are checked by their visit methods. Expressions are visited
// through typeOf, which stores the derived type in result.
type Checker struct {
	errors util.ErrorHandler
	file   *token.File
	ctx    *Context
	tree   *ast.Ast
	result Type
	deep   bool // Set once NestingTooDeep has been reported

	// Stop checking top level statements after the first diagnostic.
	StopOnFirstError bool

	Diagnostics []Diagnostic
	NumErrors   int
}

// NewChecker makes a checker for the given tree. If ctx is nil a fresh
// context is used. file is only used for rendering errors and may be nil.
func NewChecker(ctx *Context, file *token.File, tree *ast.Ast) *Checker {
	if ctx == nil {
		ctx = NewContext()
	}

	return &Checker{
		ctx:  ctx,
		file: file,
		tree: tree,
	}
}

func (c *Checker) Check() *Result {
	util.Assert(c.tree != nil, "tree is nil")

	for _, stmt := range c.tree.Stmts {
		if c.StopOnFirstError && c.NumErrors > 0 {
			break
		}
		stmt.Accept(c)
	}

	return &Result{
		Table:       c.ctx.Table,
		Types:       c.ctx.Types,
		Diagnostics: c.Diagnostics,
	}
}

func (c *Checker) Error() error {
	return c.errors.Error()
}

// Anything with a source span. Both nodes and type annotations.
type span interface {
	Pos() token.Pos
	End() token.Pos
}

func (c *Checker) err(kind Kind, node span, format string, args ...any) {
	pos := node.Pos()
	d := Diagnostic{
		Kind:  kind,
		Line:  pos.Line(),
		Col:   pos.Col,
		Msg:   fmt.Sprintf(format, args...),
		Phase: Phase,
	}

	c.Diagnostics = append(c.Diagnostics, d)
	c.NumErrors++

	if c.file == nil {
		c.errors.Add(d)
		return
	}

	line := c.file.Line(pos.Row)
	end := node.End().Col
	if node.End().Row != pos.Row {
		end = len(line)
	}
	c.errors.Pretty(d.Line, line, fmt.Sprintf("%s: %s", kind, d.Msg), pos.Col, end)
}

// Increments the nesting depth. Returns false, after reporting once, when the
// limit is exceeded. Must be paired with a deferred call to leave.
func (c *Checker) enter(node span) bool {
	c.ctx.depth++
	if c.ctx.depth <= c.ctx.MaxDepth {
		return true
	}

	if !c.deep {
		c.deep = true
		c.err(NestingTooDeep, node, "nesting too deep, the limit is %d", c.ctx.MaxDepth)
	}
	return false
}

func (c *Checker) leave() {
	c.ctx.depth--
}

// typeOf derives the type of e bottom-up, reporting errors on the way.
// Returns Invalid if e, or anything it depends on, failed to check.
func (c *Checker) typeOf(e ast.Expr) Type {
	util.Assert(e != nil, "nil expression")
	if t, ok := c.ctx.Types[e]; ok {
		return t
	}

	defer c.leave()
	if !c.enter(e) {
		c.ctx.Types[e] = Typ[Invalid]
		return Typ[Invalid]
	}

	c.result = nil
	e.Accept(c)
	util.Assert(c.result != nil, "no type derived for %T", e)

	t := c.result
	c.ctx.Types[e] = t
	return t
}

// analyzeExpr reports whether e can produce a value compatible with
// expected. It never reports a mismatch itself; that is left to the caller.
// Aggregate literals must be internally consistent, and are then checked
// element by element so that empty literals fit any container.
func (c *Checker) analyzeExpr(e ast.Expr, expected Type) bool {
	t := c.typeOf(e)
	if !Valid(t) {
		return false
	}

	if IsKind(expected, Any) {
		return true
	}

	switch lit := e.(type) {
	case *ast.ListLit:
		list, ok := expected.(*List)
		return ok && c.analyzeAll(lit.Elems, list.Elem)

	case *ast.TupleLit:
		tuple, ok := expected.(*Tuple)
		return ok && c.analyzeAll(lit.Elems, tuple.Elem)

	case *ast.DictLit:
		dict, ok := expected.(*Dict)
		if !ok {
			return false
		}
		for _, pair := range lit.Pairs {
			if !c.analyzeExpr(pair.Key, dict.Key) || !c.analyzeExpr(pair.Value, dict.Value) {
				return false
			}
		}
		return true
	}

	return Compatible(expected, t)
}

func (c *Checker) analyzeAll(exprs []ast.Expr, expected Type) bool {
	for _, e := range exprs {
		if !c.analyzeExpr(e, expected) {
			return false
		}
	}
	return true
}

// expect analyzes e against expected and reports a TypeMismatch if it fails
// without any error having been reported further down. where describes the
// use site, eg. "declaration of x".
func (c *Checker) expect(e ast.Expr, expected Type, where string) bool {
	if !Valid(expected) {
		c.typeOf(e)
		return false
	}

	before := c.NumErrors
	if c.analyzeExpr(e, expected) {
		return true
	}

	if t := c.typeOf(e); c.NumErrors == before && Valid(t) {
		c.err(TypeMismatch, e, "cannot use value of type %s as %s in %s", t, expected, where)
	}
	return false
}

// resolveType converts a type annotation to a type. Reports and returns
// false for dict types with invalid key types.
func (c *Checker) resolveType(t ast.Type) (Type, bool) {
	util.Assert(t != nil, "nil type annotation")

	switch t := t.(type) {
	case *ast.PrimitiveType:
		switch t.T.Type {
		case token.NUM_TYPE:
			return Typ[Num], true
		case token.STR_TYPE:
			return Typ[Str], true
		case token.BOOL_TYPE:
			return Typ[Bool], true
		case token.VOID_TYPE:
			return Typ[Void], true
		case token.ANY_TYPE:
			return Typ[Any], true
		}

	case *ast.ListType:
		elem, ok := c.resolveType(t.Elem)
		return NewList(elem), ok

	case *ast.TupleType:
		elem, ok := c.resolveType(t.Elem)
		return NewTuple(elem), ok

	case *ast.DictType:
		key, keyOk := c.resolveType(t.Key)
		value, valueOk := c.resolveType(t.Value)
		if keyOk && !validKey(key) {
			c.err(InvalidDictKeyType, t.Key, "invalid dict key type %s, must be num, str or bool", key)
			keyOk = false
		}
		return NewDict(key, value), keyOk && valueOk
	}

	panic(fmt.Sprintf("unknown type annotation %T", t))
}

// signature builds the function type from a parameter list and result
// annotation. Parts that fail to resolve are Invalid.
func (c *Checker) signature(params *ast.NamedTuple, result ast.Type) *Func {
	f := &Func{}
	for _, field := range params.Fields {
		typ, ok := c.resolveType(field.Type)
		if !ok {
			typ = Typ[Invalid]
		}
		f.Params = append(f.Params, typ)
		f.Names = append(f.Names, field.Name.Lexeme)
	}

	res, ok := c.resolveType(result)
	if !ok {
		res = Typ[Invalid]
	}
	f.Result = res
	return f
}
