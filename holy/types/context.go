package types

import "github.com/jesperkha/holy/holy/ast"

// Default limit for nested expressions and blocks.
const DefaultMaxDepth = 200

// Context is the state of one analysis. It can be shared by several
// checkers in sequence, in which case later programs see the global
// bindings of earlier ones.
type Context struct {
	Table *SemanticTable

	// Derived type of every expression checked so far. Each expression is
	// only analyzed once.
	Types map[ast.Expr]Type

	// Innermost enclosing function or closure signature is last.
	funcs []*Func

	depth    int
	MaxDepth int
}

func NewContext() *Context {
	ctx := &Context{
		Table:    NewSemanticTable(),
		Types:    make(map[ast.Expr]Type),
		MaxDepth: DefaultMaxDepth,
	}

	declareBuiltins(ctx.Table)
	return ctx
}

// Builtins model the memory interface of the runtime generated code runs on.
func declareBuiltins(table *SemanticTable) {
	table.Declare("store", NewFunc(
		[]Type{Typ[Num], Typ[Num]},
		[]string{"value", "address"},
		Typ[Void],
	), 0)

	table.Declare("load", NewFunc(
		[]Type{Typ[Num]},
		[]string{"address"},
		Typ[Num],
	), 0)
}

// Push function signature when entering its body.
func (c *Context) PushFunc(f *Func) {
	c.funcs = append(c.funcs, f)
}

func (c *Context) PopFunc() {
	c.funcs = c.funcs[:len(c.funcs)-1]
}

// CurFunc returns the signature of the innermost function or closure being
// checked. ok is false outside of any function.
func (c *Context) CurFunc() (f *Func, ok bool) {
	if len(c.funcs) == 0 {
		return nil, false
	}
	return c.funcs[len(c.funcs)-1], true
}
