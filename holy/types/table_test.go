package types

import (
	"testing"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/kr/pretty"
	"github.com/nalgeon/be"
)

func TestTableShadowing(t *testing.T) {
	table := NewSemanticTable()
	table.Declare("x", Typ[Num], 1)

	block := &ast.Block{}
	table.CreateScope(FuncScope, block)
	be.True(t, Identical(table.Resolve("x"), Typ[Num]))

	table.Declare("x", Typ[Str], 2)
	be.True(t, Identical(table.Resolve("x"), Typ[Str]))

	table.CloseScope()
	be.True(t, Identical(table.Resolve("x"), Typ[Num]))
	be.True(t, IsKind(table.Resolve("y"), Undefined))

	scope, ok := table.ScopeOf(block)
	be.True(t, ok)
	be.Equal(t, scope.Kind, FuncScope)
	be.True(t, scope.Parent() == table.Global())
}

func TestTableClosedScopesRemain(t *testing.T) {
	table := NewSemanticTable()
	table.CreateScope(IfScope, nil)
	table.MarkReturned()
	table.CloseScope()
	table.CreateScope(ElseScope, nil)
	table.CloseScope()

	children := table.Global().Children()
	be.Equal(t, len(children), 2)
	be.True(t, children[0].HasReturn())
	be.True(t, !children[1].HasReturn())

	// Closing the global scope is a no-op
	table.CloseScope()
	be.True(t, table.CurScope() == table.Global())
}

func TestComplete(t *testing.T) {
	leaf := func(kind ScopeKind, ret bool) *Scope {
		s := newScope(kind, nil)
		s.hasReturn = ret
		return s
	}

	body := newScope(FuncScope, nil)
	be.True(t, !complete(body))

	body.children = []*Scope{leaf(IfScope, true), leaf(ElseScope, true)}
	be.True(t, complete(body))

	body.children = append(body.children, leaf(WhileScope, false))
	be.True(t, !complete(body))

	open := leaf(IfScope, true)
	open.open = true
	body.children = []*Scope{open}
	be.True(t, !complete(body))

	body.children = []*Scope{leaf(ClosureScope, false)}
	be.True(t, !complete(body))

	body.hasReturn = true
	be.True(t, complete(body))
}

func TestReader(t *testing.T) {
	file, tree := parse(t, "func num f(num a) { num b = a; return b; }")
	res := NewChecker(nil, file, tree).Check()
	be.True(t, res.Ok())

	r := res.Table.Reader()
	f, ok := r.Get("f").Type.(*Func)
	if !ok {
		t.Fatalf("expected function type, got %# v", pretty.Formatter(r.Get("f")))
	}
	be.Equal(t, f.Names, []string{"a"})

	fn := tree.Stmts[0].(*ast.Func)
	r.Push(fn.Block)
	be.True(t, Identical(r.Get("b").Type, Typ[Num]))
	be.True(t, Identical(r.Get("a").Type, Typ[Num]))
	be.Equal(t, r.Get("b").Line, 1)
	r.Pop()

	names := []string{}
	for _, sym := range r.Globals() {
		names = append(names, sym.Name)
	}
	be.Equal(t, names, []string{"f", "load", "store"})
}

func TestReaderPanicsOnUnknown(t *testing.T) {
	r := NewSemanticTable().Reader()

	defer func() {
		be.True(t, recover() != nil)
	}()
	r.Get("missing")
}

func TestBuiltins(t *testing.T) {
	ctx := NewContext()

	store, ok := ctx.Table.Symbol("store")
	be.True(t, ok)
	be.Equal(t, store.Line, 0)
	be.Equal(t, store.Type.String(), "func(num, num) void")

	load, ok := ctx.Table.Symbol("load")
	be.True(t, ok)
	be.Equal(t, load.Type.String(), "func(num) num")
}

func TestFuncStack(t *testing.T) {
	ctx := NewContext()
	_, ok := ctx.CurFunc()
	be.True(t, !ok)

	outer := NewFunc(nil, nil, Typ[Num])
	inner := NewFunc(nil, nil, Typ[Str])
	ctx.PushFunc(outer)
	ctx.PushFunc(inner)

	cur, _ := ctx.CurFunc()
	be.True(t, cur == inner)

	ctx.PopFunc()
	cur, _ = ctx.CurFunc()
	be.True(t, cur == outer)
}
