package types

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
)

// The TableReader hides a lot of unnecessary utility functions in the
// SemanticTable type and extends it with more suited methods for reading
// and fetching semantic data for building.
type TableReader interface {
	// Get symbol by name in either current or parent scope.
	Get(name string) *Symbol

	// Push the scope belonging to the given body block.
	Push(block *ast.Block)

	// Pop current scope and return to parent.
	Pop()

	// Globals returns all symbols in the global scope sorted by name,
	// including builtins.
	Globals() []*Symbol
}

// Reader returns the table as a TableReader positioned at the global scope.
func (t *SemanticTable) Reader() TableReader {
	t.currentScope = t.globalScope
	return t
}

func (t *SemanticTable) Get(name string) *Symbol {
	sym, ok := t.Symbol(name)
	if !ok {
		panic(fmt.Sprintf("undefined symbol after type check: '%s'", name))
	}
	return sym
}

func (t *SemanticTable) Push(block *ast.Block) {
	scope, ok := t.scopeMap[block]
	if !ok {
		panic("block with no assigned scope")
	}
	t.currentScope = scope
}

func (t *SemanticTable) Pop() {
	t.CloseScope()
}

func (t *SemanticTable) Globals() []*Symbol {
	return t.globalScope.Symbols()
}
