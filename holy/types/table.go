package types

import "github.com/jesperkha/holy/holy/ast"

// The SemanticTable is the scope tree of a checked file. Scopes are never
// removed, so the full tree stays available to code generators after
// checking.
type SemanticTable struct {
	globalScope  *Scope
	currentScope *Scope
	scopeMap     map[*ast.Block]*Scope // Scope introduced by each body block
}

func NewSemanticTable() *SemanticTable {
	global := newScope(GlobalScope, nil)
	return &SemanticTable{
		globalScope:  global,
		currentScope: global,
		scopeMap:     make(map[*ast.Block]*Scope),
	}
}

// CreateScope opens a new scope as the last child of the current one and
// makes it current. block is the body the scope belongs to.
func (t *SemanticTable) CreateScope(kind ScopeKind, block *ast.Block) *Scope {
	scope := newScope(kind, t.currentScope)
	t.currentScope.children = append(t.currentScope.children, scope)
	t.currentScope = scope
	if block != nil {
		t.scopeMap[block] = scope
	}
	return scope
}

// CloseScope returns to the parent of the current scope. The closed scope
// stays in the tree.
func (t *SemanticTable) CloseScope() {
	if t.currentScope.parent != nil {
		t.currentScope = t.currentScope.parent
	}
}

// Declare binds name in the current scope, overriding any existing binding
// in the same scope. Bindings in parent scopes are shadowed, not changed.
func (t *SemanticTable) Declare(name string, typ Type, line int) *Symbol {
	sym := &Symbol{
		Name: name,
		Type: typ,
		Line: line,
	}
	t.currentScope.declare(sym)
	return sym
}

// Resolve returns the type of the nearest binding of name in the active
// scope chain, or the Undefined type.
func (t *SemanticTable) Resolve(name string) Type {
	if sym, ok := t.Symbol(name); ok {
		return sym.Type
	}
	return Typ[Undefined]
}

// Symbol returns the Symbol value for the given name in the current scope, or
// any parent scopes. Returns ok bool to indicate if the symbol was found.
func (t *SemanticTable) Symbol(name string) (sym *Symbol, ok bool) {
	return t.currentScope.Symbol(name)
}

func (t *SemanticTable) CurScope() *Scope {
	return t.currentScope
}

func (t *SemanticTable) Global() *Scope {
	return t.globalScope
}

// Mark current scope as having returned.
func (t *SemanticTable) MarkReturned() {
	t.currentScope.hasReturn = true
}

// ScopeOf returns the scope introduced by the given body block.
func (t *SemanticTable) ScopeOf(block *ast.Block) (*Scope, bool) {
	scope, ok := t.scopeMap[block]
	return scope, ok
}
