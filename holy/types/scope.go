package types

import "sort"

type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FuncScope
	ClosureScope
	IfScope
	ElifScope
	ElseScope
	WhileScope
	ForScope
	TryScope
	CatchScope
)

var scopeKinds = [...]string{
	GlobalScope:  "global",
	FuncScope:    "function",
	ClosureScope: "closure",
	IfScope:      "if",
	ElifScope:    "elif",
	ElseScope:    "else",
	WhileScope:   "while",
	ForScope:     "for",
	TryScope:     "try",
	CatchScope:   "catch",
}

func (k ScopeKind) String() string {
	return scopeKinds[k]
}

// A Symbol is a declared name bound to a type. Line is 0 for builtins.
type Symbol struct {
	Name string
	Type Type
	Line int
}

type Scope struct {
	Kind     ScopeKind
	parent   *Scope
	children []*Scope
	symbols  map[string]*Symbol

	// True if there has been a return statement directly in this scope (not
	// counting child scopes such as if-statements or other blocks).
	hasReturn bool

	// Set on an if scope whose chain has no else branch. Such a scope can
	// never guarantee a return on every path.
	open bool
}

func newScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		Kind:    kind,
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns all scopes opened directly inside s, in source order.
func (s *Scope) Children() []*Scope {
	return s.children
}

func (s *Scope) HasReturn() bool {
	return s.hasReturn
}

// Lookup finds name in this scope only.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Symbol finds name in this scope or the nearest parent declaring it.
func (s *Scope) Symbol(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns the symbols declared in this scope sorted by name.
func (s *Scope) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, len(s.symbols))
	for _, sym := range s.symbols {
		syms = append(syms, sym)
	}

	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name < syms[j].Name
	})
	return syms
}

func (s *Scope) declare(sym *Symbol) {
	s.symbols[sym.Name] = sym
}
