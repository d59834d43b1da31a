package types

import "github.com/jesperkha/holy/holy/ast"

// Result is what the checker hands to later stages. A generator must not
// run on a result with diagnostics.
type Result struct {
	Table       *SemanticTable
	Types       map[ast.Expr]Type
	Diagnostics []Diagnostic
}

func (r *Result) Ok() bool {
	return len(r.Diagnostics) == 0
}

// TypeOf returns the derived type of e, or Invalid if e was never checked.
func (r *Result) TypeOf(e ast.Expr) Type {
	if t, ok := r.Types[e]; ok {
		return t
	}
	return Typ[Invalid]
}

// Has reports whether a diagnostic of the given kind was produced.
func (r *Result) Has(kind Kind) bool {
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
