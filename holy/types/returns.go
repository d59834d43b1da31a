package types

// complete reports whether every path through s reaches a return. A scope
// is complete if it returns itself, or if it has child scopes and all of
// them are complete. Nested function and closure bodies are not part of
// the enclosing body, and an if without else is never complete.
func complete(s *Scope) bool {
	if s.open {
		return false
	}
	if s.hasReturn {
		return true
	}

	considered := 0
	for _, child := range s.children {
		if child.Kind == FuncScope || child.Kind == ClosureScope {
			continue
		}
		if !complete(child) {
			return false
		}
		considered++
	}

	return considered > 0
}
