package types

type BasicKind int

const (
	// Invalid is the type of an expression that already failed to check.
	// Anything derived from it is Invalid too, and is never reported again.
	Invalid BasicKind = iota

	// Undefined is the type of a name with no binding in the active scopes.
	Undefined

	Num
	Str
	Bool
	Void

	// Any is compatible with everything when it is the expected type.
	Any
)

// A Basic represents a primitive type or one of the sentinel types.
type Basic struct {
	kind BasicKind
	name string
}

// Typ contains the basic types indexed by their kind. Basic types are only
// ever compared through these values.
var Typ = [...]*Basic{
	Invalid:   {Invalid, "invalid"},
	Undefined: {Undefined, "undefined"},
	Num:       {Num, "num"},
	Str:       {Str, "str"},
	Bool:      {Bool, "bool"},
	Void:      {Void, "void"},
	Any:       {Any, "any"},
}

// Kind returns the kind of basic type b.
func (b *Basic) Kind() BasicKind { return b.kind }

// Name returns the name of basic type b.
func (b *Basic) Name() string { return b.name }

func (b *Basic) String() string { return b.name }

// IsKind reports whether t is the basic type of the given kind.
func IsKind(t Type, kind BasicKind) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == kind
}

// Valid reports whether t is neither Invalid nor Undefined.
func Valid(t Type) bool {
	return t != nil && !IsKind(t, Invalid) && !IsKind(t, Undefined)
}

// validKey reports whether t may be used as a dict key type.
func validKey(t Type) bool {
	return IsKind(t, Num) || IsKind(t, Str) || IsKind(t, Bool)
}
