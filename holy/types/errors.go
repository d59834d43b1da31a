package types

import "fmt"

// Phase is the tag put on every diagnostic from the checker.
const Phase = "Semantic Analyzer"

type Kind int

const (
	UndefinedVariable Kind = iota
	TypeMismatch
	ArityMismatch
	ImmutableReassignment
	InvalidOperatorForType
	NonBooleanCondition
	MissingReturn
	ReturnOutsideFunction
	ClosureSignatureMismatch
	InvalidDictKeyType
	NestingTooDeep
)

var kinds = [...]string{
	UndefinedVariable:        "UndefinedVariable",
	TypeMismatch:             "TypeMismatch",
	ArityMismatch:            "ArityMismatch",
	ImmutableReassignment:    "ImmutableReassignment",
	InvalidOperatorForType:   "InvalidOperatorForType",
	NonBooleanCondition:      "NonBooleanCondition",
	MissingReturn:            "MissingReturn",
	ReturnOutsideFunction:    "ReturnOutsideFunction",
	ClosureSignatureMismatch: "ClosureSignatureMismatch",
	InvalidDictKeyType:       "InvalidDictKeyType",
	NestingTooDeep:           "NestingTooDeep",
}

func (k Kind) String() string {
	return kinds[k]
}

// A Diagnostic is a single semantic error.
type Diagnostic struct {
	Kind  Kind
	Line  int // 1-indexed
	Col   int
	Msg   string
	Phase string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: line %d: %s: %s", d.Phase, d.Line, d.Kind, d.Msg)
}
