package holy

import "fmt"

type Phase int

const (
	ReadPhase Phase = iota
	ScanPhase
	ParsePhase
	CheckPhase
)

var phases = [...]string{
	ReadPhase:  "read",
	ScanPhase:  "scan",
	ParsePhase: "parse",
	CheckPhase: "check",
}

func (p Phase) String() string {
	return phases[p]
}

// Error is returned when a file fails one of the front end phases. Err holds
// all errors of that phase joined together.
type Error struct {
	File  string
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s failed:\n%s", e.File, e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
