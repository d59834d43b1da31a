package util

import "fmt"

// Assert panics if v is false. Only used for internal invariants, such as a
// malformed tree handed over by the parser. User errors are never asserted.
func Assert(v bool, format string, args ...any) {
	if !v {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
