package util

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorHandler accumulates errors in the order they are added. Neither the
// scanner, parser or checker stop at the first error, so the handler is what
// eventually gets reported.
type ErrorHandler struct {
	errs []error
}

func (e *ErrorHandler) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorHandler) Errors() []error {
	return e.errs
}

func (e *ErrorHandler) Len() int {
	return len(e.errs)
}

// Error joins all errors into one, or returns nil if there are none.
func (e *ErrorHandler) Error() error {
	return errors.Join(e.errs...)
}

// Pretty adds an error rendered with the offending source line and a caret
// underline from colStart to colEnd. line is the 1-indexed line number.
func (e *ErrorHandler) Pretty(line int, lineStr string, msg string, colStart int, colEnd int) {
	e.Add(errors.New(Render(line, lineStr, msg, colStart, colEnd)))
}

// Render formats a message the same way Pretty does, without storing it.
func Render(line int, lineStr string, msg string, colStart int, colEnd int) string {
	length := colEnd - colStart
	if length < 1 {
		length = 1
	}
	if colStart < 0 {
		colStart = 0
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", msg)
	fmt.Fprintf(&sb, "%3d | %s\n", line, lineStr)
	fmt.Fprintf(&sb, "    | %s%s", strings.Repeat(" ", colStart), strings.Repeat("^", length))
	return sb.String()
}
