package util

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestFindEndOfLine(t *testing.T) {
	src := []byte("hello there\nmy name is bob\r\n\nend")

	// offset: expect
	cases := map[int]int{
		5:  10,
		14: 25,
		28: 27,
		29: 31,
	}

	for k, v := range cases {
		be.Equal(t, FindEndOfLine(src, k), v)
	}
}

func TestErrorHandler(t *testing.T) {
	var eh ErrorHandler
	be.Err(t, eh.Error(), nil)

	eh.Pretty(3, "num x = \"a\";", "type mismatch", 8, 11)
	eh.Pretty(4, "y;", "undefined", 0, 0)
	be.Equal(t, eh.Len(), 2)

	msg := eh.Error().Error()
	be.True(t, strings.Contains(msg, "error: type mismatch"))
	be.True(t, strings.Contains(msg, "  3 | num x = \"a\";"))
	be.True(t, strings.Contains(msg, "    |         ^^^"))
	be.True(t, strings.Contains(msg, "    | ^"))
}
