package token

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestFileLines(t *testing.T) {
	f := NewFile("a.holy", "num x = 1;\r\n\nprint(x);")
	be.Err(t, f.Err, nil)
	be.Equal(t, len(f.Lines), 3)

	// row: expect
	cases := map[int]string{
		0: "num x = 1;",
		1: "",
		2: "print(x);",
		3: "",
	}

	for row, line := range cases {
		be.Equal(t, f.Line(row), line)
	}
}

func TestFileInvalidSource(t *testing.T) {
	f := NewFile("a.holy", 42)
	be.Err(t, f.Err, "invalid src type")
	be.Equal(t, len(f.Src), 0)
}

func TestKeywordClasses(t *testing.T) {
	for _, kw := range []string{"num", "str", "bool", "void", "any", "list", "tuple", "dict"} {
		be.True(t, IsTypeKeyword(Keywords[kw]))
	}

	be.True(t, !IsTypeKeyword(Keywords["func"]))
	be.True(t, IsAssignOp(PLUS_EQ))
	be.True(t, !IsAssignOp(EQ_EQ))
}
