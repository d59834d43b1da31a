package holy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jesperkha/holy/holy/config"
	"github.com/jesperkha/holy/holy/types"
	"github.com/nalgeon/be"
)

func phaseOf(t *testing.T, err error) Phase {
	t.Helper()
	var herr *Error
	if !errors.As(err, &herr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	return herr.Phase
}

func TestParseFile(t *testing.T) {
	tree, err := ParseFile("main.holy", "num x = 1; print(x);")
	be.Err(t, err, nil)
	be.Equal(t, len(tree.Stmts), 2)

	_, err = ParseFile("main.holy", "num x = ;")
	be.Equal(t, phaseOf(t, err), ParsePhase)

	_, err = ParseFile("main.holy", "num x = 1.2.3;")
	be.Equal(t, phaseOf(t, err), ScanPhase)

	_, err = ParseFile("main.holy", 10)
	be.Equal(t, phaseOf(t, err), ReadPhase)
}

func TestCheck(t *testing.T) {
	res, err := Check("main.holy", "func num f(num a) { return a; } num x = f(1);", nil)
	be.Err(t, err, nil)
	be.True(t, res.Ok())

	res, err = Check("main.holy", "num x = \"a\";\nprint(y);", nil)
	be.Equal(t, phaseOf(t, err), CheckPhase)
	be.Equal(t, len(res.Diagnostics), 2)
	be.Err(t, err, "TypeMismatch")
	be.Err(t, err, "main.holy: check failed")
}

func TestCheckConfig(t *testing.T) {
	cfg := config.Default()
	cfg.StopOnFirstError = true

	res, err := Check("main.holy", "num x = \"a\";\nprint(y);", cfg)
	be.True(t, err != nil)
	be.Equal(t, len(res.Diagnostics), 1)

	cfg = config.Default()
	cfg.MaxDepth = 5
	_, err = Check("main.holy", "num x = -(-(-(-(-(-1)))));", cfg)
	be.Equal(t, phaseOf(t, err), ParsePhase)
}

func TestCheckFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.holy")
	be.Err(t, os.WriteFile(path, []byte("list<num> l = [1, 2];\nl.append(3);\n"), 0o644), nil)

	res, err := Check(path, nil, nil)
	be.Err(t, err, nil)

	sym, ok := res.Table.Global().Lookup("l")
	be.True(t, ok)
	be.Equal(t, sym.Type.String(), "list<num>")

	_, err = Check(filepath.Join(t.TempDir(), "missing.holy"), nil, nil)
	be.Err(t, err, os.ErrNotExist)
}

func TestSession(t *testing.T) {
	s := NewSession(nil)

	_, err := s.Check("num x = 1;")
	be.Err(t, err, nil)

	_, err = s.Check("func num double(num a) { return a * 2; }")
	be.Err(t, err, nil)

	res, err := s.Check("num y = double(x);")
	be.Err(t, err, nil)
	be.True(t, res.Ok())

	_, err = s.Check("str z = y;")
	be.Equal(t, phaseOf(t, err), CheckPhase)

	names := []string{}
	for _, sym := range s.Globals() {
		names = append(names, sym.Name)
	}
	be.Equal(t, names, []string{"double", "load", "store", "x", "y"})
}

func TestSessionIncomplete(t *testing.T) {
	s := NewSession(nil)
	be.True(t, s.Incomplete("func num f() {"))
	be.True(t, s.Incomplete("func num f() {\n    return 1;"))
	be.True(t, !s.Incomplete("func num f() {\n    return 1;\n}"))
	be.True(t, !s.Incomplete("num x = ;"))
}

func TestResultTypes(t *testing.T) {
	res, err := Check("main.holy", "dict<str, num> d = {\"a\": 1};", nil)
	be.Err(t, err, nil)

	found := false
	for _, typ := range res.Types {
		if types.Identical(typ, types.NewDict(types.Typ[types.Str], types.Typ[types.Num])) {
			found = true
		}
	}
	be.True(t, found)
}
