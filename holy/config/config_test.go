package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/nalgeon/be"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	be.Err(t, err, nil)
	if diff := pretty.Diff(cfg, Default()); len(diff) > 0 {
		t.Errorf("empty config differs from default: %v", diff)
	}
}

func TestParseOverrides(t *testing.T) {
	src := "max_depth: 50\nstop_on_first_error: true\nextensions: [\".holy\", \".hs\"]\n"
	cfg, err := Parse(strings.NewReader(src))
	be.Err(t, err, nil)

	be.Equal(t, cfg.MaxDepth, 50)
	be.True(t, cfg.StopOnFirstError)
	be.Equal(t, cfg.Extensions, []string{".holy", ".hs"})
	be.Equal(t, cfg.History, ".holy_history")
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("max_dept: 10\n"))
	be.Err(t, err, "max_dept")
}

func TestValidation(t *testing.T) {
	_, err := Parse(strings.NewReader("max_depth: 0\nextensions: [\"holy\"]\nhistory: \" \"\n"))

	var verr *ValidationError
	be.True(t, errors.As(err, &verr))
	be.Equal(t, len(verr.Issues), 3)
	be.Err(t, err, "config validation failed")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	be.Err(t, os.WriteFile(path, []byte("max_depth: 10\n"), 0o644), nil)

	cfg, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.MaxDepth, 10)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	be.Err(t, err, os.ErrNotExist)

	cfg, err = LoadOrDefault(filepath.Join(dir, "missing.yml"))
	be.Err(t, err, nil)
	be.Equal(t, cfg.MaxDepth, Default().MaxDepth)
}

func TestAccepts(t *testing.T) {
	cfg := Default()
	be.True(t, cfg.Accepts("main.holy"))
	be.True(t, cfg.Accepts("dir/main.holy"))
	be.True(t, !cfg.Accepts("main.go"))
	be.True(t, !cfg.Accepts(".holy"))
}
