package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jesperkha/holy/holy"
	"github.com/jesperkha/holy/holy/config"
	"github.com/kr/pretty"
	"github.com/nalgeon/be"
)

type scripted struct {
	lines []string
	err   error
}

func (s *scripted) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestReadInputMultiline(t *testing.T) {
	in := &scripted{lines: []string{"func num f() {", "    return 1;", "}"}}
	src, ok := readInput(in, holy.NewSession(nil))
	be.True(t, ok)
	be.Equal(t, src, "func num f() {\n    return 1;\n}")
}

func TestReadInputCommand(t *testing.T) {
	in := &scripted{lines: []string{":scope"}}
	src, ok := readInput(in, holy.NewSession(nil))
	be.True(t, ok)
	be.Equal(t, src, ":scope")
}

func TestReadInputStopsOnError(t *testing.T) {
	in := &scripted{err: errors.New("terminal gone")}
	_, ok := readInput(in, holy.NewSession(nil))
	be.True(t, !ok)

	in = &scripted{lines: []string{"func num f() {"}}
	_, ok = readInput(in, holy.NewSession(nil))
	be.True(t, !ok)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig()
	be.Err(t, err, nil)
	if diff := pretty.Diff(cfg, config.Default()); len(diff) > 0 {
		t.Fatalf("expected default config, diff: %v", diff)
	}

	missing := filepath.Join(t.TempDir(), "missing.yml")
	be.Err(t, flag.Set("config", missing), nil)
	defer flag.Set("config", config.FileName)

	_, err = loadConfig()
	be.Err(t, err, fs.ErrNotExist)
}
