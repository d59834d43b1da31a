package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when no path is given.
const FileName = "holy.yml"

type Config struct {
	// Nesting limit for blocks, types and expressions, in both the parser
	// and the checker.
	MaxDepth int `yaml:"max_depth"`

	// Stop checking a file after its first diagnostic.
	StopOnFirstError bool `yaml:"stop_on_first_error"`

	// Accepted source file suffixes, including the dot.
	Extensions []string `yaml:"extensions"`

	// REPL history file, relative to the home directory.
	History string `yaml:"history"`
}

func Default() *Config {
	return &Config{
		MaxDepth:         200,
		StopOnFirstError: false,
		Extensions:       []string{".holy"},
		History:          ".holy_history",
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads the config file at path. Keys missing from the file keep their
// default values. A missing file is an error; use LoadOrDefault to fall
// back to the defaults instead.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, but returns the default config if path does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes and validates a YAML config. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var issues []string

	if c.MaxDepth < 1 {
		issues = append(issues, fmt.Sprintf("max_depth must be at least 1, got %d", c.MaxDepth))
	}

	if len(c.Extensions) == 0 {
		issues = append(issues, "extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			issues = append(issues, fmt.Sprintf("extension %q must start with a dot", ext))
		}
	}

	if strings.TrimSpace(c.History) == "" {
		issues = append(issues, "history must not be empty")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Accepts reports whether filename has one of the configured extensions.
func (c *Config) Accepts(filename string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(filename, ext) && len(filename) > len(ext) {
			return true
		}
	}
	return false
}
