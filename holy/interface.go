package holy

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/config"
	"github.com/jesperkha/holy/holy/parser"
	"github.com/jesperkha/holy/holy/scanner"
	"github.com/jesperkha/holy/holy/token"
	"github.com/jesperkha/holy/holy/types"
)

// ParseFile scans and parses the file. If src is not nil it is used as the
// source instead of reading filename, and must be a string or []byte.
func ParseFile(filename string, src any) (*ast.Ast, error) {
	_, tree, err := parse(token.NewFile(filename, src), parser.DefaultMaxDepth)
	return tree, err
}

// Check parses and type checks the file. A nil cfg means the default
// config. The result is returned along with the error when checking fails,
// so the diagnostics can be inspected.
func Check(filename string, src any, cfg *config.Config) (*types.Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	file, tree, err := parse(token.NewFile(filename, src), cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	ctx := types.NewContext()
	ctx.MaxDepth = cfg.MaxDepth
	return check(ctx, file, tree, cfg)
}

func parse(file *token.File, maxDepth int) (*token.File, *ast.Ast, error) {
	if file.Err != nil {
		return nil, nil, &Error{File: file.Name, Phase: ReadPhase, Err: file.Err}
	}

	s := scanner.New(file)
	toks := s.ScanAll()
	if s.NumErrors > 0 {
		return nil, nil, &Error{File: file.Name, Phase: ScanPhase, Err: s.Error()}
	}

	p := parser.New(file, toks)
	p.MaxDepth = maxDepth
	tree := p.Parse()
	if p.NumErrors > 0 {
		return nil, nil, &Error{File: file.Name, Phase: ParsePhase, Err: p.Error()}
	}

	return file, tree, nil
}

func check(ctx *types.Context, file *token.File, tree *ast.Ast, cfg *config.Config) (*types.Result, error) {
	c := types.NewChecker(ctx, file, tree)
	c.StopOnFirstError = cfg.StopOnFirstError

	res := c.Check()
	if c.NumErrors > 0 {
		return res, &Error{File: file.Name, Phase: CheckPhase, Err: c.Error()}
	}
	return res, nil
}

// A Session checks a sequence of inputs as if they were one program. Each
// input sees the global bindings of the inputs before it.
type Session struct {
	cfg    *config.Config
	ctx    *types.Context
	inputs int
}

func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	ctx := types.NewContext()
	ctx.MaxDepth = cfg.MaxDepth
	return &Session{
		cfg: cfg,
		ctx: ctx,
	}
}

// Check checks src in the sessions global scope. Declarations that check
// successfully stay bound even if a later statement in src fails.
func (s *Session) Check(src string) (*types.Result, error) {
	s.inputs++
	file := token.NewFile(fmt.Sprintf("<input %d>", s.inputs), src)

	file, tree, err := parse(file, s.cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	return check(s.ctx, file, tree, s.cfg)
}

// Incomplete reports whether src is a valid prefix of a program that needs
// more input, such as an unclosed block.
func (s *Session) Incomplete(src string) bool {
	file := token.NewFile("<probe>", src)
	sc := scanner.New(file)
	toks := sc.ScanAll()
	if sc.NumErrors > 0 {
		return false
	}

	p := parser.New(file, toks)
	p.MaxDepth = s.cfg.MaxDepth
	p.Parse()
	return p.Incomplete
}

// Globals returns the symbols bound in the global scope so far.
func (s *Session) Globals() []*types.Symbol {
	return s.ctx.Table.Global().Symbols()
}
