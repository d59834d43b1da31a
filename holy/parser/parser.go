package parser

import (
	"fmt"

	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
	"github.com/jesperkha/holy/holy/util"
)

// Nesting limit for blocks, types and expressions when none is configured.
const DefaultMaxDepth = 200

type Parser struct {
	errors    util.ErrorHandler
	file      *token.File
	toks      []token.Token
	pos       int  // Current token being looked at
	panicMode bool // Set on error, cleared when the parser synchronizes
	depth     int

	MaxDepth  int
	NumErrors int

	// True if the only error was hitting the end of input, meaning the
	// source is a valid prefix. Used by the REPL to ask for more lines.
	Incomplete bool
}

// New makes a parser for the given tokens. toks must end with an EOF token,
// as returned by Scanner.ScanAll.
func New(file *token.File, toks []token.Token) *Parser {
	util.Assert(len(toks) > 0 && toks[len(toks)-1].Eof, "token list must end with EOF")
	return &Parser{
		toks:     toks,
		file:     file,
		MaxDepth: DefaultMaxDepth,
	}
}

// Parse parses all statements in the file. The returned tree is only valid
// if no errors were reported.
func (p *Parser) Parse() *ast.Ast {
	tree := &ast.Ast{}

	for !p.eof() {
		start := p.pos
		stmt := p.parseStmt()
		if p.panicMode {
			p.synchronize(start)
			continue
		}

		tree.Stmts = append(tree.Stmts, stmt)
	}

	return tree
}

func (p *Parser) Error() error {
	return p.errors.Error()
}

// Skips tokens until the start of what is likely the next statement. Always
// advances at least one token past start.
func (p *Parser) synchronize(start int) {
	p.panicMode = false
	if p.pos == start {
		p.next()
	}

	for !p.eof() {
		if p.prev().Type == token.SEMI || p.match(token.RBRACE) {
			return
		}

		switch p.cur().Type {
		case token.IF, token.WHILE, token.FOR, token.TRY, token.FUNC,
			token.CLOSURE, token.RETURN, token.PRINT:
			return
		}

		p.next()
	}
}

// Returns false if the maximum nesting depth is exceeded. Must be paired
// with a deferred call to leave.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.MaxDepth {
		p.err("nesting too deep, the limit is %d", p.MaxDepth)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return token.Token{}
	}
	return p.toks[p.pos-1]
}

func (p *Parser) next() {
	if !p.eof() {
		p.pos++
	}
}

func (p *Parser) consume() token.Token {
	t := p.cur()
	p.next()
	return t
}

func (p *Parser) eof() bool {
	return p.cur().Eof
}

func (p *Parser) match(t token.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) matchMany(types ...token.TokenType) bool {
	for _, t := range types {
		if p.match(t) {
			return true
		}
	}
	return false
}

// Consumes the current token if it has the given type, otherwise reports
// an error. what is the human readable name of the expected token.
func (p *Parser) expect(t token.TokenType, what string) token.Token {
	if p.panicMode {
		return p.cur()
	}

	if !p.match(t) {
		p.err("expected %s, found %s", what, describe(p.cur()))
		return p.cur()
	}

	return p.consume()
}

func describe(t token.Token) string {
	if t.Eof {
		return "end of file"
	}
	return fmt.Sprintf("'%s'", t.Lexeme)
}

// Reports an error at the current token and enters panic mode. Only the
// first error is reported until the parser synchronizes.
func (p *Parser) err(format string, args ...any) {
	p.errAt(p.cur(), format, args...)
}

func (p *Parser) errAt(tok token.Token, format string, args ...any) {
	if p.panicMode {
		return
	}

	p.panicMode = true
	p.NumErrors++
	p.Incomplete = tok.Eof && p.NumErrors == 1

	line := p.file.Line(tok.Pos.Row)
	end := tok.EndPos.Col
	if tok.EndPos.Row != tok.Pos.Row {
		end = len(line)
	}

	p.errors.Pretty(tok.Pos.Line(), line, fmt.Sprintf(format, args...), tok.Pos.Col, end)
}
