package scanner

import (
	"fmt"

	"github.com/jesperkha/holy/holy/token"
	"github.com/jesperkha/holy/holy/util"
)

type Scanner struct {
	errors    util.ErrorHandler
	file      *token.File
	src       []byte
	offset    int
	row       int
	lineBegin int
	NumErrors int
}

// New makes a new Scanner object for the given file. The files source is the
// text to scan. Scanner only accepts ascii text.
func New(file *token.File) *Scanner {
	return &Scanner{
		file: file,
		src:  file.Src,
	}
}

func (s *Scanner) Error() error {
	return s.errors.Error()
}

// ScanAll scans the whole file. The last token is always EOF.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Eof {
			return toks
		}
	}
}

// Scan consumes the next token and returns it, advancing the Scanner.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()

	start := s.pos()
	if s.eof() {
		return token.Token{
			Type:   token.EOF,
			Pos:    start,
			EndPos: start,
			Eof:    true,
		}
	}

	c := s.cur()
	switch {
	case isAlpha(c):
		return s.scanIdent(start)
	case isNum(c):
		return s.scanNumber(start)
	case c == '"':
		return s.scanString(start)
	}

	if s.offset+1 < len(s.src) {
		if typ, ok := token.DoubleSymbols[string(s.src[s.offset:s.offset+2])]; ok {
			s.consume()
			s.consume()
			return s.token(typ, start)
		}
	}

	if typ, ok := token.SingleSymbols[string(c)]; ok {
		s.consume()
		return s.token(typ, start)
	}

	s.consume()
	tok := s.token(token.ILLEGAL, start)
	tok.Invalid = true
	s.err(tok, "illegal character '%c'", c)
	return tok
}

func (s *Scanner) scanIdent(start token.Pos) token.Token {
	for !s.eof() && (isAlpha(s.cur()) || isNum(s.cur())) {
		s.consume()
	}

	lexeme := string(s.src[start.Offset:s.offset])
	if typ, ok := token.Keywords[lexeme]; ok {
		return s.token(typ, start)
	}
	return s.token(token.IDENT, start)
}

func (s *Scanner) scanNumber(start token.Pos) token.Token {
	for !s.eof() && isNum(s.cur()) {
		s.consume()
	}

	invalid := false
	dots := 0
	for s.cur() == '.' && isNum(s.peek()) {
		dots++
		s.consume()
		for !s.eof() && isNum(s.cur()) {
			s.consume()
		}
	}

	tok := s.token(token.NUMBER, start)
	if dots > 1 {
		invalid = true
		s.err(tok, "malformed number literal")
	}
	tok.Invalid = invalid
	return tok
}

func (s *Scanner) scanString(start token.Pos) token.Token {
	s.consume() // Opening quote

	for !s.eof() && s.cur() != '"' && s.cur() != '\n' {
		if s.cur() == '\\' && s.peek() != 0 && s.peek() != '\n' {
			s.consume()
		}
		s.consume()
	}

	if s.cur() != '"' {
		tok := s.token(token.STRING, start)
		tok.Invalid = true
		s.err(tok, "unterminated string literal")
		return tok
	}

	s.consume() // Closing quote
	return s.token(token.STRING, start)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.eof() {
		c := s.cur()
		if isWhitespace(c) {
			s.consume()
			continue
		}

		if c == '#' {
			for !s.eof() && s.cur() != '\n' {
				s.consume()
			}
			continue
		}

		return
	}
}

func (s *Scanner) token(typ token.TokenType, start token.Pos) token.Token {
	lexeme := string(s.src[start.Offset:s.offset])
	return token.Token{
		Type:   typ,
		Pos:    start,
		EndPos: s.pos(),
		Lexeme: lexeme,
		Length: len(lexeme),
	}
}

func (s *Scanner) err(tok token.Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.errors.Pretty(tok.Pos.Line(), s.file.Line(tok.Pos.Row), msg, tok.Pos.Col, tok.Pos.Col+tok.Length)
	s.NumErrors++
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{
		Col:    s.offset - s.lineBegin,
		Row:    s.row,
		Offset: s.offset,
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.src)
}

// cur returns the current character, or 0 at eof.
func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.offset]
}

// peek returns the character after the current one, or 0 at eof.
func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.src) {
		return 0
	}
	return s.src[s.offset+1]
}

func (s *Scanner) consume() {
	if s.eof() {
		return
	}

	if s.src[s.offset] == '\n' {
		s.row++
		s.lineBegin = s.offset + 1
	}
	s.offset++
}
