package scanner

import (
	"testing"

	"github.com/jesperkha/holy/holy/token"
	"github.com/nalgeon/be"
)

func assertEq(t *testing.T, s *Scanner, want token.Token) {
	t.Helper()
	tok := s.Scan()

	be.Equal(t, tok.Type, want.Type)
	be.Equal(t, tok.Lexeme, want.Lexeme)
	be.Equal(t, tok.Pos.Col, want.Pos.Col)
	be.Equal(t, tok.Pos.Row, want.Pos.Row)
	be.Equal(t, tok.Invalid, want.Invalid)
	be.Equal(t, tok.Length, want.Length)
}

func tok(typ token.TokenType, lexeme string, col int, row int, invalid bool) token.Token {
	return token.Token{
		Type:   typ,
		Lexeme: lexeme,
		Pos: token.Pos{
			Row: row,
			Col: col,
		},
		Length:  len(lexeme),
		Invalid: invalid,
	}
}

func scannerFrom(src string) *Scanner {
	return New(token.NewFile("", src))
}

func TestScannerIter(t *testing.T) {
	src := "hello world"
	s := scannerFrom(src)

	for i := range src {
		be.True(t, !s.eof())
		be.Equal(t, s.cur(), src[i])

		var peek byte
		if i+1 < len(src) {
			peek = src[i+1]
		}

		be.Equal(t, s.peek(), peek)
		s.consume()
	}

	be.True(t, s.eof())
}

func TestScanDeclaration(t *testing.T) {
	s := scannerFrom("list<list<num>> x = [1, 2.5];\n  x += \"hi\"; # comment\n")

	assertEq(t, s, tok(token.LIST_TYPE, "list", 0, 0, false))
	assertEq(t, s, tok(token.LESS, "<", 4, 0, false))
	assertEq(t, s, tok(token.LIST_TYPE, "list", 5, 0, false))
	assertEq(t, s, tok(token.LESS, "<", 9, 0, false))
	assertEq(t, s, tok(token.NUM_TYPE, "num", 10, 0, false))
	assertEq(t, s, tok(token.GREATER, ">", 13, 0, false))
	assertEq(t, s, tok(token.GREATER, ">", 14, 0, false))
	assertEq(t, s, tok(token.IDENT, "x", 16, 0, false))
	assertEq(t, s, tok(token.EQ, "=", 18, 0, false))
	assertEq(t, s, tok(token.LBRACK, "[", 20, 0, false))
	assertEq(t, s, tok(token.NUMBER, "1", 21, 0, false))
	assertEq(t, s, tok(token.COMMA, ",", 22, 0, false))
	assertEq(t, s, tok(token.NUMBER, "2.5", 24, 0, false))
	assertEq(t, s, tok(token.RBRACK, "]", 27, 0, false))
	assertEq(t, s, tok(token.SEMI, ";", 28, 0, false))
	assertEq(t, s, tok(token.IDENT, "x", 2, 1, false))
	assertEq(t, s, tok(token.PLUS_EQ, "+=", 4, 1, false))
	assertEq(t, s, tok(token.STRING, "\"hi\"", 7, 1, false))
	assertEq(t, s, tok(token.SEMI, ";", 11, 1, false))

	end := s.Scan()
	be.True(t, end.Eof)
	be.Equal(t, s.NumErrors, 0)
}

func TestScanAllEndsWithEOF(t *testing.T) {
	toks := scannerFrom("").ScanAll()
	be.Equal(t, len(toks), 1)
	be.True(t, toks[0].Eof)

	toks = scannerFrom("closure num f = (num a) -> num {}").ScanAll()
	be.Equal(t, toks[0].Type, token.CLOSURE)
	be.Equal(t, toks[8].Type, token.ARROW)
	be.True(t, toks[len(toks)-1].Eof)
}

func TestScanInvalid(t *testing.T) {
	cases := []string{
		"1.2.3",
		"\"unterminated",
		"num x = 1 @ 2;",
	}

	for _, src := range cases {
		s := scannerFrom(src)
		s.ScanAll()
		be.True(t, s.NumErrors > 0)
		be.Err(t, s.Error())
	}
}
