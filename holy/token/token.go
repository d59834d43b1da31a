package token

import "fmt"

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	EndPos Pos    // Position of character immediately after token
	Lexeme string // The token as a string literal
	Length int    // The character length of the token

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool

	// True if the token is malformed. This is different from TokenType.ILLEGAL
	// which is for unknown symbols. However, the Invalid field is always true
	// if the type is ILLEGAL.
	//
	// Example: the literal 1.2.3 will have the NUMBER type, but be Invalid
	// as it is malformed. An unterminated string is also Invalid.
	Invalid bool
}

func (t Token) String() string {
	return fmt.Sprintf("{%d '%s' c:%d r:%d}", t.Type, t.Lexeme, t.Pos.Col, t.Pos.Row)
}

type Pos struct {
	Col    int // Column in file
	Row    int // Row in file, same as line number -1
	Offset int // Byte offset in file
}

// Line returns the 1-indexed line number, as used in diagnostics.
func (p Pos) Line() int {
	return p.Row + 1
}
