package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	STRING
	NUMBER
	IDENT

	TRUE
	FALSE
	RETURN
	FUNC
	CLOSURE
	IF
	ELIF
	ELSE
	WHILE
	FOR
	TRY
	CATCH
	PRINT
	INPUT

	// Type keywords
	NUM_TYPE
	STR_TYPE
	BOOL_TYPE
	VOID_TYPE
	ANY_TYPE
	LIST_TYPE
	TUPLE_TYPE
	DICT_TYPE

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	DOT
	COMMA
	SEMI
	COLON
	EQ
	EQ_EQ
	NOT_EQ
	PLUS_EQ
	MINUS_EQ
	MULT_EQ
	DIV_EQ
	GREATER
	LESS
	GREATER_EQ
	LESS_EQ
	ARROW
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACK
	RBRACK
	AND
	AND_AND
	OR
	OR_OR
	NOT
)

var Keywords = map[string]TokenType{
	"true":    TRUE,
	"false":   FALSE,
	"return":  RETURN,
	"func":    FUNC,
	"closure": CLOSURE,
	"if":      IF,
	"elif":    ELIF,
	"else":    ELSE,
	"while":   WHILE,
	"for":     FOR,
	"try":     TRY,
	"catch":   CATCH,
	"print":   PRINT,
	"input":   INPUT,
	"num":     NUM_TYPE,
	"str":     STR_TYPE,
	"bool":    BOOL_TYPE,
	"void":    VOID_TYPE,
	"any":     ANY_TYPE,
	"list":    LIST_TYPE,
	"tuple":   TUPLE_TYPE,
	"dict":    DICT_TYPE,
}

var SingleSymbols = map[string]TokenType{
	"+": PLUS,
	"-": MINUS,
	"*": STAR,
	"/": SLASH,
	"%": PERCENT,
	"^": CARET,
	".": DOT,
	",": COMMA,
	";": SEMI,
	":": COLON,
	"=": EQ,
	">": GREATER,
	"<": LESS,
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
	"[": LBRACK,
	"]": RBRACK,
	"&": AND,
	"|": OR,
	"!": NOT,
}

// There is no ">>" symbol on purpose, so nested generic types such as
// list<list<num>> scan as two separate '>' tokens.
var DoubleSymbols = map[string]TokenType{
	"||": OR_OR,
	">=": GREATER_EQ,
	"<=": LESS_EQ,
	"&&": AND_AND,
	"==": EQ_EQ,
	"!=": NOT_EQ,
	"+=": PLUS_EQ,
	"-=": MINUS_EQ,
	"*=": MULT_EQ,
	"/=": DIV_EQ,
	"->": ARROW,
}

// IsTypeKeyword reports whether t starts a type annotation.
func IsTypeKeyword(t TokenType) bool {
	return t >= NUM_TYPE && t <= DICT_TYPE
}

// IsAssignOp reports whether t is = or one of the compound assignments.
func IsAssignOp(t TokenType) bool {
	switch t {
	case EQ, PLUS_EQ, MINUS_EQ, MULT_EQ, DIV_EQ:
		return true
	}
	return false
}

// Binary operator precedence, higher binds tighter. Returns 0 for tokens
// that are not binary operators.
var precedence = map[TokenType]int{
	OR_OR:      1,
	AND_AND:    2,
	AND:        3,
	OR:         3,
	EQ_EQ:      4,
	NOT_EQ:     4,
	LESS:       5,
	LESS_EQ:    5,
	GREATER:    5,
	GREATER_EQ: 5,
	PLUS:       6,
	MINUS:      6,
	STAR:       7,
	SLASH:      7,
	PERCENT:    7,
	CARET:      8,
}

func Precedence(t TokenType) int {
	return precedence[t]
}

// RightAssoc reports whether the binary operator t groups right to left.
func RightAssoc(t TokenType) bool {
	return t == CARET
}
