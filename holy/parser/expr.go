package parser

import (
	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
)

func (p *Parser) parseExpr() ast.Expr {
	if p.panicMode {
		return nil
	}
	return p.parseBinary(1)
}

// Precedence climbing over the binary operator table in the token package.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()

	for !p.panicMode {
		op := p.cur()
		prec := token.Precedence(op.Type)
		if prec == 0 || prec < minPrec {
			break
		}

		p.next()
		next := prec + 1
		if token.RightAssoc(op.Type) {
			next = prec
		}

		left = &ast.Binary{
			X:  left,
			Op: op,
			Y:  p.parseBinary(next),
		}
	}

	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if p.matchMany(token.NOT, token.MINUS) {
		op := p.consume()
		return &ast.Unary{
			Op: op,
			X:  p.parseUnary(),
		}
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur().Type {
	case token.IDENT:
		return p.parseIdentExpr()

	case token.NUMBER, token.STRING, token.TRUE, token.FALSE:
		t := p.consume()
		return &ast.Literal{
			T:     t,
			Value: t.Lexeme,
		}

	case token.LPAREN:
		return p.parseGroup()

	case token.LBRACK:
		lbrack := p.consume()
		elems, rbrack := p.parseExprList(token.RBRACK, "]")
		return &ast.ListLit{
			LBrack: lbrack,
			Elems:  elems,
			RBrack: rbrack,
		}

	case token.LBRACE:
		return p.parseDict()

	case token.INPUT:
		kw := p.consume()
		p.expect(token.LESS, "<")
		typ := p.parseType()
		end := p.expect(token.GREATER, ">")
		if p.panicMode {
			return nil
		}
		return &ast.Input{
			Kw:    kw,
			Type:  typ,
			Close: end,
		}
	}

	p.err("expected expression, found %s", describe(p.cur()))
	return nil
}

// Parses a comma separated list of expressions and the closing token. The
// opening token must already be consumed.
func (p *Parser) parseExprList(end token.TokenType, what string) ([]ast.Expr, token.Token) {
	exprs := []ast.Expr{}
	if p.match(end) {
		return exprs, p.consume()
	}

	for !p.panicMode {
		exprs = append(exprs, p.parseExpr())
		if !p.match(token.COMMA) {
			break
		}

		p.next() // Comma
	}

	return exprs, p.expect(end, what)
}

// Parses either a grouping, which does not produce a node, or a tuple
// literal. A single element tuple is written with a trailing comma: (a,)
func (p *Parser) parseGroup() ast.Expr {
	lparen := p.consume()

	if p.match(token.RPAREN) {
		return &ast.TupleLit{
			LParen: lparen,
			RParen: p.consume(),
		}
	}

	first := p.parseExpr()
	if !p.match(token.COMMA) {
		p.expect(token.RPAREN, ")")
		return first
	}

	elems := []ast.Expr{first}
	for p.match(token.COMMA) && !p.panicMode {
		p.next()
		if p.match(token.RPAREN) {
			break
		}
		elems = append(elems, p.parseExpr())
	}

	return &ast.TupleLit{
		LParen: lparen,
		Elems:  elems,
		RParen: p.expect(token.RPAREN, ")"),
	}
}

func (p *Parser) parseDict() ast.Expr {
	lit := &ast.DictLit{
		LBrace: p.consume(),
	}

	if p.match(token.RBRACE) {
		lit.RBrace = p.consume()
		return lit
	}

	for !p.panicMode {
		key := p.parseExpr()
		p.expect(token.COLON, ":")
		value := p.parseExpr()
		lit.Pairs = append(lit.Pairs, &ast.Pair{Key: key, Value: value})

		if !p.match(token.COMMA) {
			break
		}
		p.next()
	}

	lit.RBrace = p.expect(token.RBRACE, "}")
	return lit
}

// Parses an identifier and any call, accessor or index following it.
func (p *Parser) parseIdentExpr() ast.Expr {
	t := p.consume()
	ident := &ast.Ident{
		T:    t,
		Name: t.Lexeme,
	}

	switch p.cur().Type {
	case token.LPAREN:
		lparen := p.consume()
		args, rparen := p.parseExprList(token.RPAREN, ")")
		return &ast.Call{
			Callee: ident,
			LParen: lparen,
			Args:   args,
			RParen: rparen,
		}

	case token.DOT:
		p.next()
		return p.parseAccessor(ident)

	case token.LBRACK:
		return p.parseIndex(ident)
	}

	return ident
}

func (p *Parser) parseIndex(x *ast.Ident) ast.Expr {
	p.next() // [
	first := p.parseExpr()

	if p.match(token.COLON) {
		p.next()
		high := p.parseExpr()
		return &ast.Slice{
			X:      x,
			Low:    first,
			High:   high,
			RBrack: p.expect(token.RBRACK, "]"),
		}
	}

	index := &ast.Index{
		X:       x,
		Indices: []ast.Expr{first},
		RBrack:  p.expect(token.RBRACK, "]"),
	}

	for p.match(token.LBRACK) && !p.panicMode {
		p.next()
		index.Indices = append(index.Indices, p.parseExpr())
		index.RBrack = p.expect(token.RBRACK, "]")
	}

	return index
}

func (p *Parser) parseAccessor(x *ast.Ident) ast.Expr {
	name := p.expect(token.IDENT, "accessor name")
	p.expect(token.LPAREN, "(")
	if p.panicMode {
		return nil
	}

	args, rparen := p.parseExprList(token.RPAREN, ")")
	if p.panicMode {
		return nil
	}

	arity := func(min, max int) bool {
		if len(args) < min || (max >= 0 && len(args) > max) {
			p.errAt(name, "wrong number of arguments to %s", name.Lexeme)
			return false
		}
		return true
	}

	switch name.Lexeme {
	case "len":
		if arity(0, 0) {
			return &ast.Len{X: x, RParen: rparen}
		}
	case "values":
		if arity(0, 0) {
			return &ast.Values{X: x, RParen: rparen}
		}
	case "keys":
		if arity(0, 0) {
			return &ast.Keys{X: x, RParen: rparen}
		}
	case "copy":
		if arity(0, 0) {
			return &ast.Copy{X: x, RParen: rparen}
		}
	case "sum":
		if arity(0, 0) {
			return &ast.Sum{X: x, RParen: rparen}
		}
	case "append":
		if arity(1, 1) {
			return &ast.Append{X: x, Value: args[0], RParen: rparen}
		}
	case "count":
		if arity(1, 1) {
			return &ast.Count{X: x, Value: args[0], RParen: rparen}
		}
	case "join":
		if arity(1, 1) {
			other, ok := args[0].(*ast.Ident)
			if !ok {
				p.errAt(name, "join expects a variable name")
				return nil
			}
			return &ast.Join{X: x, Other: other, RParen: rparen}
		}
	case "pop":
		if arity(1, -1) {
			return &ast.Pop{X: x, Path: args, RParen: rparen}
		}
	case "insert":
		if arity(2, -1) {
			return &ast.Insert{X: x, Value: args[0], Path: args[1:], RParen: rparen}
		}
	default:
		p.errAt(name, "unknown accessor %s", name.Lexeme)
	}

	return nil
}
