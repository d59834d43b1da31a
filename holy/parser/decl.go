package parser

import (
	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
)

func (p *Parser) parseVarDecl() *ast.VarDecl {
	typ := p.parseType()
	name := p.expect(token.IDENT, "variable name")
	p.expect(token.EQ, "=")
	init := p.parseExpr()

	return &ast.VarDecl{
		Type: typ,
		Name: name,
		Init: init,
	}
}

func (p *Parser) parseFunc() *ast.Func {
	kw := p.consume() // Func keyword is guaranteed

	typ := p.parseType()
	name := p.expect(token.IDENT, "function name")
	params := p.parseNamedTuple()
	block := p.parseBlock()

	return &ast.Func{
		Kw:      kw,
		RetType: typ,
		Name:    name,
		Params:  params,
		Block:   block,
	}
}

func (p *Parser) parseClosure() *ast.Closure {
	kw := p.consume()

	typ := p.parseType()
	name := p.expect(token.IDENT, "closure name")
	p.expect(token.EQ, "=")
	params := p.parseNamedTuple()
	p.expect(token.ARROW, "->")
	bodyType := p.parseType()
	block := p.parseBlock()

	return &ast.Closure{
		Kw:       kw,
		Type:     typ,
		Name:     name,
		Params:   params,
		BodyType: bodyType,
		Block:    block,
	}
}

func (p *Parser) parseNamedTuple() *ast.NamedTuple {
	if p.panicMode {
		return nil
	}

	lparen := p.expect(token.LPAREN, "(")

	if p.match(token.RPAREN) {
		rparen := p.consume()
		return &ast.NamedTuple{
			LParen: lparen,
			RParen: rparen,
		}
	}

	tuple := &ast.NamedTuple{
		LParen: lparen,
	}

	for !p.eof() && !p.panicMode {
		typ := p.parseType()
		name := p.expect(token.IDENT, "parameter name")

		tuple.Fields = append(tuple.Fields, &ast.Field{
			Name: name,
			Type: typ,
		})

		if p.match(token.RPAREN) {
			break
		}

		p.expect(token.COMMA, ",")
	}

	tuple.RParen = p.expect(token.RPAREN, ")")
	return tuple
}

func (p *Parser) parseType() ast.Type {
	if p.panicMode {
		return nil
	}

	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch p.cur().Type {
	case token.NUM_TYPE, token.STR_TYPE, token.BOOL_TYPE, token.VOID_TYPE, token.ANY_TYPE:
		return &ast.PrimitiveType{
			T: p.consume(),
		}

	case token.LIST_TYPE:
		t := p.consume()
		p.expect(token.LESS, "<")
		elem := p.parseType()
		return &ast.ListType{
			T:     t,
			Elem:  elem,
			Close: p.expect(token.GREATER, ">"),
		}

	case token.TUPLE_TYPE:
		t := p.consume()
		p.expect(token.LESS, "<")
		elem := p.parseType()
		return &ast.TupleType{
			T:     t,
			Elem:  elem,
			Close: p.expect(token.GREATER, ">"),
		}

	case token.DICT_TYPE:
		t := p.consume()
		p.expect(token.LESS, "<")
		key := p.parseType()
		p.expect(token.COMMA, ",")
		value := p.parseType()
		return &ast.DictType{
			T:     t,
			Key:   key,
			Value: value,
			Close: p.expect(token.GREATER, ">"),
		}
	}

	p.err("expected type, found %s", describe(p.cur()))
	return nil
}
