package parser

import (
	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	if p.panicMode {
		return nil
	}

	switch p.cur().Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.TRY:
		return p.parseTry()
	case token.FUNC:
		return p.parseFunc()
	case token.CLOSURE:
		return p.parseClosure()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	}

	if token.IsTypeKeyword(p.cur().Type) {
		decl := p.parseVarDecl()
		p.expect(token.SEMI, ";")
		return decl
	}

	e := p.parseExpr()
	if p.panicMode {
		return nil
	}

	if token.IsAssignOp(p.cur().Type) {
		assign := p.parseAssignFrom(e)
		p.expect(token.SEMI, ";")
		return assign
	}

	p.expect(token.SEMI, ";")
	return &ast.ExprStmt{
		E: e,
	}
}

// Parses an assignment, where e is the already parsed target.
func (p *Parser) parseAssignFrom(e ast.Expr) *ast.Assign {
	assign := &ast.Assign{}

	switch target := e.(type) {
	case *ast.Ident:
		assign.Target = target
	case *ast.Index:
		assign.Target = target.X
		assign.Indices = target.Indices
	default:
		p.err("cannot assign to expression")
		return nil
	}

	assign.Op = p.consume()
	assign.Value = p.parseExpr()
	return assign
}

func (p *Parser) parseAssign() *ast.Assign {
	e := p.parseExpr()
	if p.panicMode {
		return nil
	}

	if !token.IsAssignOp(p.cur().Type) {
		p.err("expected assignment")
		return nil
	}

	return p.parseAssignFrom(e)
}

// Parses a parenthesized condition.
func (p *Parser) parseCond() ast.Expr {
	p.expect(token.LPAREN, "(")
	cond := p.parseExpr()
	p.expect(token.RPAREN, ")")
	return cond
}

func (p *Parser) parseIf() *ast.If {
	node := &ast.If{
		Kw: p.consume(), // If keyword is guaranteed
	}

	node.Cond = p.parseCond()
	node.Body = p.parseBlock()

	for p.match(token.ELIF) && !p.panicMode {
		elif := &ast.Elif{
			Kw: p.consume(),
		}

		elif.Cond = p.parseCond()
		elif.Body = p.parseBlock()
		node.Elifs = append(node.Elifs, elif)
	}

	if p.match(token.ELSE) && !p.panicMode {
		p.next()
		node.Else = p.parseBlock()
	}

	return node
}

func (p *Parser) parseWhile() *ast.While {
	kw := p.consume()
	cond := p.parseCond()
	body := p.parseBlock()

	return &ast.While{
		Kw:   kw,
		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseFor() *ast.For {
	node := &ast.For{
		Kw: p.consume(),
	}

	p.expect(token.LPAREN, "(")
	if !token.IsTypeKeyword(p.cur().Type) {
		p.err("expected variable declaration in for loop")
		return nil
	}

	node.Init = p.parseVarDecl()
	p.expect(token.SEMI, ";")
	node.Cond = p.parseExpr()
	p.expect(token.SEMI, ";")
	node.Post = p.parseAssign()
	p.expect(token.RPAREN, ")")
	node.Body = p.parseBlock()
	return node
}

func (p *Parser) parseTry() *ast.Try {
	node := &ast.Try{
		Kw: p.consume(),
	}

	node.Body = p.parseBlock()
	if p.match(token.CATCH) && !p.panicMode {
		p.next()
		node.Catch = p.parseBlock()
	}

	return node
}

func (p *Parser) parseReturn() *ast.Return {
	ret := p.consume() // Return keyword is guaranteed

	if p.match(token.SEMI) {
		p.next()
		return &ast.Return{
			Ret: ret,
			E:   nil,
		}
	}

	expr := p.parseExpr()
	p.expect(token.SEMI, ";")
	return &ast.Return{
		E:   expr,
		Ret: ret,
	}
}

func (p *Parser) parsePrint() *ast.Print {
	kw := p.consume()
	p.expect(token.LPAREN, "(")
	if p.match(token.RPAREN) {
		p.err("print expects at least one argument")
		return nil
	}

	args, _ := p.parseExprList(token.RPAREN, ")")
	p.expect(token.SEMI, ";")
	return &ast.Print{
		Kw:   kw,
		Args: args,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	if p.panicMode {
		return nil
	}

	if !p.enter() {
		return nil
	}
	defer p.leave()

	lbrace := p.expect(token.LBRACE, "{")
	stmts := []ast.Stmt{}

	for !p.eof() && !p.match(token.RBRACE) && !p.panicMode {
		start := p.pos
		s := p.parseStmt()
		if p.panicMode {
			p.synchronize(start)
			continue
		}

		stmts = append(stmts, s)
	}

	rbrace := p.expect(token.RBRACE, "}")
	return &ast.Block{
		LBrace: lbrace,
		Stmts:  stmts,
		RBrace: rbrace,
	}
}
