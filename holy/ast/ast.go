package ast

import "github.com/jesperkha/holy/holy/token"

type (
	Ast struct {
		// A program is a flat list of statements. Functions and closures are
		// statements too, and may appear inside any block.
		Stmts []Stmt
	}

	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	Expr interface {
		Node
		exprNode()
	}

	Stmt interface {
		Node
		stmtNode()
	}
)

func (t *Ast) Walk(v Visitor) {
	for _, stmt := range t.Stmts {
		stmt.Accept(v)
	}
}

type (
	// Single token identifier literal.
	Ident struct {
		T    token.Token
		Name string
	}

	// Primitive literal: number, string, true or false. String literals
	// keep their quotes in Value.
	Literal struct {
		T     token.Token
		Value string // Copied from the tokens Lexeme value for ease of use
	}

	Unary struct {
		Op token.Token
		X  Expr
	}

	Binary struct {
		X  Expr
		Op token.Token
		Y  Expr
	}

	// Function call. Only named functions can be called.
	Call struct {
		Callee *Ident
		LParen token.Token
		Args   []Expr
		RParen token.Token
	}

	ListLit struct {
		LBrack token.Token
		Elems  []Expr
		RBrack token.Token
	}

	TupleLit struct {
		LParen token.Token
		Elems  []Expr
		RParen token.Token
	}

	DictLit struct {
		LBrace token.Token
		Pairs  []*Pair
		RBrace token.Token
	}
)

// Container accessors. The receiver is always an identifier.
type (
	// x[i][j]
	Index struct {
		X       *Ident
		Indices []Expr
		RBrack  token.Token
	}

	// x[low:high]
	Slice struct {
		X      *Ident
		Low    Expr
		High   Expr
		RBrack token.Token
	}

	// input<T> reads a value of type T.
	Input struct {
		Kw    token.Token
		Type  Type
		Close token.Token
	}

	// x.len()
	Len struct {
		X      *Ident
		RParen token.Token
	}

	// x.values()
	Values struct {
		X      *Ident
		RParen token.Token
	}

	// x.keys()
	Keys struct {
		X      *Ident
		RParen token.Token
	}

	// x.copy()
	Copy struct {
		X      *Ident
		RParen token.Token
	}

	// x.sum()
	Sum struct {
		X      *Ident
		RParen token.Token
	}

	// x.append(value)
	Append struct {
		X      *Ident
		Value  Expr
		RParen token.Token
	}

	// x.count(value)
	Count struct {
		X      *Ident
		Value  Expr
		RParen token.Token
	}

	// x.join(other)
	Join struct {
		X      *Ident
		Other  *Ident
		RParen token.Token
	}

	// x.pop(k1, k2, ...) removes the element found by walking one key per
	// container layer.
	Pop struct {
		X      *Ident
		Path   []Expr
		RParen token.Token
	}

	// x.insert(value, k1, k2, ...) puts value at the slot found by walking
	// the guard path, one key per container layer.
	Insert struct {
		X      *Ident
		Value  Expr
		Path   []Expr
		RParen token.Token
	}
)

type (
	// type name = init;
	VarDecl struct {
		Type Type
		Name token.Token
		Init Expr
	}

	// target[i]... op value;
	Assign struct {
		Target  *Ident
		Indices []Expr
		Op      token.Token
		Value   Expr
	}

	ExprStmt struct {
		E Expr
	}

	While struct {
		Kw   token.Token
		Cond Expr
		Body *Block
	}

	For struct {
		Kw   token.Token
		Init *VarDecl
		Cond Expr
		Post *Assign
		Body *Block
	}

	If struct {
		Kw    token.Token
		Cond  Expr
		Body  *Block
		Elifs []*Elif
		Else  *Block // Is nil when there is no else branch
	}

	Try struct {
		Kw    token.Token
		Body  *Block
		Catch *Block // Is nil when there is no catch branch
	}

	Return struct {
		Ret token.Token
		E   Expr // Is nil when no return value is specified
	}

	Print struct {
		Kw   token.Token
		Args []Expr
	}

	Block struct {
		LBrace token.Token
		Stmts  []Stmt
		RBrace token.Token
	}

	// func type name(params) block
	Func struct {
		Kw      token.Token
		RetType Type
		Name    token.Token
		Params  *NamedTuple
		Block   *Block
	}

	// closure type name = (params) -> type block
	Closure struct {
		Kw       token.Token
		Type     Type
		Name     token.Token
		Params   *NamedTuple
		BodyType Type
		Block    *Block
	}
)

// Other AST node types.
// These types are not valid expressions or statements by themselves, but
// serve as containers for common features in other nodes.
type (
	// A field is a type-name combination. Eg. "num age"
	Field struct {
		Type Type
		Name token.Token
	}

	// A named tuple is a list of fields within parenthesis.
	// Eg. "(str name, num age)"
	NamedTuple struct {
		LParen token.Token
		Fields []*Field
		RParen token.Token
	}

	// Key value pair in a dict literal.
	Pair struct {
		Key   Expr
		Value Expr
	}

	Elif struct {
		Kw   token.Token
		Cond Expr
		Body *Block
	}
)

func (*Ident) exprNode()    {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*ListLit) exprNode()  {}
func (*TupleLit) exprNode() {}
func (*DictLit) exprNode()  {}
func (*Index) exprNode()    {}
func (*Slice) exprNode()    {}
func (*Input) exprNode()    {}
func (*Len) exprNode()      {}
func (*Values) exprNode()   {}
func (*Keys) exprNode()     {}
func (*Copy) exprNode()     {}
func (*Sum) exprNode()      {}
func (*Append) exprNode()   {}
func (*Count) exprNode()    {}
func (*Join) exprNode()     {}
func (*Pop) exprNode()      {}
func (*Insert) exprNode()   {}

func (*VarDecl) stmtNode()  {}
func (*Assign) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
func (*While) stmtNode()    {}
func (*For) stmtNode()      {}
func (*If) stmtNode()       {}
func (*Try) stmtNode()      {}
func (*Return) stmtNode()   {}
func (*Print) stmtNode()    {}
func (*Block) stmtNode()    {}
func (*Func) stmtNode()     {}
func (*Closure) stmtNode()  {}

func (i *Ident) Pos() token.Pos { return i.T.Pos }
func (i *Ident) End() token.Pos { return i.T.EndPos }

func (l *Literal) Pos() token.Pos { return l.T.Pos }
func (l *Literal) End() token.Pos { return l.T.EndPos }

func (u *Unary) Pos() token.Pos { return u.Op.Pos }
func (u *Unary) End() token.Pos { return u.X.End() }

func (b *Binary) Pos() token.Pos { return b.X.Pos() }
func (b *Binary) End() token.Pos { return b.Y.End() }

func (c *Call) Pos() token.Pos { return c.Callee.Pos() }
func (c *Call) End() token.Pos { return c.RParen.EndPos }

func (l *ListLit) Pos() token.Pos { return l.LBrack.Pos }
func (l *ListLit) End() token.Pos { return l.RBrack.EndPos }

func (t *TupleLit) Pos() token.Pos { return t.LParen.Pos }
func (t *TupleLit) End() token.Pos { return t.RParen.EndPos }

func (d *DictLit) Pos() token.Pos { return d.LBrace.Pos }
func (d *DictLit) End() token.Pos { return d.RBrace.EndPos }

func (i *Index) Pos() token.Pos  { return i.X.Pos() }
func (i *Index) End() token.Pos  { return i.RBrack.EndPos }
func (s *Slice) Pos() token.Pos  { return s.X.Pos() }
func (s *Slice) End() token.Pos  { return s.RBrack.EndPos }
func (i *Input) Pos() token.Pos  { return i.Kw.Pos }
func (i *Input) End() token.Pos  { return i.Close.EndPos }
func (l *Len) Pos() token.Pos    { return l.X.Pos() }
func (l *Len) End() token.Pos    { return l.RParen.EndPos }
func (v *Values) Pos() token.Pos { return v.X.Pos() }
func (v *Values) End() token.Pos { return v.RParen.EndPos }
func (k *Keys) Pos() token.Pos   { return k.X.Pos() }
func (k *Keys) End() token.Pos   { return k.RParen.EndPos }
func (c *Copy) Pos() token.Pos   { return c.X.Pos() }
func (c *Copy) End() token.Pos   { return c.RParen.EndPos }
func (s *Sum) Pos() token.Pos    { return s.X.Pos() }
func (s *Sum) End() token.Pos    { return s.RParen.EndPos }
func (a *Append) Pos() token.Pos { return a.X.Pos() }
func (a *Append) End() token.Pos { return a.RParen.EndPos }
func (c *Count) Pos() token.Pos  { return c.X.Pos() }
func (c *Count) End() token.Pos  { return c.RParen.EndPos }
func (j *Join) Pos() token.Pos   { return j.X.Pos() }
func (j *Join) End() token.Pos   { return j.RParen.EndPos }
func (p *Pop) Pos() token.Pos    { return p.X.Pos() }
func (p *Pop) End() token.Pos    { return p.RParen.EndPos }
func (i *Insert) Pos() token.Pos { return i.X.Pos() }
func (i *Insert) End() token.Pos { return i.RParen.EndPos }

func (d *VarDecl) Pos() token.Pos { return d.Type.Pos() }
func (d *VarDecl) End() token.Pos { return d.Init.End() }

func (a *Assign) Pos() token.Pos { return a.Target.Pos() }
func (a *Assign) End() token.Pos { return a.Value.End() }

func (e *ExprStmt) Pos() token.Pos { return e.E.Pos() }
func (e *ExprStmt) End() token.Pos { return e.E.End() }

func (w *While) Pos() token.Pos { return w.Kw.Pos }
func (w *While) End() token.Pos { return w.Body.End() }

func (f *For) Pos() token.Pos { return f.Kw.Pos }
func (f *For) End() token.Pos { return f.Body.End() }

func (i *If) Pos() token.Pos { return i.Kw.Pos }
func (i *If) End() token.Pos {
	if i.Else != nil {
		return i.Else.End()
	}
	if n := len(i.Elifs); n > 0 {
		return i.Elifs[n-1].Body.End()
	}
	return i.Body.End()
}

func (t *Try) Pos() token.Pos { return t.Kw.Pos }
func (t *Try) End() token.Pos {
	if t.Catch != nil {
		return t.Catch.End()
	}
	return t.Body.End()
}

func (r *Return) Pos() token.Pos { return r.Ret.Pos }
func (r *Return) End() token.Pos {
	if r.E != nil {
		return r.E.End()
	}
	return r.Ret.EndPos
}

func (p *Print) Pos() token.Pos { return p.Kw.Pos }
func (p *Print) End() token.Pos {
	if n := len(p.Args); n > 0 {
		return p.Args[n-1].End()
	}
	return p.Kw.EndPos
}

func (b *Block) Pos() token.Pos { return b.LBrace.Pos }
func (b *Block) End() token.Pos { return b.RBrace.EndPos }

// Functions and closures are reported at their name.
func (f *Func) Pos() token.Pos    { return f.Name.Pos }
func (f *Func) End() token.Pos    { return f.Name.EndPos }
func (c *Closure) Pos() token.Pos { return c.Name.Pos }
func (c *Closure) End() token.Pos { return c.Name.EndPos }

func (f *Field) Pos() token.Pos { return f.Type.Pos() }
func (f *Field) End() token.Pos { return f.Name.EndPos }
