package ast

import (
	"fmt"
	"strings"

	"github.com/jesperkha/holy/holy/token"
)

// DebugVisitor prints the AST identically to its source, with ideal formatting.
// Used for testing the parser (by comparing AST to string) and for debugging.
type DebugVisitor struct {
	sb          *strings.Builder
	indentLevel int
	tree        *Ast
	indented    bool
}

func NewDebugVisitor(tree *Ast) *DebugVisitor {
	return &DebugVisitor{
		sb:          &strings.Builder{},
		tree:        tree,
		indentLevel: 0,
	}
}

func (d *DebugVisitor) Print() {
	d.tree.Walk(d)
	fmt.Println(d.String())
}

func (d *DebugVisitor) String() string {
	return d.sb.String()
}

func (d *DebugVisitor) write(f string, args ...any) {
	if d.indentLevel != 0 && !d.indented {
		s := strings.Repeat("    ", d.indentLevel) + fmt.Sprintf(f, args...)
		d.sb.WriteString(s)
		d.indented = true
	} else {
		fmt.Fprintf(d.sb, f, args...)
	}
}

func (d *DebugVisitor) writeln(f string, args ...any) {
	d.write(f+"\n", args...)
	d.indented = false
}

func (d *DebugVisitor) list(exprs []Expr) {
	for i, e := range exprs {
		e.Accept(d)
		if i < len(exprs)-1 {
			d.write(", ")
		}
	}
}

// Writes the block without a trailing newline so else/elif/catch can follow.
func (d *DebugVisitor) block(node *Block) {
	d.writeln("{")
	d.indentLevel++
	for _, stmt := range node.Stmts {
		stmt.Accept(d)
	}
	d.indentLevel--
	d.write("}")
}

func (d *DebugVisitor) params(node *NamedTuple) {
	d.write("(")
	for i, param := range node.Fields {
		d.write("%s %s", param.Type.String(), param.Name.Lexeme)
		if i < len(node.Fields)-1 {
			d.write(", ")
		}
	}
	d.write(")")
}

func (d *DebugVisitor) varDecl(node *VarDecl) {
	d.write("%s %s = ", node.Type.String(), node.Name.Lexeme)
	node.Init.Accept(d)
}

func (d *DebugVisitor) assign(node *Assign) {
	node.Target.Accept(d)
	for _, idx := range node.Indices {
		d.write("[")
		idx.Accept(d)
		d.write("]")
	}
	d.write(" %s ", node.Op.Lexeme)
	node.Value.Accept(d)
}

// Wraps binary operands in parenthesis when the grouping would otherwise
// be lost.
func (d *DebugVisitor) operand(e Expr, parent token.TokenType, right bool) {
	b, ok := e.(*Binary)
	if !ok {
		e.Accept(d)
		return
	}

	outer, inner := token.Precedence(parent), token.Precedence(b.Op.Type)
	wrap := inner < outer || (inner == outer && right != token.RightAssoc(parent))
	if wrap {
		d.write("(")
	}
	e.Accept(d)
	if wrap {
		d.write(")")
	}
}

func (d *DebugVisitor) VisitVarDecl(node *VarDecl) {
	d.varDecl(node)
	d.writeln(";")
}

func (d *DebugVisitor) VisitAssign(node *Assign) {
	d.assign(node)
	d.writeln(";")
}

func (d *DebugVisitor) VisitExprStmt(node *ExprStmt) {
	node.E.Accept(d)
	d.writeln(";")
}

func (d *DebugVisitor) VisitWhile(node *While) {
	d.write("while (")
	node.Cond.Accept(d)
	d.write(") ")
	d.block(node.Body)
	d.writeln("")
}

func (d *DebugVisitor) VisitFor(node *For) {
	d.write("for (")
	d.varDecl(node.Init)
	d.write("; ")
	node.Cond.Accept(d)
	d.write("; ")
	d.assign(node.Post)
	d.write(") ")
	d.block(node.Body)
	d.writeln("")
}

func (d *DebugVisitor) VisitIf(node *If) {
	d.write("if (")
	node.Cond.Accept(d)
	d.write(") ")
	d.block(node.Body)

	for _, elif := range node.Elifs {
		d.write(" elif (")
		elif.Cond.Accept(d)
		d.write(") ")
		d.block(elif.Body)
	}

	if node.Else != nil {
		d.write(" else ")
		d.block(node.Else)
	}
	d.writeln("")
}

func (d *DebugVisitor) VisitTry(node *Try) {
	d.write("try ")
	d.block(node.Body)
	if node.Catch != nil {
		d.write(" catch ")
		d.block(node.Catch)
	}
	d.writeln("")
}

func (d *DebugVisitor) VisitReturn(node *Return) {
	if node.E == nil {
		d.writeln("return;")
		return
	}

	d.write("return ")
	node.E.Accept(d)
	d.writeln(";")
}

func (d *DebugVisitor) VisitPrint(node *Print) {
	d.write("print(")
	d.list(node.Args)
	d.writeln(");")
}

func (d *DebugVisitor) VisitBlock(node *Block) {
	d.block(node)
	d.writeln("")
}

func (d *DebugVisitor) VisitFunc(node *Func) {
	d.write("func %s %s", node.RetType.String(), node.Name.Lexeme)
	d.params(node.Params)
	d.write(" ")
	d.block(node.Block)
	d.writeln("")
}

func (d *DebugVisitor) VisitClosure(node *Closure) {
	d.write("closure %s %s = ", node.Type.String(), node.Name.Lexeme)
	d.params(node.Params)
	d.write(" -> %s ", node.BodyType.String())
	d.block(node.Block)
	d.writeln("")
}

func (d *DebugVisitor) VisitIdent(node *Ident) {
	d.write("%s", node.Name)
}

func (d *DebugVisitor) VisitLiteral(node *Literal) {
	d.write("%s", node.Value)
}

func (d *DebugVisitor) VisitUnary(node *Unary) {
	d.write("%s", node.Op.Lexeme)
	if _, ok := node.X.(*Binary); ok {
		d.write("(")
		node.X.Accept(d)
		d.write(")")
		return
	}
	node.X.Accept(d)
}

func (d *DebugVisitor) VisitBinary(node *Binary) {
	d.operand(node.X, node.Op.Type, false)
	d.write(" %s ", node.Op.Lexeme)
	d.operand(node.Y, node.Op.Type, true)
}

func (d *DebugVisitor) VisitCall(node *Call) {
	node.Callee.Accept(d)
	d.write("(")
	d.list(node.Args)
	d.write(")")
}

func (d *DebugVisitor) VisitListLit(node *ListLit) {
	d.write("[")
	d.list(node.Elems)
	d.write("]")
}

func (d *DebugVisitor) VisitTupleLit(node *TupleLit) {
	d.write("(")
	d.list(node.Elems)
	if len(node.Elems) == 1 {
		d.write(",")
	}
	d.write(")")
}

func (d *DebugVisitor) VisitDictLit(node *DictLit) {
	d.write("{")
	for i, pair := range node.Pairs {
		pair.Key.Accept(d)
		d.write(": ")
		pair.Value.Accept(d)
		if i < len(node.Pairs)-1 {
			d.write(", ")
		}
	}
	d.write("}")
}

func (d *DebugVisitor) VisitIndex(node *Index) {
	node.X.Accept(d)
	for _, idx := range node.Indices {
		d.write("[")
		idx.Accept(d)
		d.write("]")
	}
}

func (d *DebugVisitor) VisitSlice(node *Slice) {
	node.X.Accept(d)
	d.write("[")
	node.Low.Accept(d)
	d.write(":")
	node.High.Accept(d)
	d.write("]")
}

func (d *DebugVisitor) VisitInput(node *Input) {
	d.write("input<%s>", node.Type)
}

func (d *DebugVisitor) method(x *Ident, name string, args ...Expr) {
	x.Accept(d)
	d.write(".%s(", name)
	d.list(args)
	d.write(")")
}

func (d *DebugVisitor) VisitLen(node *Len)       { d.method(node.X, "len") }
func (d *DebugVisitor) VisitValues(node *Values) { d.method(node.X, "values") }
func (d *DebugVisitor) VisitKeys(node *Keys)     { d.method(node.X, "keys") }
func (d *DebugVisitor) VisitCopy(node *Copy)     { d.method(node.X, "copy") }
func (d *DebugVisitor) VisitSum(node *Sum)       { d.method(node.X, "sum") }
func (d *DebugVisitor) VisitAppend(node *Append) { d.method(node.X, "append", node.Value) }
func (d *DebugVisitor) VisitCount(node *Count)   { d.method(node.X, "count", node.Value) }
func (d *DebugVisitor) VisitJoin(node *Join)     { d.method(node.X, "join", node.Other) }
func (d *DebugVisitor) VisitPop(node *Pop)       { d.method(node.X, "pop", node.Path...) }

func (d *DebugVisitor) VisitInsert(node *Insert) {
	d.method(node.X, "insert", append([]Expr{node.Value}, node.Path...)...)
}
