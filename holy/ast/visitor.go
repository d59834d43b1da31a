package ast

// Visitor has one method per node record. Adding a node means adding a
// method here, so every visitor must handle it before the tree compiles.
type Visitor interface {
	VisitVarDecl(node *VarDecl)
	VisitAssign(node *Assign)
	VisitExprStmt(node *ExprStmt)
	VisitWhile(node *While)
	VisitFor(node *For)
	VisitIf(node *If)
	VisitTry(node *Try)
	VisitReturn(node *Return)
	VisitPrint(node *Print)
	VisitBlock(node *Block)
	VisitFunc(node *Func)
	VisitClosure(node *Closure)

	VisitIdent(node *Ident)
	VisitLiteral(node *Literal)
	VisitUnary(node *Unary)
	VisitBinary(node *Binary)
	VisitCall(node *Call)
	VisitListLit(node *ListLit)
	VisitTupleLit(node *TupleLit)
	VisitDictLit(node *DictLit)
	VisitIndex(node *Index)
	VisitSlice(node *Slice)
	VisitInput(node *Input)
	VisitLen(node *Len)
	VisitValues(node *Values)
	VisitKeys(node *Keys)
	VisitCopy(node *Copy)
	VisitSum(node *Sum)
	VisitAppend(node *Append)
	VisitCount(node *Count)
	VisitJoin(node *Join)
	VisitPop(node *Pop)
	VisitInsert(node *Insert)
}

func (n *VarDecl) Accept(v Visitor)  { v.VisitVarDecl(n) }
func (n *Assign) Accept(v Visitor)   { v.VisitAssign(n) }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *While) Accept(v Visitor)    { v.VisitWhile(n) }
func (n *For) Accept(v Visitor)      { v.VisitFor(n) }
func (n *If) Accept(v Visitor)       { v.VisitIf(n) }
func (n *Try) Accept(v Visitor)      { v.VisitTry(n) }
func (n *Return) Accept(v Visitor)   { v.VisitReturn(n) }
func (n *Print) Accept(v Visitor)    { v.VisitPrint(n) }
func (n *Block) Accept(v Visitor)    { v.VisitBlock(n) }
func (n *Func) Accept(v Visitor)     { v.VisitFunc(n) }
func (n *Closure) Accept(v Visitor)  { v.VisitClosure(n) }

func (n *Ident) Accept(v Visitor)    { v.VisitIdent(n) }
func (n *Literal) Accept(v Visitor)  { v.VisitLiteral(n) }
func (n *Unary) Accept(v Visitor)    { v.VisitUnary(n) }
func (n *Binary) Accept(v Visitor)   { v.VisitBinary(n) }
func (n *Call) Accept(v Visitor)     { v.VisitCall(n) }
func (n *ListLit) Accept(v Visitor)  { v.VisitListLit(n) }
func (n *TupleLit) Accept(v Visitor) { v.VisitTupleLit(n) }
func (n *DictLit) Accept(v Visitor)  { v.VisitDictLit(n) }
func (n *Index) Accept(v Visitor)    { v.VisitIndex(n) }
func (n *Slice) Accept(v Visitor)    { v.VisitSlice(n) }
func (n *Input) Accept(v Visitor)    { v.VisitInput(n) }
func (n *Len) Accept(v Visitor)      { v.VisitLen(n) }
func (n *Values) Accept(v Visitor)   { v.VisitValues(n) }
func (n *Keys) Accept(v Visitor)     { v.VisitKeys(n) }
func (n *Copy) Accept(v Visitor)     { v.VisitCopy(n) }
func (n *Sum) Accept(v Visitor)      { v.VisitSum(n) }
func (n *Append) Accept(v Visitor)   { v.VisitAppend(n) }
func (n *Count) Accept(v Visitor)    { v.VisitCount(n) }
func (n *Join) Accept(v Visitor)     { v.VisitJoin(n) }
func (n *Pop) Accept(v Visitor)      { v.VisitPop(n) }
func (n *Insert) Accept(v Visitor)   { v.VisitInsert(n) }
