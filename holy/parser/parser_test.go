package parser

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/scanner"
	"github.com/jesperkha/holy/holy/token"
	"github.com/nalgeon/be"
)

func parserFrom(src string) *Parser {
	file := token.NewFile("test.holy", src)
	s := scanner.New(file)
	toks := s.ScanAll()
	return New(file, toks)
}

func printTree(tree *ast.Ast) string {
	d := ast.NewDebugVisitor(tree)
	tree.Walk(d)
	return d.String()
}

func TestNoInput(t *testing.T) {
	p := parserFrom("")
	tree := p.Parse()

	be.Err(t, p.Error(), nil)
	be.Equal(t, len(tree.Stmts), 0)
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"num x = 1;\n",
		"list<list<num>> m = [[1, 2], [3]];\n",
		"dict<str, num> d = {\"a\": 1, \"b\": 2};\n",
		"dict<num, any> d = {};\n",
		"tuple<num> t = (1, 2);\n",
		"tuple<num> t = (1,);\n",
		"x[0][1] += 2;\n",
		"print(a, b + 1);\n",
		"num y = (1 + 2) * 3;\n",
		"num z = 2 ^ 3 ^ 2;\n",
		"num w = (2 ^ 3) ^ 2;\n",
		"num v = a - (b - c);\n",
		"bool b = !(x && y) || -z < 3;\n",
		"bool m = a & b | c;\n",
		"num n = l.len() + l.sum();\n",
		"l.append(1);\n",
		"l.pop(0, 1);\n",
		"l.insert(4, 0);\n",
		"a.join(b);\n",
		"str s = t[1:2];\n",
		"list<num> k = d.keys();\n",
		"f(1, \"a\");\n",
		"x = input<num>;\n",
		"m[0] = input<list<str>>;\n",
		"func num add(num a, num b) {\n    return a + b;\n}\n",
		"func void nothing() {\n    return;\n}\n",
		"closure num sq = (num a) -> num {\n    return a * a;\n}\n",
		"if (x < 1) {\n    print(x);\n} elif (x < 2) {\n} else {\n    return;\n}\n",
		"while (true) {\n}\n",
		"for (num i = 0; i < 10; i += 1) {\n    print(i);\n}\n",
		"try {\n    x = 1;\n} catch {\n}\n",
		"try {\n}\n",
		"func void f() {\n    while (x) {\n        x = false;\n    }\n}\n",
	}

	for _, src := range sources {
		p := parserFrom(src)
		tree := p.Parse()
		be.Err(t, p.Error(), nil)
		be.Equal(t, printTree(tree), src)
	}
}

func TestCommentsAndWhitespace(t *testing.T) {
	p := parserFrom("# leading comment\nnum   x=1 ; # trailing\r\n\n  print( x );")
	tree := p.Parse()

	be.Err(t, p.Error(), nil)
	be.Equal(t, printTree(tree), "num x = 1;\nprint(x);\n")
}

func TestSyntaxErrors(t *testing.T) {
	sources := []string{
		"num x = ;",
		"x = 1",
		"func num f( {}",
		"list<num x = [];",
		"1 = 2;",
		"l.foo();",
		"l.len(1);",
		"l.insert(1);",
		"a.join(1);",
		"print();",
		"for (x = 1; x; x += 1) {}",
		"if x {}",
		"closure num f = (num a) num {}",
		"dict<num> d = {};",
		"num x = {1 2};",
		"while (true) {",
		"}",
		"x = input num;",
		"x = input<num;",
		"x = input<>;",
	}

	for _, src := range sources {
		p := parserFrom(src)
		p.Parse()
		if p.Error() == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestErrorRecovery(t *testing.T) {
	p := parserFrom("num x = ;\nnum y = 2;\nnum z = ;\nfunc void f() {\n    x = ;\n    y = 1;\n}")
	tree := p.Parse()

	be.Equal(t, p.NumErrors, 3)
	be.Err(t, p.Error(), "expected expression")

	// y and f survive
	be.Equal(t, len(tree.Stmts), 2)
}

func TestNestingLimit(t *testing.T) {
	src := "num x = " + strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300) + ";"
	p := parserFrom(src)
	p.Parse()
	be.Err(t, p.Error(), "nesting too deep")

	p = parserFrom(src)
	p.MaxDepth = 400
	p.Parse()
	be.Err(t, p.Error(), nil)
}

func TestAccessorNodes(t *testing.T) {
	p := parserFrom("l.insert(4, 0, 1);")
	tree := p.Parse()
	be.Err(t, p.Error(), nil)

	stmt := tree.Stmts[0].(*ast.ExprStmt)
	insert, ok := stmt.E.(*ast.Insert)
	if !ok {
		t.Fatalf("expected insert node, got:\n%s", spew.Sdump(stmt.E))
	}

	be.Equal(t, insert.X.Name, "l")
	be.Equal(t, len(insert.Path), 2)
	be.Equal(t, insert.Value.(*ast.Literal).Value, "4")
}

func TestAssignTargets(t *testing.T) {
	p := parserFrom("x = 1;\nm[0][1] -= 2;")
	tree := p.Parse()
	be.Err(t, p.Error(), nil)

	first := tree.Stmts[0].(*ast.Assign)
	be.Equal(t, first.Target.Name, "x")
	be.Equal(t, len(first.Indices), 0)
	be.Equal(t, first.Op.Type, token.EQ)

	second := tree.Stmts[1].(*ast.Assign)
	be.Equal(t, second.Target.Name, "m")
	be.Equal(t, len(second.Indices), 2)
	be.Equal(t, second.Op.Type, token.MINUS_EQ)
}

func TestPositions(t *testing.T) {
	p := parserFrom("num x = 1;\n  y = x + 2;")
	tree := p.Parse()
	be.Err(t, p.Error(), nil)

	assign := tree.Stmts[1]
	be.Equal(t, assign.Pos().Line(), 2)
	be.Equal(t, assign.Pos().Col, 2)
	be.Equal(t, assign.End().Col, 11)
}

func TestIncomplete(t *testing.T) {
	cases := map[string]bool{
		"func num f() {":        true,
		"num x = 1 +":           true,
		"if (x) { print(x); }":  false,
		"num x = ;":             false,
		"num x = ; while (x) {": false,
	}

	for src, want := range cases {
		p := parserFrom(src)
		p.Parse()
		be.Equal(t, p.Incomplete, want)
	}
}
