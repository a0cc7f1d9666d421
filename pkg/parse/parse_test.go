package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
	"github.com/Bryantad/Sona-sub001/pkg/tt"
)

// Shorthands for building expected trees. Ranges are ignored when comparing.
func num(f float64) *NumberLit { return &NumberLit{Value: f} }
func str(s string) *StringLit { return &StringLit{Value: s} }
func id(name string) *Ident { return &Ident{Name: name} }
func bin(op string, l, r Expr) Expr { return &BinaryExpr{Op: op, Left: l, Right: r} }
func chunk(stmts ...Stmt) *Chunk { return &Chunk{Stmts: stmts} }
func expr(e Expr) Stmt { return &ExprStmt{Expr: e} }

func call(callee Expr, args ...Expr) Expr {
	return &CallExpr{Callee: callee, Args: args}
}

func member(obj Expr, name string) Expr {
	return &MemberExpr{Object: obj, Name: name}
}

var ignoreRanges = cmp.Options{
	tt.CommonCmpOpt,
	cmpopts.IgnoreTypes(diag.Ranging{}, stmtNode{}, exprNode{}),
}

var parseTests = []struct {
	name string
	code string
	want *Chunk
}{
	{
		name: "empty source",
		code: "",
		want: chunk(),
	},
	{
		name: "separators and comments",
		code: "  ;\n\n# comment\n a // trailing\n;b;\n",
		want: chunk(expr(id("a")), expr(id("b"))),
	},
	{
		name: "let and assignment",
		code: "let x = 1\nx = 'two'\nxs[0] = 3\no.f = 4",
		want: chunk(
			&LetStmt{Name: "x", Value: num(1)},
			&AssignStmt{Target: id("x"), Value: str("two")},
			&AssignStmt{Target: &IndexExpr{Object: id("xs"), Index: num(0)}, Value: num(3)},
			&AssignStmt{Target: member(id("o"), "f"), Value: num(4)},
		),
	},
	{
		name: "precedence of arithmetic",
		code: "a + b * 2 - -c % 3",
		want: chunk(expr(bin("-",
			bin("+", id("a"), bin("*", id("b"), num(2))),
			bin("%", &UnaryExpr{Op: "-", Operand: id("c")}, num(3))))),
	},
	{
		name: "precedence of logic and comparison",
		code: "not a == 1 or b < 2 and c",
		want: chunk(expr(bin("or",
			&UnaryExpr{Op: "not", Operand: bin("==", id("a"), num(1))},
			bin("and", bin("<", id("b"), num(2)), id("c"))))),
	},
	{
		name: "parentheses",
		code: "(a + b) * c",
		want: chunk(expr(bin("*", bin("+", id("a"), id("b")), id("c")))),
	},
	{
		name: "literals",
		code: `print(1.5, "a\tb", true, false, null, [1, [2]], {"k": 1, k2: 2, 3: x})`,
		want: chunk(&PrintStmt{Args: []Expr{
			num(1.5), str("a\tb"), &BoolLit{Value: true}, &BoolLit{}, &NullLit{},
			&ListLit{Elems: []Expr{num(1), &ListLit{Elems: []Expr{num(2)}}}},
			&MapLit{Pairs: []*MapPair{
				{str("k"), num(1)}, {str("k2"), num(2)}, {num(3), id("x")}}},
		}}),
	},
	{
		name: "exponents",
		code: "print(1e3, 2.5E-2, 1e+21, 1.e)",
		want: chunk(&PrintStmt{Args: []Expr{
			num(1000), num(0.025), num(1e21), member(num(1), "e")}}),
	},
	{
		name: "newlines inside brackets and trailing commas",
		code: "f(\n  1,\n  [2,\n 3,],\n)",
		want: chunk(expr(call(id("f"), num(1),
			&ListLit{Elems: []Expr{num(2), num(3)}}))),
	},
	{
		name: "postfix chain",
		code: "m.a.b(1)[2].c",
		want: chunk(expr(member(
			&IndexExpr{Object: call(member(member(id("m"), "a"), "b"), num(1)), Index: num(2)},
			"c"))),
	},
	{
		name: "if elif else",
		code: "if a { x }\nelif b { y } else if c { z }\nelse { w }",
		want: chunk(&IfStmt{
			Branches: []*IfBranch{
				{id("a"), chunk(expr(id("x")))},
				{id("b"), chunk(expr(id("y")))},
				{id("c"), chunk(expr(id("z")))},
			},
			Else: chunk(expr(id("w"))),
		}),
	},
	{
		name: "if without else followed by statement",
		code: "if a { }\nb",
		want: chunk(&IfStmt{Branches: []*IfBranch{{id("a"), chunk()}}}, expr(id("b"))),
	},
	{
		name: "loops",
		code: "while i < 3 { i = i + 1; continue }\nfor x in xs { break }",
		want: chunk(
			&WhileStmt{Cond: bin("<", id("i"), num(3)), Body: chunk(
				&AssignStmt{Target: id("i"), Value: bin("+", id("i"), num(1))},
				&ContinueStmt{})},
			&ForStmt{Var: "x", Iter: id("xs"), Body: chunk(&BreakStmt{})},
		),
	},
	{
		name: "function definition and literal",
		code: "func add(a, b) {\n  return a + b\n}\nlet f = func () { return }",
		want: chunk(
			&FuncDef{Name: "add", Params: []string{"a", "b"}, Body: chunk(
				&ReturnStmt{Value: bin("+", id("a"), id("b"))})},
			&LetStmt{Name: "f", Value: &FuncLit{Body: chunk(&ReturnStmt{})}},
		),
	},
	{
		name: "try catch throw",
		code: "try { throw 'x' } catch e { print(e) }\ntry { } catch { }",
		want: chunk(
			&TryStmt{
				Body:     chunk(&ThrowStmt{Value: str("x")}),
				CatchVar: "e",
				Catch:    chunk(&PrintStmt{Args: []Expr{id("e")}}),
			},
			&TryStmt{Body: chunk(), Catch: chunk()},
		),
	},
	{
		name: "import",
		code: "import io\nimport a.b.smod as m",
		want: chunk(
			&ImportStmt{Path: []string{"io"}},
			&ImportStmt{Path: []string{"a", "b", "smod"}, Alias: "m"},
		),
	},
	{
		name: "class",
		code: "class P {\n  let x = 0\n  func get(self) { return self.x }\n}",
		want: chunk(&ClassDef{
			Name:   "P",
			Fields: []*LetStmt{{Name: "x", Value: num(0)}},
			Methods: []*FuncDef{{Name: "get", Params: []string{"self"}, Body: chunk(
				&ReturnStmt{Value: member(id("self"), "x")})}},
		}),
	},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.name, func(t *testing.T) {
			tree, err := Parse(SourceForTest(test.code), Config{})
			if err != nil {
				t.Fatalf("Parse(%q) returns error: %v", test.code, err)
			}
			if diff := cmp.Diff(test.want, tree.Root, ignoreRanges); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

var parseErrorTests = []struct {
	name    string
	code    string
	wantMsg string
	wantPos diag.Position
}{
	{
		name:    "truncated parenthesized expression",
		code:    "let x = (",
		wantMsg: "unexpected end of input, should be expression",
		wantPos: diag.Position{Line: 1, Column: 10},
	},
	{
		name:    "unexpected token on a later line",
		code:    "let a = 1\nlet b = * 2",
		wantMsg: "unexpected '*', should be expression",
		wantPos: diag.Position{Line: 2, Column: 9},
	},
	{
		name:    "missing separator",
		code:    "a b",
		wantMsg: "unexpected 'b', should be newline or ';'",
		wantPos: diag.Position{Line: 1, Column: 3},
	},
	{
		name:    "unclosed block",
		code:    "while x {\n  y",
		wantMsg: "unexpected end of input, should be '}'",
		wantPos: diag.Position{Line: 2, Column: 4},
	},
	{
		name:    "keyword as variable name",
		code:    "let if = 1",
		wantMsg: "unexpected 'if', should be variable name",
		wantPos: diag.Position{Line: 1, Column: 5},
	},
	{
		name:    "assignment to a call",
		code:    "f() = 1",
		wantMsg: "cannot assign to this expression",
		wantPos: diag.Position{Line: 1, Column: 1},
	},
	{
		name:    "unterminated string",
		code:    "print(1)\nprint('abc",
		wantMsg: "string not terminated",
		wantPos: diag.Position{Line: 2, Column: 7},
	},
	{
		name:    "invalid escape",
		code:    `"a\qb"`,
		wantMsg: "invalid escape sequence",
		wantPos: diag.Position{Line: 1, Column: 3},
	},
	{
		name:    "unexpected rune",
		code:    "x = 1 @ 2",
		wantMsg: "unexpected rune '@'",
		wantPos: diag.Position{Line: 1, Column: 7},
	},
	{
		name:    "earlier parse error wins over later scan error",
		code:    "let = 1\n'unterminated",
		wantMsg: "unexpected '=', should be variable name",
		wantPos: diag.Position{Line: 1, Column: 5},
	},
	{
		name:    "duplicate parameter",
		code:    "func f(a, a) { }",
		wantMsg: "duplicate parameter a",
		wantPos: diag.Position{Line: 1, Column: 11},
	},
	{
		name:    "statement in class body",
		code:    "class C { print(1) }",
		wantMsg: "class body may only contain let and func",
		wantPos: diag.Position{Line: 1, Column: 11},
	},
	{
		name:    "try without catch",
		code:    "try { }\nx",
		wantMsg: "unexpected newline, should be 'catch'",
		wantPos: diag.Position{Line: 1, Column: 8},
	},
}

func TestParse_Errors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.name, func(t *testing.T) {
			tree, err := Parse(SourceForTest(test.code), Config{})
			if tree.Root != nil {
				t.Errorf("got non-nil root")
			}
			parseErr := GetError(err)
			if parseErr == nil {
				t.Fatalf("got error %v, want a syntax error", err)
			}
			if parseErr.Type != "SyntaxError" {
				t.Errorf("got type %q, want SyntaxError", parseErr.Type)
			}
			if parseErr.Message != test.wantMsg {
				t.Errorf("got message %q, want %q", parseErr.Message, test.wantMsg)
			}
			if pos := parseErr.Position(); pos != test.wantPos {
				t.Errorf("got position %v, want %v", pos, test.wantPos)
			}
		})
	}
}

func TestParse_ErrorShowsCaret(t *testing.T) {
	diag.SetStyled(false)
	t.Cleanup(func() { diag.SetStyled(true) })

	_, err := Parse(Source{Name: "a.sona", Code: "let a = 1\nlet b = * 2"}, Config{})
	want := "SyntaxError: unexpected '*', should be expression\n" +
		"  a.sona:2:9\n" +
		"  let b = * 2\n" +
		"          ^"
	if got := GetError(err).Show(""); got != want {
		t.Errorf("Show() (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestParse_Ranges(t *testing.T) {
	code := "let x = foo.bar(1)"
	tree, err := Parse(SourceForTest(code), Config{})
	if err != nil {
		t.Fatal(err)
	}
	let := tree.Root.Stmts[0].(*LetStmt)
	if r := let.Range(); r != (diag.Ranging{From: 0, To: len(code)}) {
		t.Errorf("let range = %v", r)
	}
	callExpr := let.Value.(*CallExpr)
	if got := code[callExpr.From:callExpr.To]; got != "foo.bar(1)" {
		t.Errorf("call text = %q", got)
	}
	m := callExpr.Callee.(*MemberExpr)
	if got := code[m.NameRange.From:m.NameRange.To]; got != "bar" {
		t.Errorf("member name text = %q", got)
	}
}

func TestParse_ReturnsTreeContainingSourceFromArgument(t *testing.T) {
	src := SourceForTest("a")
	tree, _ := Parse(src, Config{})
	if tree.Source != src {
		t.Errorf("tree.Source = %v, want %v", tree.Source, src)
	}
}

func TestIsIncomplete(t *testing.T) {
	isIncomplete := func(code string) bool {
		_, err := Parse(SourceForTest(code), Config{})
		return IsIncomplete(err)
	}
	tt.Test(t, tt.Fn("IsIncomplete", isIncomplete), tt.Table{
		tt.Args("if x {").Rets(true),
		tt.Args("func f(a,").Rets(true),
		tt.Args("print(1 +").Rets(true),
		tt.Args("print(1)").Rets(false),
		tt.Args("let = 1").Rets(false),
		tt.Args(")").Rets(false),
	})
}
