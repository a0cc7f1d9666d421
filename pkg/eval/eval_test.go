package eval_test

import (
	"strings"
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	. "github.com/Bryantad/Sona-sub001/pkg/eval/evaltest"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

func TestArithmeticAndPrint(t *testing.T) {
	Test(t,
		That("let x = 5", "let y = 3", "print(x + y)").Prints("8\n"),
		That("print(7 / 2, 7 % 2, 2 * 3 - 1)").Prints("3.5 1 5\n"),
		That("print(-(1 + 2))").Prints("-3\n"),
		That("print('ab' + 'cd', 'ab' * 2, 3 * 'x')").Prints("abcd abab xxx\n"),
		That("print([1] + [2, 3])").Prints("[1, 2, 3]\n"),
		That("print()").Prints("\n"),
		That("print(null, true, {'a': [1, 'x']})").Prints(`null true {"a": [1, "x"]}` + "\n"),
		That("print(1e21, 1e+21 == 1000000000000000000000, 2.5e-1)").Prints("1e+21 true 0.25\n"),

		That("1 / 0").Throws(errs.ZeroDivision{Op: "/", Left: "number", Right: "number"}),
		That("1 % 0").Throws(ErrorWithKind(errs.ValueError)),
		That("1 + 'a'").Throws(errs.BadOperands{Op: "+", Left: "number", Right: "string"}),
		That("-'a'").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("1 + null").Throws(ErrorWithType(errs.MissingOperand{})),
		That("'a' * -1").Throws(ErrorWithKind(errs.ValueError)),
	)
}

func TestComparisonAndLogic(t *testing.T) {
	Test(t,
		That("print(1 < 2, 2 <= 2, 3 > 4, 'a' < 'b', 1 == 1, [1] == [1], 1 != '1')").
			Prints("true true false true true true true\n"),
		That("print(not 0, not 'x', 0 or 'd', 1 and 2, null and x)").
			Prints("true false d 2 null\n"),
		// Short circuit leaves undefined names unevaluated.
		That("print(true or nope, false and nope)").Prints("true false\n"),
		That("print([] < [])").Throws(ErrorWithKind(errs.TypeMismatchError)),
	)
}

func TestVariables(t *testing.T) {
	Test(t,
		That("let x = 1").Binds("x", 1.0),
		That("x = 2").Binds("x", 2.0),
		That("let x = 1", "if true { x = 2 }").Binds("x", 2.0),
		That("let x = 1", "if true { let x = 2 }").Binds("x", 1.0),
		That("if true { let y = 1 }", "print(y)").Throws(ErrorWithKind(errs.NameResolutionError)),
		That("print(q)").Throws(errs.NoSuchVariable{Name: "q"}),
		// Builtins can be shadowed.
		That("let len = 3", "print(len)").Prints("3\n"),
	)
}

func TestSessionPersistsAcrossRuns(t *testing.T) {
	Test(t,
		That("let x = 1").Then("x = x + 1").Then("print(x)").Prints("2\n"),
		That("func f() { return 3 }").Then("print(f())").Prints("3\n"),
		That("print(q)").Then("print(1)").Prints("1\n").
			Throws(ErrorWithKind(errs.NameResolutionError)),
	)
}

func TestIfWhileFor(t *testing.T) {
	Test(t,
		That("if 0 { print(1) } elif '' { print(2) } else { print(3) }").Prints("3\n"),
		That("if [1] { print(1) } else if x { print(2) }").Prints("1\n"),
		That("let i = 0", "while i < 3 { print(i); i = i + 1 }").Prints("0\n1\n2\n"),
		That("for x in [1, 2, 3] { if x == 2 { continue }; print(x) }").Prints("1\n3\n"),
		That("for x in range(10) { if x == 2 { break }; print(x) }").Prints("0\n1\n"),
		That("for c in 'ab' { print(c) }").Prints("a\nb\n"),
		That("for k in {'a': 1, 'b': 2} { print(k) }").Prints("a\nb\n"),
		That("for x in 1 { }").Throws(ErrorWithKind(errs.TypeMismatchError)),
		// The loop variable does not leak.
		That("for x in [1] { }", "print(x)").Throws(ErrorWithKind(errs.NameResolutionError)),
		// Mutating the list while iterating does not change the iteration.
		That("let xs = [1, 2]", "for x in xs { append(xs, x) }", "print(xs)").
			Prints("[1, 2, 1, 2]\n"),
	)
}

func TestBreakAndContinueAreLocal(t *testing.T) {
	Test(t,
		// break exits only the innermost loop.
		That(
			"for i in range(2) {",
			"  for j in range(5) { if j == 1 { break }; print(i, j) }",
			"}").Prints("0 0\n1 0\n"),
		That(
			"let i = 0",
			"while i < 2 {",
			"  i = i + 1",
			"  for j in range(3) { if j == 0 { continue }; print(i, j) }",
			"}").Prints("1 1\n1 2\n2 1\n2 2\n"),
		That("break").Throws(errs.UncaughtFlow{Flow: "break"}),
		That("if true { continue }").Throws(errs.UncaughtFlow{Flow: "continue"}),
		That("return 1").Throws(ErrorWithMessage("return outside of function")),
		That("func f() { break }", "while true { f() }").
			Throws(ErrorWithKind(errs.ControlFlowError), "f"),
	)
}

func TestFunctions(t *testing.T) {
	Test(t,
		That(
			"func factorial(n) {",
			"  if n <= 1 { return 1 }",
			"  return n * factorial(n - 1)",
			"}",
			"print(factorial(5))").Prints("120\n"),
		// return short-circuits the rest of the body, from inside loops too.
		That(
			"func f() {",
			"  for x in [1, 2, 3] { while true { return x } }",
			"  print('unreachable')",
			"}",
			"print(f())").Prints("1\n"),
		That("func f() { }", "print(f())").Prints("null\n"),
		That("func f() { return }", "print(f())").Prints("null\n"),
		That("func f(a, b) { return a }", "f(1)").Throws(
			errs.ArityMismatch{What: "arguments of f", ValidLow: 2, ValidHigh: 2, Actual: 1}),
		That("func f() { return 1 }", "func f() { return 2 }", "print(f())").Prints("2\n"),
		That("let f = func (x) { return x * 2 }", "print(f(4), f)").Prints("8 <fn>\n"),
		That("func f() { }", "print(f)").Prints("<fn f>\n"),
		That("let x = 1", "x()").Throws(errs.NotCallable{What: "x", Kind: "number"}),
	)
}

func TestScopeIsolation(t *testing.T) {
	Test(t,
		// Parameters and locals do not leak into the caller.
		That("func f(a) { let b = a }", "f(1)", "print(a)").
			Throws(ErrorWithKind(errs.NameResolutionError)),
		That("func f(a) { let b = a }", "f(1)", "print(b)").
			Throws(ErrorWithKind(errs.NameResolutionError)),
		// A callee does not see the locals of its caller.
		That(
			"func g() { return secret }",
			"func f() { let secret = 1; return g() }",
			"f()").Throws(errs.NoSuchVariable{Name: "secret"}, "g", "f"),
		// Assignment to a global from a function updates it.
		That("let n = 0", "func inc() { n = n + 1 }", "inc()", "inc()").Binds("n", 2.0),
		// A local let shadows the global.
		That("let n = 0", "func f() { let n = 5 }", "f()").Binds("n", 0.0),
	)
}

func TestClosures(t *testing.T) {
	Test(t,
		That(
			"func counter() {",
			"  let n = 0",
			"  return func () { n = n + 1; return n }",
			"}",
			"let c = counter()",
			"c()",
			"print(c(), counter()())").Prints("2 1\n"),
		// Recursion through the enclosing scope.
		That(
			"func outer() {",
			"  func fib(n) { if n < 2 { return n }; return fib(n - 1) + fib(n - 2) }",
			"  return fib(10)",
			"}",
			"print(outer())").Prints("55\n"),
	)
}

func TestContainers(t *testing.T) {
	Test(t,
		That("let xs = [1, 2, 3]", "xs[0] = 'a'", "print(xs, xs[-1], len(xs))").
			Prints(`["a", 2, 3] 3 3` + "\n"),
		That("let m = {a: 1}", "m['b'] = 2", "m.c = 3", "print(m, m.a, m['b'])").
			Prints(`{"a": 1, "b": 2, "c": 3} 1 2` + "\n"),
		That("print('héllo'[1])").Prints("é\n"),
		That("[1][1]").Throws(
			errs.OutOfRange{What: "index", ValidLow: "-1", ValidHigh: "0", Actual: "1"}),
		That("let m = {}", "m['k']").Throws(errs.NoSuchKey{Key: `"k"`}),
		That("let m = {}", "m.k").Throws(errs.NoSuchMember{Name: "k", On: "map"}),
		That("let m = {[1]: 2}").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("1[0]").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("let s = 'x'", "s[0] = 'y'").Throws(ErrorWithKind(errs.TypeMismatchError)),
	)
}

func TestTryCatchThrow(t *testing.T) {
	Test(t,
		That("try { throw 'boom' } catch e { print(e, e.kind, e.value) }").
			Prints("boom RuntimeError boom\n"),
		That("try { print(q) } catch e { print(e.kind, e.line, e.column) }").
			Prints("NameResolutionError 1 13\n"),
		That("try { 1 / 0 } catch { print('caught') }", "print('after')").
			Prints("caught\nafter\n"),
		That("try { print(1) } catch { print(2) }").Prints("1\n"),
		// Rethrowing keeps the original error.
		That("try { try { x } catch e { throw e } } catch e2 { print(e2.kind) }").
			Prints("NameResolutionError\n"),
		That("throw {'code': 1}").Throws(ErrorWithType(errs.Thrown{})),
		That("func f() { throw 'x' }", "func g() { f() }", "g()").
			Throws(ErrorWithMessage("x"), "f", "g"),
		// Flows pass through try.
		That("func f() { try { return 1 } catch { } ; return 2 }", "print(f())").
			Prints("1\n"),
		// The catch variable is scoped to the handler.
		That("try { throw 1 } catch e { }", "e").
			Throws(ErrorWithKind(errs.NameResolutionError)),
	)
}

func TestClasses(t *testing.T) {
	Test(t,
		That(
			"class Point {",
			"  let x = 0",
			"  let y = x + 1",
			"  func init(self, x) { self.x = x }",
			"  func sum(self) { return self.x + self.y }",
			"}",
			"let p = Point(5)",
			"print(p.sum(), p, type(p), Point)").Prints("6 <Point object> Point <class Point>\n"),
		That("class C { }", "C(1)").Throws(ErrorWithKind(errs.ArityError)),
		That("class C { func init(self, a, b) { } }", "C(1)").Throws(errs.ArityMismatch{
			What: "arguments of C", ValidLow: 2, ValidHigh: 2, Actual: 1}),
		That("class C { }", "C().nope()").Throws(errs.NoSuchMember{Name: "nope", On: "C"}),
		That(
			"class C { func f(self) { throw 'e' } }",
			"C().f()").Throws(ErrorWithMessage("e"), "C.f"),
	)
}

func TestBuiltins(t *testing.T) {
	Test(t,
		That("print(len('héllo'), len([1]), len({}))").Prints("5 1 0\n"),
		That("len(1)").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("print(str(1.5) + 'x', repr('a'), repr([null]))").Prints(`1.5x "a" [null]` + "\n"),
		That("print(num('2.5') + 1, int(-2.7), int('3'), num(true))").Prints("3.5 -2 3 1\n"),
		That("num('x')").Throws(ErrorWithKind(errs.ValueError)),
		That("print(bool(''), bool([0]))").Prints("false true\n"),
		That("print(type(null), type({}), type(len), type(1))").Prints("null map fn number\n"),
		That("print(range(3), range(1, 3), range(5, 0, -2))").Prints("[0, 1, 2] [1, 2] [5, 3, 1]\n"),
		That("range()").Throws(ErrorWithKind(errs.ArityError)),
		That("range(0, 1, 0)").Throws(ErrorWithKind(errs.ValueError)),
		That("range(1.5)").Throws(errs.WrongType{
			What: "argument 1 of range", Valid: "integer", Actual: "number"}),
		That("let xs = [1]", "append(xs, 2, 3)", "print(pop(xs), xs)").Prints("3 [1, 2]\n"),
		That("pop([])").Throws(ErrorWithKind(errs.AttributeResolutionError)),
		That("append(1, 2)").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("let m = {a: 1, b: 2}", "print(keys(m), values(m), has(m, 'a'), has(m, 'z'))").
			Prints(`["a", "b"] [1, 2] true false` + "\n"),
		That("print(has([1, 2], 2), has('abc', 'bc'))").Prints("true true\n"),
		That("has(1, 2)").Throws(ErrorWithKind(errs.TypeMismatchError)),
		That("print(join('-', [1, 'a']), split('a,b', ','), upper('x'), lower('Y'))").
			Prints(`1-a ["a", "b"] X y` + "\n"),
	)
}

func TestRun_NeverPanics(t *testing.T) {
	ev := eval.NewEvaler()
	var sb strings.Builder
	ev.SetStdout(&sb)

	o := ev.Run(parse.SourceForTest("let x = ("))
	if o.OK() || o.Kind() != errs.SyntaxError {
		t.Errorf("got kind %v, want SyntaxError", o.Kind())
	}
	if !strings.Contains(o.Show(), "SyntaxError") {
		t.Errorf("Show() = %q, want it to mention SyntaxError", o.Show())
	}

	o = ev.Run(parse.SourceForTest("print(nope)"))
	if o.OK() || o.Kind() != errs.NameResolutionError {
		t.Errorf("got kind %v, want NameResolutionError", o.Kind())
	}

	o = ev.Run(parse.SourceForTest("print('still alive')"))
	if !o.OK() || o.Show() != "" {
		t.Errorf("got outcome %v, want OK", o.Err)
	}
	if sb.String() != "still alive\n" {
		t.Errorf("got output %q", sb.String())
	}
}

func TestCheck(t *testing.T) {
	ev := eval.NewEvaler()
	if err := ev.Check(parse.SourceForTest("print(nope)")); err != nil {
		t.Errorf("Check returned %v for valid code", err)
	}
	if _, ok := ev.Global("nope"); ok {
		t.Errorf("Check executed code")
	}
	err := ev.Check(parse.SourceForTest("let = 1"))
	if parse.GetError(err) == nil {
		t.Errorf("Check returned %v, want parse error", err)
	}
}

func TestCall(t *testing.T) {
	ev := eval.NewEvaler()
	err := ev.Eval(parse.SourceForTest("func add(a, b) { return a + b }"))
	if err != nil {
		t.Fatal(err)
	}
	fn, _ := ev.Global("add")
	v, err := ev.Call(fn.(eval.Callable), []any{1.0, 2.0}, "[test]")
	if err != nil || !vals.Equal(v, 3.0) {
		t.Errorf("Call -> %v, %v, want 3, nil", v, err)
	}
}
