package shell

import (
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/must"
	. "github.com/Bryantad/Sona-sub001/pkg/prog/progtest"
)

func TestScript(t *testing.T) {
	setupTest(t)
	must.WriteFile("hello.sona", "print('hello')")
	must.WriteFile("invalid-utf8.sona", "\xff")
	must.WriteFile("args.sona", "import runtime\nprint(runtime.args)")
	must.WriteFile("fail.sona", "func f() {\n  throw 'boom'\n}\nf()\n")

	Test(t, &Program{},
		ThatSona("hello.sona").WritesStdout("hello\n"),
		ThatSona("-c", "print('hello')").WritesStdout("hello\n"),
		ThatSona("args.sona", "a", "b c").WritesStdout(`["a", "b c"]` + "\n"),
		ThatSona("-c", "import runtime; print(runtime.args)", "x").
			WritesStdout(`["x"]` + "\n"),

		ThatSona("invalid-utf8.sona").
			ExitsWith(2).
			WritesStderrContaining("cannot read script"),
		ThatSona("non-existent.sona").
			ExitsWith(2).
			WritesStderrContaining("cannot read script"),

		// syntax error
		ThatSona("-c", "let b = * 2").
			ExitsWith(2).
			WritesStderrContaining("SyntaxError: unexpected '*', should be expression"),
		// syntax error with -compileonly
		ThatSona("-compileonly", "-c", "let b = * 2").
			ExitsWith(2).
			WritesStderrContaining("SyntaxError: unexpected '*', should be expression"),
		// syntax error with -compileonly -json
		ThatSona("-compileonly", "-json", "-c", "let b = * 2").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":8,"end":9,"line":1,"column":9,"message":"unexpected '*', should be expression"}]` + "\n"),
		// no error with -compileonly -json
		ThatSona("-compileonly", "-json", "-c", "print(1)").
			WritesStdout("[]\n"),

		// runtime error
		ThatSona("-c", "print(nope)").
			ExitsWith(2).
			WritesStdout("").
			WritesStderrContaining("undefined variable: nope"),
		// runtime error is reported with the location in the file
		ThatSona("fail.sona").
			ExitsWith(2).
			WritesStderrContaining("fail.sona:2:"),
		// runtime error with -compileonly
		ThatSona("-compileonly", "-c", "print(nope)").DoesNothing(),
	)
}
