package re

import (
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	. "github.com/Bryantad/Sona-sub001/pkg/eval/evaltest"
)

func setup(ev *eval.Evaler) { ev.AddModule("re", Ns) }

func TestRe(t *testing.T) {
	TestWithSetup(t, setup,
		That("import re", "print(re.match('^a+$', 'aaa'), re.match('b', 'aaa'))").
			Prints("true false\n"),
		That("import re", "print(re.quote('a.b'))").Prints(`a\.b` + "\n"),
		That("import re", "let m = re.find('(a)(x)?', 'ba')[0]").
			Binds("m", MapContainingPairs("text", "a", "start", 1.0, "end", 2.0)),
		That("import re", "print(re.find('(a)(x)?', 'ba')[0].groups, len(re.find('a', 'aaa')))").
			Prints(`["a", null] 3` + "\n"),
		That("import re", "print(re.replace('a(b)', '<$1>', 'xabab'))").Prints("x<b><b>\n"),
		That("import re", "print(re.replace('[0-9]+', func (s) { return num(s) * 2 }, 'a1b20'))").
			Prints("a2b40\n"),
		That("import re", "re.replace('a', func (s) { throw 'bad' }, 'a')").
			Throws(ErrorWithMessage("bad")),
		That("import re", "re.replace('a', 1, 'a')").Throws(ErrorWithKind(errs.ValueError)),
		That("import re", "print(re.split(',\\\\s*', 'a, b,c'))").Prints(`["a", "b", "c"]` + "\n"),
		That("import re", "re.match('(', 'a')").Throws(errs.BadValue{
			What: "pattern", Valid: "valid regular expression", Actual: "("}),
	)
}
