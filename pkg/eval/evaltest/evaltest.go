// Package evaltest provides a framework for testing Sona code.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("print(1 + 2)").Prints("3\n"),
//	    That("let x = [1]", "x[5] = 0").Throws(ErrorWithKind(errs.AttributeResolutionError)))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	setup  func(ev *eval.Evaler)
	verify func(t *testing.T, ev *eval.Evaler)
	want   result
}

type result struct {
	Out      []byte
	Bindings map[string]any

	ParseError error
	Exception  error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// executed separately in the same session, use the Then method to append code
// pieces.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "print(1)" prints "1" reads:
//
//	That("print(1)").Prints("1\n")
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that executes the given code in addition. Multiple
// arguments are joined with newlines.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Evaler before the code is executed.
func (c Case) WithSetup(f func(*eval.Evaler)) Case {
	c.setup = f
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any side effects, for example:
//
//	That("let x = 1").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Passes returns an altered Case that runs an additional verification
// function after the code is executed.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler)) Case {
	c.verify = f
	return c
}

// Prints returns an altered Case that requires the source code to produce the
// specified output when evaluated.
func (c Case) Prints(s string) Case {
	c.want.Out = []byte(s)
	return c
}

// Binds returns an altered Case that requires the global variable name to be
// bound to a value matching v after the code is executed. The value supports
// special matcher values like Approximately. Binds may be called multiple
// times.
func (c Case) Binds(name string, v any) Case {
	bindings := make(map[string]any, len(c.want.Bindings)+1)
	for k, v := range c.want.Bindings {
		bindings[k] = v
	}
	bindings[name] = v
	c.want.Bindings = bindings
	return c
}

// Throws returns an altered Case that requires the source code to raise an
// exception with the given reason. The reason supports special matcher values
// constructed by functions like ErrorWithKind.
//
// If at least one traceback entry is given, the traceback of the exception
// must list exactly the given function names, innermost first. If none is
// given, the traceback is not checked.
func (c Case) Throws(reason error, traceback ...string) Case {
	c.want.Exception = exc{reason, traceback}
	return c
}

// DoesNotParse returns an altered Case that requires the source code to fail
// parsing.
func (c Case) DoesNotParse() Case {
	c.want.ParseError = AnyParseError
	return c
}

// DoesNotParseWith returns an altered Case that requires the source code to
// fail parsing with the given message.
func (c Case) DoesNotParseWith(msg string) Case {
	c.want.ParseError = parseErrorWithMessage{msg}
	return c
}

// Test runs test cases. For each test case, a new Evaler is created with
// NewEvaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with NewEvaler and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			r := evalAndCollect(ev, tc.codes)

			if tc.verify != nil {
				tc.verify(t, ev)
			}
			if !bytes.Equal(tc.want.Out, r.Out) {
				t.Errorf("got out (-want +got):\n%s",
					cmp.Diff(string(tc.want.Out), string(r.Out)))
			}
			for name, want := range tc.want.Bindings {
				got, ok := ev.Global(name)
				if !ok {
					t.Errorf("variable %s not bound, want %s", name, vals.Repr(want))
				} else if !match(got, want) {
					t.Errorf("got %s = %s, want %s", name, vals.Repr(got), vals.Repr(want))
				}
			}
			if !matchErr(tc.want.ParseError, r.ParseError) {
				t.Errorf("got parse error %v, want %v",
					r.ParseError, tc.want.ParseError)
			}
			if !matchErr(tc.want.Exception, r.Exception) {
				t.Errorf("unexpected exception")
				if exc, ok := r.Exception.(*eval.Exception); ok {
					// For an *eval.Exception report the type of the underlying error.
					t.Logf("got: %T: %v", exc.Reason(), exc)
					t.Logf("traceback: %#v", tracebackFns(exc))
				} else {
					t.Logf("got: %T: %v", r.Exception, r.Exception)
				}
				t.Errorf("want: %v", tc.want.Exception)
			}
		})
	}
}

func evalAndCollect(ev *eval.Evaler, texts []string) result {
	var r result
	var out bytes.Buffer
	ev.SetStdout(&out)
	for _, text := range texts {
		err := ev.Eval(parse.SourceForTest(text))
		if parse.GetError(err) != nil {
			// NOTE: If multiple code pieces fail to parse, only the last
			// error is saved.
			r.ParseError = err
		} else if err != nil {
			// NOTE: If multiple code pieces raise exceptions, only the last
			// one is saved.
			r.Exception = err
		}
	}
	r.Out = out.Bytes()
	return r
}

func match(got, want any) bool {
	if matcher, ok := want.(ValueMatcher); ok {
		return matcher.matchValue(got)
	}
	return vals.Equal(got, want)
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got)
}
