package evaltest

import (
	"fmt"
	"reflect"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

type errorMatcher interface{ matchError(error) bool }

// An errorMatcher for exceptions.
type exc struct {
	reason    error
	traceback []string
}

func (e exc) Error() string {
	if len(e.traceback) == 0 {
		return fmt.Sprintf("exception with reason %v", e.reason)
	}
	return fmt.Sprintf("exception with reason %v and traceback %v", e.reason, e.traceback)
}

func (e exc) matchError(e2 error) bool {
	if e2, ok := e2.(*eval.Exception); ok {
		return matchErr(e.reason, e2.Reason()) &&
			(len(e.traceback) == 0 ||
				reflect.DeepEqual(e.traceback, tracebackFns(e2)))
	}
	return false
}

func tracebackFns(exc *eval.Exception) []string {
	fns := []string{}
	for _, entry := range exc.Traceback {
		fns = append(fns, entry.Fn)
	}
	return fns
}

// AnyParseError is an error that can be passed to Case.Throws to match any
// parse error.
var AnyParseError anyParseError

type anyParseError struct{}

func (anyParseError) Error() string           { return "any parse error" }
func (anyParseError) matchError(e error) bool { return parse.GetError(e) != nil }

// An errorMatcher for parse errors with the given message.
type parseErrorWithMessage struct{ msg string }

func (e parseErrorWithMessage) Error() string { return "parse error with message " + e.msg }

func (e parseErrorWithMessage) matchError(e2 error) bool {
	if pe := parse.GetError(e2); pe != nil {
		return pe.Message == e.msg
	}
	return false
}

// ErrorWithKind returns an error that can be passed to Case.Throws to match
// any error of the given kind.
func ErrorWithKind(k errs.Kind) error { return errWithKind{k} }

// An errorMatcher for any error with the given kind.
type errWithKind struct{ k errs.Kind }

func (e errWithKind) Error() string { return "error with kind " + e.k.String() }

func (e errWithKind) matchError(e2 error) bool {
	return e2 != nil && errs.KindOf(e2) == e.k
}

// ErrorWithType returns an error that can be passed to Case.Throws to match
// any error with the same type as the argument.
func ErrorWithType(v error) error { return errWithType{v} }

// An errorMatcher for any error with the given type.
type errWithType struct{ v error }

func (e errWithType) Error() string { return fmt.Sprintf("error with type %T", e.v) }

func (e errWithType) matchError(e2 error) bool {
	return reflect.TypeOf(e.v) == reflect.TypeOf(e2)
}

// ErrorWithMessage returns an error that can be passed to Case.Throws to match
// any error with the given message.
func ErrorWithMessage(msg string) error { return errWithMessage{msg} }

// An errorMatcher for any error with the given message.
type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "error with message " + e.msg }

func (e errWithMessage) matchError(e2 error) bool {
	return e2 != nil && e.msg == e2.Error()
}

type errOneOf struct{ errs []error }

// OneOfErrors returns an error that can be passed to Case.Throws to match any
// of the given errors.
func OneOfErrors(errs ...error) error { return errOneOf{errs} }

func (e errOneOf) Error() string { return fmt.Sprint("one of", e.errs) }

func (e errOneOf) matchError(gotError error) bool {
	for _, want := range e.errs {
		if matchErr(want, gotError) {
			return true
		}
	}
	return false
}
