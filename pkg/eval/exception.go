package eval

import (
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Exception is a runtime error with the source context where it happened and
// the calls it passed through. It is also a value that try-catch binds.
type Exception struct {
	reason  error
	context *diag.Context
	// Call sites the exception passed through, innermost first.
	Traceback []TraceEntry
}

// TraceEntry is an entry of a traceback: a function and the place where it
// was called.
type TraceEntry struct {
	Fn      string
	Context *diag.Context
}

// NewException creates a new Exception.
func NewException(reason error, context *diag.Context) *Exception {
	return &Exception{reason: reason, context: context}
}

// Reason returns the Reason field if err is an *Exception. Otherwise it
// returns err itself.
func Reason(err error) error {
	if exc, ok := err.(*Exception); ok {
		return exc.reason
	}
	return err
}

// Reason returns the underlying error.
func (exc *Exception) Reason() error { return exc.reason }

// Context returns the source context where the exception happened.
func (exc *Exception) Context() *diag.Context { return exc.context }

// Error returns the message of the reason of the exception.
func (exc *Exception) Error() string { return exc.reason.Error() }

// Unwrap returns the reason.
func (exc *Exception) Unwrap() error { return exc.reason }

// ErrorKind returns the kind of the reason.
func (exc *Exception) ErrorKind() errs.Kind { return errs.KindOf(exc.reason) }

// clone returns a copy of exc whose traceback can grow independently.
func (exc *Exception) clone() *Exception {
	c := *exc
	c.Traceback = append([]TraceEntry(nil), exc.Traceback...)
	return &c
}

func (exc *Exception) addTrace(fn string, ctx *diag.Context) {
	exc.Traceback = append(exc.Traceback, TraceEntry{fn, ctx})
}

// Show shows the exception: its kind and message, the offending source line
// with a caret under the position, and the call chain.
func (exc *Exception) Show(indent string) string {
	var sb strings.Builder
	if exc.context == nil {
		sb.WriteString(diag.ShowMessage(exc.ErrorKind().String(), exc.reason.Error()))
	} else {
		d := &diag.Error{Type: exc.ErrorKind().String(), Message: exc.reason.Error(), Context: *exc.context}
		sb.WriteString(d.Show(indent))
	}
	if len(exc.Traceback) > 0 {
		sb.WriteString("\n" + indent + "Traceback (innermost first):")
		for _, entry := range exc.Traceback {
			sb.WriteString("\n" + indent + "  in " + fnDescription(entry.Fn) + ", called at ")
			sb.WriteString(entry.Context.ShowCompact())
		}
	}
	return sb.String()
}

func fnDescription(name string) string {
	if name == "" {
		return "anonymous function"
	}
	return name
}

// Kind returns "exception".
func (exc *Exception) Kind() string { return "exception" }

// Repr returns an opaque representation of the exception.
func (exc *Exception) Repr() string {
	return "<exception " + exc.ErrorKind().String() + ": " + exc.reason.Error() + ">"
}

// String returns the message of the exception, so that printing a caught
// exception shows its message.
func (exc *Exception) String() string { return exc.reason.Error() }

// Member returns members exposed to code: kind, message, line, column and
// value (the thrown value, or null).
func (exc *Exception) Member(name string) (any, bool) {
	switch name {
	case "kind":
		return exc.ErrorKind().String(), true
	case "message":
		return exc.reason.Error(), true
	case "line", "column":
		if exc.context == nil {
			return nil, true
		}
		pos := exc.context.Position()
		if name == "line" {
			return float64(pos.Line), true
		}
		return float64(pos.Column), true
	case "value":
		if thrown, ok := exc.reason.(errs.Thrown); ok {
			return thrown.Value, true
		}
		return nil, true
	}
	return nil, false
}

var _ vals.Memberer = (*Exception)(nil)
