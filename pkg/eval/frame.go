package eval

import (
	"github.com/Bryantad/Sona-sub001/pkg/diag"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Frame contains information of the current running function, akin to a call
// frame in native CPU execution.
type Frame struct {
	Evaler *Evaler

	scope *Scope
	src   parse.Source
}

// Scope returns the scope chain of the frame.
func (fm *Frame) Scope() *Scope { return fm.scope }

// Returns a frame for running code from src, with the given frame on top of
// its scope chain.
func (fm *Frame) fork(src parse.Source, top *env) *Frame {
	return &Frame{fm.Evaler, newScope(top, fm.Evaler.builtin), src}
}

func (fm *Frame) context(r diag.Ranger) *diag.Context {
	return diag.NewContext(fm.src.Name, fm.src.Code, r)
}

// Turns err into an *Exception positioned at r. Errors that already carry a
// position are returned unchanged.
func (fm *Frame) errorp(r diag.Ranger, err error) error {
	switch err := err.(type) {
	case nil:
		return nil
	case *Exception, *parse.Error:
		return err
	default:
		return NewException(err, fm.context(r))
	}
}

// The kind of a flow.
type flowKind int

const (
	normalFlow flowKind = iota
	returnFlow
	breakFlow
	continueFlow
)

func (k flowKind) String() string {
	switch k {
	case returnFlow:
		return "return"
	case breakFlow:
		return "break"
	case continueFlow:
		return "continue"
	}
	return "normal"
}

// The result of executing a statement. A non-normal flow is propagated by
// every statement up to the construct that handles it: the function call
// boundary for return, the innermost loop for break and continue.
type flow struct {
	kind flowKind
	// The value of a return flow.
	value any
	// The statement that started the flow.
	node parse.Node
}

var normal = flow{}
