package eval

import (
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Closure is a function defined in code. It captures the frame in which it is
// defined.
type Closure struct {
	// Name is empty for function literals.
	Name   string
	Params []string
	Body   *parse.Chunk

	captured *env
	src      parse.Source
}

var _ Callable = &Closure{}

// Kind returns "fn".
func (*Closure) Kind() string { return "fn" }

// Repr returns an opaque representation "<fn name>".
func (c *Closure) Repr() string {
	if c.Name == "" {
		return "<fn>"
	}
	return "<fn " + c.Name + ">"
}

// Call calls a closure. It runs the body in a new frame on top of the
// captured one, with the parameters bound to the arguments.
func (c *Closure) Call(fm *Frame, args []any) (any, error) {
	if len(args) != len(c.Params) {
		return nil, errs.ArityMismatch{
			What:     "arguments of " + fnDescription(c.Name),
			ValidLow: len(c.Params), ValidHigh: len(c.Params), Actual: len(args)}
	}
	callee := fm.fork(c.src, newEnv(c.captured))
	for i, param := range c.Params {
		callee.scope.Set(param, args[i])
	}
	f, err := callee.execChunk(c.Body)
	if err != nil {
		return nil, err
	}
	switch f.kind {
	case returnFlow:
		return f.value, nil
	case breakFlow, continueFlow:
		return nil, callee.errorp(f.node, errs.UncaughtFlow{Flow: f.kind.String()})
	}
	return nil, nil
}
