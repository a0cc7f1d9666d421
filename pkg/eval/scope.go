package eval

import (
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
)

// A layer of bindings. Layers form a chain ending at a global layer, whose up
// is nil.
type env struct {
	vars map[string]any
	up   *env
	// Function table, keyed by the names of function definitions. Only set
	// on global layers; the main code and every module have their own.
	funcs map[string]Callable
}

func newEnv(up *env) *env {
	e := &env{vars: make(map[string]any), up: up}
	if up == nil {
		e.funcs = make(map[string]Callable)
	}
	return e
}

func (e *env) global() *env {
	for e.up != nil {
		e = e.up
	}
	return e
}

// Scope is the chain of binding frames visible to running code, backed by a
// read-only builtin namespace.
//
// A function value captures the frame that is current where it is defined; a
// call runs with a new Scope whose chain starts from a fresh frame on top of
// the captured one. Hence lookup is lexical.
type Scope struct {
	top     *env
	builtin *Ns
}

func newScope(top *env, builtin *Ns) *Scope {
	return &Scope{top, builtin}
}

// PushScope adds a new empty frame on top of the chain.
func (s *Scope) PushScope() {
	s.top = newEnv(s.top)
}

// PopScope removes the top frame. It fails with errs.ScopeUnderflow when the
// top frame is the global one.
func (s *Scope) PopScope() error {
	if s.top.up == nil {
		return errs.ScopeUnderflow
	}
	s.top = s.top.up
	return nil
}

// Pushes a frame and returns a function that restores the chain as it was
// before. The returned function is meant to be deferred, so that the frame is
// popped on every exit path.
func (s *Scope) enter() (exit func()) {
	saved := s.top
	s.PushScope()
	return func() { s.top = saved }
}

// Depth returns the number of frames in the chain, including the global one.
func (s *Scope) Depth() int {
	n := 0
	for e := s.top; e != nil; e = e.up {
		n++
	}
	return n
}

// Set binds name in the top frame, shadowing any outer binding.
func (s *Scope) Set(name string, v any) {
	s.top.vars[name] = v
}

// Assign updates the nearest frame that binds name. If no frame binds it, name
// is bound in the top frame.
func (s *Scope) Assign(name string, v any) {
	for e := s.top; e != nil; e = e.up {
		if _, ok := e.vars[name]; ok {
			e.vars[name] = v
			return
		}
	}
	s.top.vars[name] = v
}

// Get looks up name from the top frame to the global one, and then in the
// builtin namespace. It fails with errs.NoSuchVariable if name is unbound.
func (s *Scope) Get(name string) (any, error) {
	if v, ok := s.lookup(name); ok {
		return v, nil
	}
	return nil, errs.NoSuchVariable{Name: name}
}

func (s *Scope) lookup(name string) (any, bool) {
	for e := s.top; e != nil; e = e.up {
		if v, ok := e.vars[name]; ok {
			return v, true
		}
	}
	if s.builtin != nil {
		return s.builtin.Member(name)
	}
	return nil, false
}
