package eval

import (
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Class is a user-defined class. Calling a class creates an Instance.
type Class struct {
	Name string

	fields  []*parse.LetStmt
	methods map[string]*Closure
	// Frame the class is defined in; field initializers run on top of it.
	captured *env
	src      parse.Source
}

func (fm *Frame) newClass(n *parse.ClassDef) *Class {
	c := &Class{
		Name:     n.Name,
		fields:   n.Fields,
		methods:  make(map[string]*Closure),
		captured: fm.scope.top,
		src:      fm.src,
	}
	for _, m := range n.Methods {
		c.methods[m.Name] = &Closure{
			Name: n.Name + "." + m.Name, Params: m.Params, Body: m.Body,
			captured: fm.scope.top, src: fm.src}
	}
	return c
}

// Kind returns "class".
func (*Class) Kind() string { return "class" }

// Repr returns an opaque representation "<class Name>".
func (c *Class) Repr() string { return "<class " + c.Name + ">" }

// Member returns an unbound method.
func (c *Class) Member(name string) (any, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Call creates an instance. Field initializers are evaluated in order, each
// seeing the fields before it; then the init method is called with the
// arguments if the class has one.
func (c *Class) Call(fm *Frame, args []any) (any, error) {
	inst := &Instance{c, vals.NewMap()}
	init := fm.fork(c.src, newEnv(c.captured))
	for _, field := range c.fields {
		v, err := init.eval(field.Value)
		if err != nil {
			return nil, err
		}
		inst.fields.Set(field.Name, v)
		init.scope.Set(field.Name, v)
	}
	if m, ok := c.methods["init"]; ok {
		// The receiver is not counted.
		if n := len(m.Params) - 1; n >= 0 && len(args) != n {
			return nil, errs.ArityMismatch{
				What:     "arguments of " + c.Name,
				ValidLow: n, ValidHigh: n, Actual: len(args)}
		}
		if _, err := m.Call(fm, append([]any{inst}, args...)); err != nil {
			return nil, err
		}
	} else if len(args) > 0 {
		return nil, errs.ArityMismatch{
			What:     "arguments of " + c.Name,
			ValidLow: 0, ValidHigh: 0, Actual: len(args)}
	}
	return inst, nil
}

// Instance is an instance of a Class. Its fields work like a map; its methods
// are bound to it when accessed.
type Instance struct {
	class  *Class
	fields *vals.Map
}

var _ vals.Memberer = (*Instance)(nil)
var _ vals.MemberSetter = (*Instance)(nil)

// Class returns the class of the instance.
func (inst *Instance) Class() *Class { return inst.class }

// Kind returns the name of the class.
func (inst *Instance) Kind() string { return inst.class.Name }

// Repr returns an opaque representation "<Name object>".
func (inst *Instance) Repr() string { return "<" + inst.class.Name + " object>" }

// Member returns a field, or a method bound to the instance.
func (inst *Instance) Member(name string) (any, bool) {
	if v, ok := inst.fields.Get(name); ok {
		return v, true
	}
	if m, ok := inst.class.methods[name]; ok {
		return &BoundMethod{inst, m}, true
	}
	return nil, false
}

// SetMember sets a field.
func (inst *Instance) SetMember(name string, v any) error {
	inst.fields.Set(name, v)
	return nil
}

// BoundMethod is a method bound to an instance, which is passed as the first
// argument.
type BoundMethod struct {
	recv *Instance
	fn   *Closure
}

// Kind returns "fn".
func (*BoundMethod) Kind() string { return "fn" }

// Repr returns an opaque representation "<method Class.name>".
func (m *BoundMethod) Repr() string { return "<method " + m.fn.Name + ">" }

// Call calls the method with the receiver prepended to the arguments.
func (m *BoundMethod) Call(fm *Frame, args []any) (any, error) {
	return m.fn.Call(fm, append([]any{m.recv}, args...))
}
