package eval

import (
	"sort"

	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is a namespace of named values. It is the value of imported modules and
// of the builtin namespace.
type Ns struct {
	name  string
	names []string
	vals  map[string]any
}

var _ vals.Memberer = (*Ns)(nil)
var _ vals.MemberSetter = (*Ns)(nil)

// Name returns the name of the namespace.
func (ns *Ns) Name() string { return ns.name }

// Kind returns "module".
func (ns *Ns) Kind() string { return "module" }

// Repr returns an opaque representation "<module name>".
func (ns *Ns) Repr() string { return "<module " + ns.name + ">" }

// Names returns the names in the namespace, in sorted order.
func (ns *Ns) Names() []string { return append([]string(nil), ns.names...) }

// Member returns the value bound to name.
func (ns *Ns) Member(name string) (any, bool) {
	v, ok := ns.vals[name]
	return v, ok
}

// SetMember binds name to v.
func (ns *Ns) SetMember(name string, v any) error {
	if _, ok := ns.vals[name]; !ok {
		i := sort.SearchStrings(ns.names, name)
		ns.names = append(ns.names, "")
		copy(ns.names[i+1:], ns.names[i:])
		ns.names[i] = name
	}
	ns.vals[name] = v
	return nil
}

// NsBuilder is a helper type used for building an Ns.
type NsBuilder struct {
	name string
	m    map[string]any
}

// BuildNs returns a helper for building an Ns.
func BuildNs() NsBuilder {
	return BuildNsNamed("")
}

// BuildNsNamed returns a helper for building an Ns with the given name. The
// name is used in the representation of the module and of its functions.
func BuildNsNamed(name string) NsBuilder {
	return NsBuilder{name, make(map[string]any)}
}

// AddVar adds a variable.
func (nb NsBuilder) AddVar(name string, v any) NsBuilder {
	nb.m[name] = v
	return nb
}

// AddVars adds all the variables given in the map.
func (nb NsBuilder) AddVars(m map[string]any) NsBuilder {
	for name, v := range m {
		nb.AddVar(name, v)
	}
	return nb
}

// AddFn adds a function.
func (nb NsBuilder) AddFn(name string, v Callable) NsBuilder {
	return nb.AddVar(name, v)
}

// AddGoFn adds a Go function, wrapped with NewGoFn.
func (nb NsBuilder) AddGoFn(name string, impl any) NsBuilder {
	return nb.AddFn(name, NewGoFn(nb.qualify(name), impl))
}

// AddGoFns adds Go functions, wrapped with NewGoFn.
func (nb NsBuilder) AddGoFns(fns map[string]any) NsBuilder {
	for name, impl := range fns {
		nb.AddGoFn(name, impl)
	}
	return nb
}

func (nb NsBuilder) qualify(name string) string {
	if nb.name == "" {
		return name
	}
	return nb.name + "." + name
}

// Ns builds a namespace.
func (nb NsBuilder) Ns() *Ns {
	return makeNs(nb.name, nb.m)
}

// Each session gets its own copy, so assignments to members of a native
// module stay in the session that made them.
func (ns *Ns) clone() *Ns { return makeNs(ns.name, ns.vals) }

func makeNs(name string, m map[string]any) *Ns {
	names := make([]string, 0, len(m))
	vs := make(map[string]any, len(m))
	for k, v := range m {
		names = append(names, k)
		vs[k] = v
	}
	sort.Strings(names)
	return &Ns{name, names, vs}
}
