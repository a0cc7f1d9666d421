package vals

import "github.com/Bryantad/Sona-sub001/pkg/eval/errs"

// Memberer wraps the Member method. It is implemented by values that expose
// named members, like modules and class instances.
type Memberer interface {
	// Member returns the named member and whether it exists.
	Member(name string) (any, bool)
}

// MemberSetter wraps the SetMember method.
type MemberSetter interface {
	// SetMember binds a named member to a new value.
	SetMember(name string, v any) error
}

// Member looks up a named member of a value. It first tries the Memberer
// capability, and then a string key lookup if the value is a map.
func Member(v any, name string) (any, bool) {
	if m, ok := v.(Memberer); ok {
		if mv, ok := m.Member(name); ok {
			return mv, true
		}
	}
	if m, ok := v.(*Map); ok {
		return m.Get(name)
	}
	return nil, false
}

// SetMember binds a named member of a value, using the MemberSetter capability
// or a string key of a map.
func SetMember(v any, name string, val any) error {
	switch v := v.(type) {
	case MemberSetter:
		return v.SetMember(name, val)
	case *Map:
		v.Set(name, val)
		return nil
	}
	return errs.NoSuchMember{Name: name, On: Kind(v)}
}
