package vals

import (
	"math"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
)

// Map is a mutable mapping from strings or numbers to values that remembers
// the order in which keys were first inserted. Like lists, maps are shared by
// reference.
type Map struct {
	keys []any
	vals map[any]any
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{vals: make(map[any]any)}
}

// MakeMap creates a Map from alternating keys and values. It panics if the
// number of arguments is odd or a key is not a valid map key.
func MakeMap(pairs ...any) *Map {
	if len(pairs)%2 == 1 {
		panic("odd number of arguments to MakeMap")
	}
	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		if err := CheckKey(pairs[i]); err != nil {
			panic(err)
		}
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// CheckKey returns an error if k cannot be used as a map key. NaN is rejected
// since it never equals itself.
func CheckKey(k any) error {
	switch k := k.(type) {
	case string:
		return nil
	case float64:
		if math.IsNaN(k) {
			return errs.BadValue{What: "map key", Valid: "number other than nan", Actual: "nan"}
		}
		return nil
	}
	return errs.WrongType{What: "map key", Valid: "string or number", Actual: Kind(k)}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Get returns the value for k and whether it exists.
func (m *Map) Get(k any) (any, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Set binds k to v. The key must be valid; see CheckKey.
func (m *Map) Set(k, v any) {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Delete removes k, returning whether it existed.
func (m *Map) Delete(k any) bool {
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any { return append([]any(nil), m.keys...) }

// Values returns the values in the insertion order of their keys.
func (m *Map) Values() []any {
	vs := make([]any, len(m.keys))
	for i, k := range m.keys {
		vs[i] = m.vals[k]
	}
	return vs
}
