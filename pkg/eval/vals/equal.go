package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Lists and maps are compared
// deeply; key order does not matter for maps. Types implementing Equaler use
// their Equal method. Other comparable values are compared with ==, which
// means identity for pointer types.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case *List:
		if y, ok := y.(*List); ok {
			return equalList(x, y)
		}
		return false
	case *Map:
		if y, ok := y.(*Map); ok {
			return equalMap(x, y)
		}
		return false
	case Equaler:
		return x.Equal(y)
	}
	if t := reflect.TypeOf(x); t == reflect.TypeOf(y) && t.Comparable() {
		return x == y
	}
	return false
}

func equalList(x, y *List) bool {
	if x == y {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	for i, elem := range x.elems {
		if !Equal(elem, y.elems[i]) {
			return false
		}
	}
	return true
}

func equalMap(x, y *Map) bool {
	if x == y {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	for _, k := range x.keys {
		vy, ok := y.vals[k]
		if !ok || !Equal(x.vals[k], vy) {
			return false
		}
	}
	return true
}
