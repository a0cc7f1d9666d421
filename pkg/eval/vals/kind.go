// Package vals contains basic facilities for manipulating values used in the
// interpreter.
//
// Values are plain Go values held in an any: nil, bool, float64, string,
// [*List] and [*Map]. Other types can participate by implementing capability
// interfaces like [Kinder], [Reprer] and [Memberer].
package vals

import "fmt"

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, the name used for it in error messages
// and by the type builtin. For types that are not values of the language and
// do not implement Kinder, it returns the Go type name preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case *List:
		return "list"
	case *Map:
		return "map"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
