package vals

// Booler wraps the Bool method.
type Booler interface {
	// Bool computes the truth value of the receiver.
	Bool() bool
}

// Truthy converts a value to bool. Null, false, zero, and empty strings, lists
// and maps are false; types implementing Booler use their Bool method; every
// other value is true.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case *List:
		return v.Len() > 0
	case *Map:
		return v.Len() > 0
	case Booler:
		return v.Bool()
	}
	return true
}
