package vals

import (
	"fmt"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a Value. The string is either a
	// literal of that Value that evaluates to an equal value (like `[1, 2]`
	// for a list), or a string enclosed in "<>" containing the kind and
	// identity of the Value (like `<fn f>`).
	Repr() string
}

// Repr returns the representation for a value. Representations of nil, bool,
// finite number, string, list and map values are literals that evaluate back
// to an equal value. Infinities and NaN are shown as "inf", "-inf" and "nan",
// which are not literals. Types implementing Reprer use their Repr method;
// other types are shown as "<unknown %v>".
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return FormatNumber(v)
	case string:
		return parse.Quote(v)
	case *List:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Repr(elem))
		}
		sb.WriteByte(']')
		return sb.String()
	case *Map:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Repr(k))
			sb.WriteString(": ")
			sb.WriteString(Repr(v.vals[k]))
		}
		sb.WriteByte('}')
		return sb.String()
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// Stringer wraps the String method.
type Stringer interface {
	// String converts a value to a string.
	String() string
}

// ToString converts a Value to string. Strings are returned as is; types
// implementing Stringer use their String method; every other value is
// converted using Repr. It is used by print and the str builtin.
func ToString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case Stringer:
		return v.String()
	default:
		return Repr(v)
	}
}
