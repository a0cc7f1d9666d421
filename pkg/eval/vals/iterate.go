package vals

import "github.com/Bryantad/Sona-sub001/pkg/eval/errs"

// Iterate iterates the supplied value, and calls the supplied function on each
// element until it returns false. Lists yield their elements, maps their keys
// and strings their codepoints. The elements are snapshotted before the first
// call, so f may mutate the container.
func Iterate(v any, f func(any) bool) error {
	var elems []any
	switch v := v.(type) {
	case *List:
		elems = v.Elems()
	case *Map:
		elems = v.Keys()
	case string:
		for _, r := range v {
			elems = append(elems, string(r))
		}
	default:
		return errs.WrongType{What: "iterated value", Valid: "list, map or string", Actual: Kind(v)}
	}
	for _, elem := range elems {
		if !f(elem) {
			break
		}
	}
	return nil
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len([]rune(v))
	case *List:
		return v.Len()
	case *Map:
		return v.Len()
	}
	return -1
}
