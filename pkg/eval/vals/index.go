package vals

import (
	"strconv"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
)

// Indexer wraps the Index method.
type Indexer interface {
	// Index retrieves the value corresponding to the specified key in the
	// container.
	Index(k any) (any, error)
}

// Index indexes a value with the given key. Lists and strings are indexed by
// integers, negative ones counting from the end; strings are indexed by
// codepoint. Maps are indexed by key. Types implementing Indexer use their
// Index method.
func Index(v, k any) (any, error) {
	switch v := v.(type) {
	case *List:
		i, err := listIndex(k, v.Len())
		if err != nil {
			return nil, err
		}
		return v.elems[i], nil
	case string:
		rs := []rune(v)
		i, err := listIndex(k, len(rs))
		if err != nil {
			return nil, err
		}
		return string(rs[i]), nil
	case *Map:
		if val, ok := v.vals[k]; ok {
			return val, nil
		}
		return nil, errs.NoSuchKey{Key: Repr(k)}
	case Indexer:
		return v.Index(k)
	}
	return nil, errs.WrongType{What: "indexed value", Valid: "list, string or map", Actual: Kind(v)}
}

// SetIndex binds the key of a list or map to a new value.
func SetIndex(v, k, val any) error {
	switch v := v.(type) {
	case *List:
		i, err := listIndex(k, v.Len())
		if err != nil {
			return err
		}
		v.elems[i] = val
		return nil
	case *Map:
		if err := CheckKey(k); err != nil {
			return err
		}
		v.Set(k, val)
		return nil
	}
	return errs.WrongType{What: "assigned container", Valid: "list or map", Actual: Kind(v)}
}

// Converts k to an index into a sequence of length n.
func listIndex(k any, n int) (int, error) {
	i, err := ToInt("index", k)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errs.OutOfRange{
			What:      "index",
			ValidLow:  strconv.Itoa(-n),
			ValidHigh: strconv.Itoa(n - 1),
			Actual:    Repr(k),
		}
	}
	return i, nil
}
