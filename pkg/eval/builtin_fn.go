package eval

import (
	"math"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Builtin functions, visible everywhere unless shadowed.

var builtinNs = BuildNsNamed("").AddGoFns(map[string]any{
	"len":  length,
	"str":  vals.ToString,
	"repr": vals.Repr,
	"num":  num,
	"int":  toInt,
	"bool": vals.Truthy,
	"type": vals.Kind,

	"range":  rangeFn,
	"append": appendFn,
	"pop":    pop,
	"keys":   keys,
	"values": values,
	"has":    has,

	"join":  join,
	"split": strings.Split,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
})

func length(v any) (int, error) {
	n := vals.Len(v)
	if n < 0 {
		return 0, errs.WrongType{What: "argument of len", Valid: "string, list or map", Actual: vals.Kind(v)}
	}
	return n, nil
}

func num(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case string:
		return vals.ParseNumber(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errs.WrongType{What: "argument of num", Valid: "number, string or bool", Actual: vals.Kind(v)}
}

// Converts to a number and truncates towards zero.
func toInt(v any) (float64, error) {
	f, err := num(v)
	if err != nil {
		return 0, err
	}
	return math.Trunc(f), nil
}

// range(end), range(start, end) or range(start, end, step).
func rangeFn(args ...int) (*vals.List, error) {
	start, end, step := 0, 0, 1
	switch len(args) {
	case 1:
		end = args[0]
	case 2:
		start, end = args[0], args[1]
	case 3:
		start, end, step = args[0], args[1], args[2]
	default:
		return nil, errs.ArityMismatch{What: "arguments of range", ValidLow: 1, ValidHigh: 3, Actual: len(args)}
	}
	if step == 0 {
		return nil, errs.BadValue{What: "step of range", Valid: "non-zero", Actual: "0"}
	}
	l := vals.MakeList()
	for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
		l.Append(float64(i))
	}
	return l, nil
}

func appendFn(l *vals.List, vs ...any) *vals.List {
	l.Append(vs...)
	return l
}

func pop(l *vals.List) (any, error) {
	if v, ok := l.Pop(); ok {
		return v, nil
	}
	return nil, errs.OutOfRange{What: "pop from list", ValidLow: "1", ValidHigh: "0", Actual: "empty"}
}

func keys(m *vals.Map) *vals.List { return vals.MakeList(m.Keys()...) }

func values(m *vals.Map) *vals.List { return vals.MakeList(m.Values()...) }

func has(container, k any) (bool, error) {
	switch c := container.(type) {
	case *vals.Map:
		_, ok := c.Get(k)
		return ok, nil
	case *vals.List:
		for _, elem := range c.Elems() {
			if vals.Equal(elem, k) {
				return true, nil
			}
		}
		return false, nil
	case string:
		if s, ok := k.(string); ok {
			return strings.Contains(c, s), nil
		}
	case vals.Memberer:
		if s, ok := k.(string); ok {
			_, ok := c.Member(s)
			return ok, nil
		}
	default:
		return false, errs.WrongType{What: "container of has", Valid: "map, list, string or module", Actual: vals.Kind(container)}
	}
	return false, errs.WrongType{What: "key of has", Valid: "string", Actual: vals.Kind(k)}
}

func join(sep string, l *vals.List) string {
	elems := l.Elems()
	strs := make([]string, len(elems))
	for i, elem := range elems {
		strs[i] = vals.ToString(elem)
	}
	return strings.Join(strs, sep)
}
