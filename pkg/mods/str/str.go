// Package str exposes functionality from Go's strings package as a Sona
// module. Indices count runes, like indexing a string does.
package str

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is the namespace for the str module.
var Ns = eval.BuildNsNamed("str").
	AddGoFns(map[string]any{
		"compare":     strings.Compare,
		"contains":    strings.Contains,
		"count":       strings.Count,
		"equal_fold":  strings.EqualFold,
		"fields":      strings.Fields,
		"has_prefix":  strings.HasPrefix,
		"has_suffix":  strings.HasSuffix,
		"index":       index,
		"last_index":  lastIndex,
		"repeat":      repeat,
		"replace":     replace,
		"trim":        strings.Trim,
		"trim_left":   strings.TrimLeft,
		"trim_right":  strings.TrimRight,
		"trim_space":  strings.TrimSpace,
		"trim_prefix": strings.TrimPrefix,
		"trim_suffix": strings.TrimSuffix,

		"from_codepoints": fromCodepoints,
		"to_codepoints":   toCodepoints,
	}).Ns()

// Converts a byte index to a rune index, keeping -1.
func runeIndex(s string, i int) int {
	if i < 0 {
		return i
	}
	return utf8.RuneCountInString(s[:i])
}

func index(s, substr string) int { return runeIndex(s, strings.Index(s, substr)) }

func lastIndex(s, substr string) int { return runeIndex(s, strings.LastIndex(s, substr)) }

func repeat(s string, n int) (string, error) {
	if n < 0 {
		return "", errs.BadValue{What: "count of str.repeat", Valid: "non-negative integer", Actual: strconv.Itoa(n)}
	}
	return strings.Repeat(s, n), nil
}

// Replaces occurrences of old with repl; only the first max ones if max is
// given.
func replace(s, old, repl string, max ...int) (string, error) {
	switch len(max) {
	case 0:
		return strings.ReplaceAll(s, old, repl), nil
	case 1:
		return strings.Replace(s, old, repl, max[0]), nil
	}
	return "", errs.ArityMismatch{What: "arguments of str.replace", ValidLow: 3, ValidHigh: 4, Actual: 3 + len(max)}
}

func fromCodepoints(nums ...int) (string, error) {
	var b bytes.Buffer
	for _, num := range nums {
		if num < 0 || num > unicode.MaxRune {
			return "", errs.OutOfRange{
				What:     "codepoint",
				ValidLow: "0", ValidHigh: strconv.Itoa(unicode.MaxRune),
				Actual: hex(num),
			}
		}
		if !utf8.ValidRune(rune(num)) {
			return "", errs.BadValue{
				What:   "argument to str.from_codepoints",
				Valid:  "valid Unicode codepoint",
				Actual: hex(num),
			}
		}
		b.WriteRune(rune(num))
	}
	return b.String(), nil
}

func hex(i int) string {
	if i < 0 {
		return "-0x" + strconv.FormatInt(-int64(i), 16)
	}
	return "0x" + strconv.FormatInt(int64(i), 16)
}

func toCodepoints(s string) *vals.List {
	l := vals.MakeList()
	for _, r := range s {
		l.Append(float64(r))
	}
	return l
}
