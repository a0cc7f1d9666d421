// Package re exposes functionality from Go's regexp package as a Sona
// module.
package re

import (
	"regexp"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is the namespace for the re module.
var Ns = eval.BuildNsNamed("re").
	AddGoFns(map[string]any{
		"quote":   regexp.QuoteMeta,
		"match":   match,
		"find":    find,
		"replace": replace,
		"split":   split,
	}).Ns()

func match(argPattern, source string) (bool, error) {
	pattern, err := compile(argPattern)
	if err != nil {
		return false, err
	}
	return pattern.MatchString(source), nil
}

// Returns a list of matches. Each match is a map with the matched text, its
// start and end byte offsets, and the texts of its groups.
func find(argPattern, source string) (*vals.List, error) {
	pattern, err := compile(argPattern)
	if err != nil {
		return nil, err
	}
	matches := vals.MakeList()
	for _, match := range pattern.FindAllStringSubmatchIndex(source, -1) {
		groups := vals.MakeList()
		for i := 2; i < len(match); i += 2 {
			start, end := match[i], match[i+1]
			// Groups that did not participate in the match have negative
			// indices.
			if start >= 0 && end >= 0 {
				groups.Append(source[start:end])
			} else {
				groups.Append(nil)
			}
		}
		matches.Append(vals.MakeMap(
			"text", source[match[0]:match[1]],
			"start", float64(match[0]),
			"end", float64(match[1]),
			"groups", groups))
	}
	return matches, nil
}

// Replaces matches with a string, where $1 and the like refer to groups, or
// with what a function returns for the matched text.
func replace(fm *eval.Frame, argPattern string, argRepl any, source string) (string, error) {
	pattern, err := compile(argPattern)
	if err != nil {
		return "", err
	}

	switch repl := argRepl.(type) {
	case string:
		return pattern.ReplaceAllString(source, repl), nil
	case eval.Callable:
		var errReplace error
		replFunc := func(s string) string {
			if errReplace != nil {
				return ""
			}
			output, err := repl.Call(fm, []any{s})
			if err != nil {
				errReplace = err
				return ""
			}
			return vals.ToString(output)
		}
		return pattern.ReplaceAllStringFunc(source, replFunc), errReplace
	default:
		return "", errs.BadValue{What: "replacement",
			Valid: "string or function", Actual: vals.Kind(argRepl)}
	}
}

func split(argPattern, source string) (*vals.List, error) {
	pattern, err := compile(argPattern)
	if err != nil {
		return nil, err
	}
	pieces := vals.MakeList()
	for _, piece := range pattern.Split(source, -1) {
		pieces.Append(piece)
	}
	return pieces, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.BadValue{What: "pattern", Valid: "valid regular expression", Actual: pattern}
	}
	return re, nil
}
