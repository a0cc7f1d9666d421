package testutil

import (
	"regexp"
	"strings"
)

var (
	blankLine  = regexp.MustCompile("(?m)^[ \t]+$")
	lineIndent = regexp.MustCompile("(?m)(^[ \t]*)(?:[^ \t\n])")
)

// Dedent removes any common leading whitespace from every line in text. An
// initial newline is removed, so that a raw string can start on the line after
// the opening backtick.
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	text = blankLine.ReplaceAllString(text, "")

	margin, first := "", true
	for _, m := range lineIndent.FindAllStringSubmatch(text, -1) {
		indent := m[1]
		switch {
		case first:
			margin, first = indent, false
		case strings.HasPrefix(indent, margin):
			// Deeper than the current margin.
		case strings.HasPrefix(margin, indent):
			margin = indent
		default:
			return text
		}
	}
	if margin == "" {
		return text
	}
	return regexp.MustCompile("(?m)^"+regexp.QuoteMeta(margin)).ReplaceAllString(text, "")
}
