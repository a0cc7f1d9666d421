// Package parse implements the parser of the language.
//
// The parser is a recursive descent parser working on a token slice. The
// precedence of binary and prefix operators is not hardcoded but taken from a
// [Grammar], which is normally the embedded one returned by [DefaultGrammar].
package parse

import (
	"errors"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string

	IsFile bool
}

// SourceForTest returns a Source used for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

// Tree represents a parsed tree.
type Tree struct {
	Root   *Chunk
	Source Source
}

// Config keeps configuration options when parsing.
type Config struct {
	// The grammar to parse with. If nil, the default grammar is used.
	Grammar *Grammar
}

// Error is a syntax error.
type Error = diag.Error

// ErrorType is the type of all errors returned by Parse.
const ErrorType = "SyntaxError"

// Parse parses the given source. The returned error always has type *Error if
// it is not nil. Parsing stops at the first error, and the root of the
// returned tree is nil in that case.
func Parse(src Source, cfg Config) (Tree, error) {
	g := cfg.Grammar
	if g == nil {
		g = DefaultGrammar()
	}
	ps := &parser{g: g, src: src, toks: scan(src.Code)}
	root, err := ps.parseTop()
	if err != nil {
		return Tree{Source: src}, err
	}
	return Tree{root, src}, nil
}

// GetError returns an *Error if err is a syntax error, or wraps one.
// Otherwise it returns nil.
func GetError(err error) *Error {
	var e *Error
	if errors.As(err, &e) && e.Type == ErrorType {
		return e
	}
	return nil
}

// IsIncomplete reports whether err is a syntax error found at the very end of
// the code, such as a missing closing brace. Such code may become valid when
// more text is appended to it.
func IsIncomplete(err error) bool {
	e := GetError(err)
	return e != nil && e.Context.From == len(e.Context.Source)
}
