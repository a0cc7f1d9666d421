package parse

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Bryantad/Sona-sub001/pkg/must"
)

//go:embed grammar.yaml
var defaultGrammarYAML []byte

// Grammar is the declarative part of the language: its reserved words and its
// operator precedence table.
type Grammar struct {
	Keywords []string `yaml:"keywords"`
	Levels   []Level  `yaml:"levels"`

	reserved map[string]bool
}

// Level is one level of the operator precedence table.
type Level struct {
	Ops    []string `yaml:"ops"`
	Prefix bool     `yaml:"prefix"`
}

// Operators that the scanner can produce. Word operators are scanned as
// identifiers and recognized by the parser.
var knownOps = map[string]bool{
	"or": true, "and": true, "not": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"+": true, "-": true, "*": true, "/": true, "%": true,
}

var wordOps = map[string]bool{"or": true, "and": true, "not": true}

// Keywords the statement parser depends on.
var stmtKeywords = []string{
	"let", "if", "elif", "else", "while", "for", "in", "func", "return",
	"break", "continue", "try", "catch", "throw", "import", "as", "class",
	"print", "true", "false", "null",
}

// LoadGrammar decodes and validates a grammar document.
func LoadGrammar(data []byte) (*Grammar, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var g Grammar
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	if err := g.init(); err != nil {
		return nil, err
	}
	return &g, nil
}

var defaultGrammar = must.OK1(LoadGrammar(defaultGrammarYAML))

// DefaultGrammar returns the grammar embedded in the binary.
func DefaultGrammar() *Grammar { return defaultGrammar }

func (g *Grammar) init() error {
	if len(g.Levels) == 0 {
		return fmt.Errorf("grammar has no operator levels")
	}
	g.reserved = make(map[string]bool)
	for _, kw := range g.Keywords {
		g.reserved[kw] = true
	}
	for _, kw := range stmtKeywords {
		if !g.reserved[kw] {
			return fmt.Errorf("grammar is missing keyword %q", kw)
		}
	}
	for i, lv := range g.Levels {
		if len(lv.Ops) == 0 {
			return fmt.Errorf("operator level %d is empty", i)
		}
		for _, op := range lv.Ops {
			if !knownOps[op] {
				return fmt.Errorf("operator level %d has unknown operator %q", i, op)
			}
			if wordOps[op] {
				g.reserved[op] = true
			}
		}
	}
	return nil
}

// IsReserved returns whether name is a keyword or a word operator, and thus
// cannot be used as a variable name.
func (g *Grammar) IsReserved(name string) bool { return g.reserved[name] }

func (lv *Level) has(t token) bool {
	if t.typ != tkOp && t.typ != tkIdent {
		return false
	}
	for _, op := range lv.Ops {
		if op == t.text {
			return true
		}
	}
	return false
}
