package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
)

type tokenType int

const (
	tkEOF tokenType = iota
	tkNewline
	tkIdent
	tkNumber
	tkString
	tkOp
	// A scanning error. Its text is the error message.
	tkError
)

type token struct {
	typ  tokenType
	text string
	// Decoded value of a string literal.
	val string
	diag.Ranging
}

func (t token) is(text string) bool {
	return (t.typ == tkOp || t.typ == tkIdent) && t.text == text
}

// Describes the token for use in error messages.
func (t token) String() string {
	switch t.typ {
	case tkEOF:
		return "end of input"
	case tkNewline:
		if t.text == ";" {
			return "';'"
		}
		return "newline"
	case tkString:
		return "string " + t.text
	case tkNumber:
		return "number " + t.text
	default:
		return "'" + t.text + "'"
	}
}

// Operators and punctuation made of two runes. They are tried before the
// single-rune ones.
var twoRuneOps = []string{"==", "!=", "<=", ">="}

const oneRuneOps = "()[]{},.:=<>+-*/%"

// Splits code into tokens. The result always ends with a tkEOF token. When a
// malformed token is found, a tkError token is emitted in its place and
// scanning stops.
func scan(code string) []token {
	var toks []token
	pos := 0
	emit := func(typ tokenType, from, to int, val string) {
		toks = append(toks, token{typ, code[from:to], val, diag.Ranging{From: from, To: to}})
	}
	fail := func(from, to int, msg string) []token {
		toks = append(toks, token{tkError, msg, "", diag.Ranging{From: from, To: to}})
		return append(toks, token{typ: tkEOF, Ranging: diag.PointRanging(len(code))})
	}

	for pos < len(code) {
		r, size := utf8.DecodeRuneInString(code[pos:])
		switch {
		case r == '\n' || r == ';':
			emit(tkNewline, pos, pos+size, "")
			pos += size
		case r == ' ' || r == '\t' || r == '\r':
			pos += size
		case r == '#' || strings.HasPrefix(code[pos:], "//"):
			for pos < len(code) && code[pos] != '\n' {
				pos++
			}
		case r == '"' || r == '\'':
			end, val, errAt, msg := scanString(code, pos)
			if msg != "" {
				return fail(errAt, end, msg)
			}
			emit(tkString, pos, end, val)
			pos = end
		case isDigit(r):
			end := scanNumber(code, pos)
			emit(tkNumber, pos, end, "")
			pos = end
		case isIdentStart(r):
			end := pos + size
			for end < len(code) {
				r, size := utf8.DecodeRuneInString(code[end:])
				if !isIdentStart(r) && !isDigit(r) {
					break
				}
				end += size
			}
			emit(tkIdent, pos, end, "")
			pos = end
		default:
			if op := twoRuneOp(code[pos:]); op != "" {
				emit(tkOp, pos, pos+len(op), "")
				pos += len(op)
			} else if strings.ContainsRune(oneRuneOps, r) {
				emit(tkOp, pos, pos+size, "")
				pos += size
			} else {
				return fail(pos, pos+size, fmt.Sprintf("unexpected rune %q", r))
			}
		}
	}
	return append(toks, token{typ: tkEOF, Ranging: diag.PointRanging(len(code))})
}

func twoRuneOp(s string) string {
	for _, op := range twoRuneOps {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

// Scans digits with an optional fractional part and an optional exponent. A
// '.' is only part of the number when a digit follows it, so that "1.x" is
// still a member access; likewise "e" starts an exponent only when digits
// follow it, after an optional sign.
func scanNumber(code string, pos int) int {
	pos = scanDigits(code, pos)
	if pos+1 < len(code) && code[pos] == '.' && isDigit(rune(code[pos+1])) {
		pos = scanDigits(code, pos+1)
	}
	if pos < len(code) && (code[pos] == 'e' || code[pos] == 'E') {
		exp := pos + 1
		if exp < len(code) && (code[exp] == '+' || code[exp] == '-') {
			exp++
		}
		if exp < len(code) && isDigit(rune(code[exp])) {
			pos = scanDigits(code, exp)
		}
	}
	return pos
}

func scanDigits(code string, pos int) int {
	for pos < len(code) && isDigit(rune(code[pos])) {
		pos++
	}
	return pos
}

var escapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '"': '"', '\'': '\'',
}

// Scans a string literal starting at the quote at pos. It returns the end of
// the literal and its decoded value; on failure, msg is non-empty and errAt is
// where the error starts.
func scanString(code string, pos int) (end int, val string, errAt int, msg string) {
	quote := code[pos]
	var sb strings.Builder
	i := pos + 1
	for {
		if i >= len(code) || code[i] == '\n' {
			return i, "", pos, "string not terminated"
		}
		c := code[i]
		switch c {
		case quote:
			return i + 1, sb.String(), 0, ""
		case '\\':
			if i+1 >= len(code) {
				return i + 1, "", pos, "string not terminated"
			}
			e, ok := escapes[code[i+1]]
			if !ok {
				return i + 2, "", i, "invalid escape sequence"
			}
			sb.WriteByte(e)
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
}
