package diag

import (
	"strings"
	"unicode/utf8"
)

// Ranger wraps the Range method.
type Ranger interface {
	// Range returns the range associated with the value.
	Range() Ranging
}

// Ranging represents a range [From, To) of byte offsets within a source.
// Structs can embed Ranging to satisfy the [Ranger] interface.
//
// Ideally, this type would be called Range. However, doing that means structs
// embedding this type will have Range as a field instead of a method, thus not
// implementing the [Ranger] interface.
type Ranging struct {
	From int
	To   int
}

// Range returns the Ranging itself.
func (r Ranging) Range() Ranging { return r }

// PointRanging returns a zero-width Ranging at the given point.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}

// MixedRanging returns a Ranging from the start position of a to the end
// position of b.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}

// Position is a 1-based line and column pair. Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// PositionOf returns the position of the byte offset p within src. Offsets
// past the end of src are clamped to the end.
func PositionOf(src string, p int) Position {
	if p > len(src) {
		p = len(src)
	}
	if p < 0 {
		p = 0
	}
	before := src[:p]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(lastLine(before)) + 1
	return Position{line, col}
}
