package vals

import (
	"math"
	"strconv"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// FormatNumber formats a number. Integral values are formatted without a
// fractional part; other values use the shortest representation that parses
// back to the same number.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		// Also covers negative zero.
		return "0"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseNumber parses s as a number, allowing surrounding whitespace. It fails
// with errs.BadValue when s is not a number.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errs.BadValue{What: "argument", Valid: "number", Actual: parse.Quote(s)}
	}
	return f, nil
}

// ToInt converts v to an int, requiring it to be an integral number.
func ToInt(what string, v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, errs.WrongType{What: what, Valid: "number", Actual: Kind(v)}
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errs.BadValue{What: what, Valid: "integer", Actual: FormatNumber(f)}
	}
	return int(f), nil
}
