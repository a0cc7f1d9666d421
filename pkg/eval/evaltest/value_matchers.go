package evaltest

import (
	"math"
	"regexp"

	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// ValueMatcher is a value that can be passed to [Case.Binds] and has its own
// matching semantics.
type ValueMatcher interface{ matchValue(any) bool }

// Anything matches anything. It is useful when only the existence of a
// binding matters.
var Anything ValueMatcher = anything{}

type anything struct{}

func (anything) matchValue(any) bool { return true }
func (anything) Repr() string        { return "<anything>" }

// ApproximatelyThreshold defines the threshold for matching float64 values when
// using [Approximately].
const ApproximatelyThreshold = 1e-12

// Approximately matches a float64 within the threshold defined by
// [ApproximatelyThreshold].
func Approximately(f float64) ValueMatcher { return approximately{f} }

type approximately struct{ value float64 }

func (a approximately) matchValue(value any) bool {
	if value, ok := value.(float64); ok {
		return matchFloat64(a.value, value, ApproximatelyThreshold)
	}
	return false
}

func (a approximately) Repr() string { return "<approximately " + vals.FormatNumber(a.value) + ">" }

func matchFloat64(a, b, threshold float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) &&
		math.Signbit(a) == math.Signbit(b) {
		return true
	}
	return math.Abs(a-b) <= threshold
}

// StringMatching matches any string matching a regexp pattern. If the pattern
// is not a valid regexp, the function panics.
func StringMatching(p string) ValueMatcher { return stringMatching{regexp.MustCompile(p)} }

type stringMatching struct{ pattern *regexp.Regexp }

func (s stringMatching) matchValue(value any) bool {
	if value, ok := value.(string); ok {
		return s.pattern.MatchString(value)
	}
	return false
}

func (s stringMatching) Repr() string { return "<matching " + s.pattern.String() + ">" }

// MapContainingPairs matches any map that contains all the given key-value
// pairs. The values can also be [ValueMatcher]s.
func MapContainingPairs(a ...any) ValueMatcher { return mapContaining{vals.MakeMap(a...)} }

type mapContaining struct{ m *vals.Map }

func (m mapContaining) matchValue(value any) bool {
	gotMap, ok := value.(*vals.Map)
	if !ok {
		return false
	}
	for _, k := range m.m.Keys() {
		wantValue, _ := m.m.Get(k)
		if gotValue, ok := gotMap.Get(k); !ok || !match(gotValue, wantValue) {
			return false
		}
	}
	return true
}

func (m mapContaining) Repr() string { return vals.Repr(m.m) }
