// Package math exposes arithmetic functions from Go's math package as a Sona
// module.
package math

import (
	"math"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is the namespace for the math module.
var Ns = eval.BuildNsNamed("math").
	AddVars(map[string]any{
		"e":  math.E,
		"pi": math.Pi,
	}).
	AddGoFns(map[string]any{
		"add":   add,
		"sub":   sub,
		"mul":   mul,
		"div":   div,
		"pow":   math.Pow,
		"sqrt":  sqrt,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"trunc": math.Trunc,
		"abs":   math.Abs,
		"log":   log,
		"min":   min,
		"max":   max,
	}).Ns()

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errs.ZeroDivision{Op: "/", Left: "number", Right: "number"}
	}
	return a / b, nil
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, errs.BadValue{What: "argument of math.sqrt", Valid: "non-negative number", Actual: vals.FormatNumber(x)}
	}
	return math.Sqrt(x), nil
}

func log(x float64) (float64, error) {
	if x <= 0 {
		return 0, errs.BadValue{What: "argument of math.log", Valid: "positive number", Actual: vals.FormatNumber(x)}
	}
	return math.Log(x), nil
}

func min(first float64, rest ...float64) float64 {
	for _, x := range rest {
		first = math.Min(first, x)
	}
	return first
}

func max(first float64, rest ...float64) float64 {
	for _, x := range rest {
		first = math.Max(first, x)
	}
	return first
}
