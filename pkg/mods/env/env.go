// Package env exposes environment variables as a Sona module.
package env

import (
	"github.com/xyproto/env/v2"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
)

// Ns is the namespace for the env module.
var Ns = eval.BuildNsNamed("env").
	AddGoFns(map[string]any{
		"get": get,
		"has": env.Has,
		"set": env.Set,
	}).Ns()

// Returns the value of a variable, the default if it is unset or empty, or
// null if there is no default.
func get(name string, def ...any) (any, error) {
	if len(def) > 1 {
		return nil, errs.ArityMismatch{What: "arguments of env.get", ValidLow: 1, ValidHigh: 2, Actual: 1 + len(def)}
	}
	if env.Has(name) {
		return env.Str(name), nil
	}
	if len(def) == 1 {
		return def[0], nil
	}
	return nil, nil
}
