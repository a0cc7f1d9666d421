// Package time exposes the wall clock as a Sona module. Times are numbers of
// seconds since the Unix epoch.
package time

import (
	"time"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is the namespace for the time module.
var Ns = eval.BuildNsNamed("time").
	AddGoFns(map[string]any{
		"now":   now,
		"sleep": sleep,
		"since": since,
	}).Ns()

// Overridden in tests.
var (
	timeNow   = time.Now
	timeSleep = time.Sleep
)

func now() float64 { return toSeconds(timeNow()) }

func since(t float64) float64 { return now() - t }

// Sleeps for the given number of milliseconds.
func sleep(ms float64) error {
	if ms < 0 {
		return errs.BadValue{What: "sleep duration", Valid: "non-negative number", Actual: vals.FormatNumber(ms)}
	}
	timeSleep(time.Duration(ms * float64(time.Millisecond)))
	return nil
}

func toSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
