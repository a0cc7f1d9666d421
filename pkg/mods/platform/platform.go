// Package platform exposes variables and functions that deal with the
// specific platform being run on, such as the OS name and CPU architecture.
package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
)

const (
	isWindows = runtime.GOOS == "windows"
	isUnix    = runtime.GOOS != "windows" && runtime.GOOS != "plan9" && runtime.GOOS != "js"
)

var osHostname = os.Hostname // to allow mocking in unit tests

// Returns the hostname, stripping the domain part if strip is true.
func hostname(strip ...bool) (string, error) {
	hostname, err := osHostname()
	if err != nil {
		return "", err
	}
	if len(strip) == 0 || !strip[0] {
		return hostname, nil
	}
	parts := strings.SplitN(hostname, ".", 2)
	return parts[0], nil
}

// Ns is the namespace for the platform module.
var Ns = eval.BuildNsNamed("platform").
	AddVars(map[string]any{
		"arch":       runtime.GOARCH,
		"os":         runtime.GOOS,
		"is_unix":    isUnix,
		"is_windows": isWindows,
	}).
	AddGoFns(map[string]any{
		"hostname": hostname,
	}).Ns()
