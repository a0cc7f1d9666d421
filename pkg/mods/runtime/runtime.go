// Package runtime implements the runtime module.
package runtime

import (
	"os"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

var osExecutable = os.Executable

// Ns returns the namespace for the runtime module.
//
// The module roots, extensions and script arguments of the Evaler should be
// set before this function is called.
func Ns(ev *eval.Evaler) *eval.Ns {
	sonaPath, err := osExecutable()
	if err != nil {
		sonaPath = ""
	}
	primary, alternate := ev.ModuleRoots()
	exts := vals.MakeList()
	for _, ext := range ev.ModuleExtensions() {
		exts.Append(ext)
	}
	args := vals.MakeList()
	for _, arg := range ev.Args() {
		args.Append(arg)
	}

	return eval.BuildNsNamed("runtime").
		AddVars(map[string]any{
			"args":       args,
			"sona_path":  nonEmptyOrNil(sonaPath),
			"lib_dirs":   vals.MakeList(primary, alternate),
			"extensions": exts,
		}).Ns()
}

func nonEmptyOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
