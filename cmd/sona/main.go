// Sona is an interpreter for a small dynamically typed scripting language with
// lexical scopes, first-class functions, classes, exceptions and modules. It
// runs scripts given as files or with -c, and starts an interactive session
// otherwise.
package main

import (
	"os"

	"github.com/Bryantad/Sona-sub001/pkg/buildinfo"
	"github.com/Bryantad/Sona-sub001/pkg/prog"
	"github.com/Bryantad/Sona-sub001/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &shell.Program{})))
}
