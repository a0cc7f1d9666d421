// Package shell is the entry point for the command-line interface of Sona.
package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/logutil"
	"github.com/Bryantad/Sona-sub001/pkg/mods"
	"github.com/Bryantad/Sona-sub001/pkg/prog"
	"github.com/Bryantad/Sona-sub001/pkg/store"
	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
	"github.com/Bryantad/Sona-sub001/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the interpreter subprogram. It runs a script when given one and
// an interactive session otherwise.
type Program struct{}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}
	if f.CompileOnly && len(args) == 0 {
		return prog.BadUsage("-compileonly requires a script")
	}

	cfg, err := LoadConfig(f)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}
	diag.SetStyled(sys.IsATTY(fds[2]) && !cfg.NoColor)

	st, cleanup := openStore(fds[2], cfg.DB)
	defer cleanup()

	if len(args) > 0 {
		ev := initEvaler(fds, cfg, st, args[1:])
		exit := script(ev, fds, args, &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}

	ev := initEvaler(fds, cfg, st, nil)
	return interact(fds, ev, st)
}

// Creates an Evaler set up according to cfg, with all the native modules.
func initEvaler(fds [3]*os.File, cfg *Config, st storedefs.Store, args []string) *eval.Evaler {
	ev := eval.NewEvaler()
	ev.SetStdin(fds[0])
	ev.SetStdout(fds[1])
	ev.SetModuleRoots(cfg.Lib, cfg.AltLib)
	ev.SetModuleExtensions(cfg.Extensions...)
	ev.SetArgs(args)
	mods.AddTo(ev, st)
	return ev
}

// Opens the database at path. Failures are reported as warnings, since
// everything except history and the store module works without it.
func openStore(stderr *os.File, path string) (storedefs.Store, func()) {
	if path == "" {
		return nil, func() {}
	}
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot create database directory:", err)
		return nil, func() {}
	}
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open database:", err)
		fmt.Fprintln(stderr, "History and the store module are not available.")
		return nil, func() {}
	}
	logger.Debug().Str("path", path).Msg("database opened")
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing database")
		}
	}
}
