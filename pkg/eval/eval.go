// Package eval handles evaluation of parsed code and provides runtime
// facilities.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/logutil"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Defaults of the module system.
const (
	DefaultModuleRoot    = "modules"
	DefaultAltModuleRoot = "stdlib"
)

// DefaultModuleExtensions are the file extensions tried when probing for a
// module, in order.
var DefaultModuleExtensions = []string{".sona", ".smod"}

// Evaler is an interpreter session. It maintains the state that is persisted
// between evaluations of different pieces of code: the global frame with its
// function table, and the module registries. An Evaler is not safe for
// concurrent use; separate sessions do not share any state.
type Evaler struct {
	grammar *parse.Grammar

	global  *env
	builtin *Ns

	// Module registry, keyed by registration key (alias or base name).
	modules map[string]any
	// Loaded modules, keyed by canonical dotted path.
	loaded map[string]any
	// Canonical paths of modules being loaded, used to detect import cycles.
	loading map[string]bool

	moduleFS   ModuleFS
	moduleRoot string
	altRoot    string
	moduleExts []string

	stdin  *bufio.Reader
	stdout io.Writer

	args []string
}

// NewEvaler creates a new Evaler. It panics if the embedded grammar is
// malformed.
func NewEvaler() *Evaler {
	return &Evaler{
		grammar: parse.DefaultGrammar(),

		global:  newEnv(nil),
		builtin: builtinNs.Ns(),

		modules: make(map[string]any),
		loaded:  make(map[string]any),
		loading: make(map[string]bool),

		moduleFS:   OSModuleFS(""),
		moduleRoot: DefaultModuleRoot,
		altRoot:    DefaultAltModuleRoot,
		moduleExts: DefaultModuleExtensions,

		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
	}
}

// SetGrammar sets the grammar used to parse code.
func (ev *Evaler) SetGrammar(g *parse.Grammar) { ev.grammar = g }

// SetStdout sets the output sink of print and other output functions.
func (ev *Evaler) SetStdout(w io.Writer) { ev.stdout = w }

// Stdout returns the output sink.
func (ev *Evaler) Stdout() io.Writer { return ev.stdout }

// SetStdin sets the input source of input functions.
func (ev *Evaler) SetStdin(r io.Reader) { ev.stdin = bufio.NewReader(r) }

// Stdin returns the input source.
func (ev *Evaler) Stdin() *bufio.Reader { return ev.stdin }

// SetModuleFS sets the file system modules are probed on.
func (ev *Evaler) SetModuleFS(fsys ModuleFS) { ev.moduleFS = fsys }

// SetModuleRoots sets the primary and alternate module roots. Empty arguments
// leave the corresponding root unchanged.
func (ev *Evaler) SetModuleRoots(primary, alternate string) {
	if primary != "" {
		ev.moduleRoot = primary
	}
	if alternate != "" {
		ev.altRoot = alternate
	}
}

// ModuleRoots returns the primary and alternate module roots.
func (ev *Evaler) ModuleRoots() (primary, alternate string) {
	return ev.moduleRoot, ev.altRoot
}

// ModuleExtensions returns the file extensions tried when probing for a
// module.
func (ev *Evaler) ModuleExtensions() []string {
	return append([]string(nil), ev.moduleExts...)
}

// SetModuleExtensions sets the file extensions tried when probing for a
// module. Calling it with no arguments restores the defaults.
func (ev *Evaler) SetModuleExtensions(exts ...string) {
	if len(exts) == 0 {
		exts = DefaultModuleExtensions
	}
	ev.moduleExts = append([]string(nil), exts...)
}

// AddModule registers a native module under name, so that "import name" binds
// it without probing the file system. The Evaler keeps its own copy of mod.
func (ev *Evaler) AddModule(name string, mod *Ns) {
	mod = mod.clone()
	ev.modules[name] = mod
	ev.loaded[name] = mod
	logger.Debug().Str("module", name).Msg("native module registered")
}

// SetArgs sets the arguments passed to the script being run.
func (ev *Evaler) SetArgs(args []string) { ev.args = append([]string(nil), args...) }

// Args returns the arguments passed to the script being run.
func (ev *Evaler) Args() []string { return append([]string(nil), ev.args...) }

// Global returns the value bound to name in the global frame.
func (ev *Evaler) Global(name string) (any, bool) {
	v, ok := ev.global.vars[name]
	return v, ok
}

// Outcome is the result of running a piece of code.
type Outcome struct {
	// Err is nil if the code ran to completion. Otherwise it is either a
	// *parse.Error or an *Exception.
	Err error
}

// OK returns whether the code ran to completion.
func (o Outcome) OK() bool { return o.Err == nil }

// Kind returns the kind of the error. It must not be called if OK returns
// true.
func (o Outcome) Kind() errs.Kind { return errs.KindOf(o.Err) }

// Show shows the error, or returns "" if OK returns true.
func (o Outcome) Show() string {
	if o.Err == nil {
		return ""
	}
	if shower, ok := o.Err.(diag.Shower); ok {
		return shower.Show("")
	}
	return diag.ShowMessage(o.Kind().String(), o.Err.Error())
}

// Run parses and executes src in the session. It never panics: errors of any
// kind, including unexpected panics during evaluation, are returned in the
// Outcome. The session stays usable after a failed run.
func (ev *Evaler) Run(src parse.Source) Outcome {
	err := ev.Eval(src)
	if err != nil {
		logger.Debug().Str("source", src.Name).Str("kind", errs.KindOf(err).String()).
			Err(err).Msg("run failed")
	}
	return Outcome{err}
}

// Eval parses and executes src in the session. The returned error is either a
// *parse.Error or an *Exception.
func (ev *Evaler) Eval(src parse.Source) (err error) {
	tree, err := parse.Parse(src, parse.Config{Grammar: ev.grammar})
	if err != nil {
		return err
	}
	return ev.execTree(tree, ev.global)
}

// Check parses src without executing it.
func (ev *Evaler) Check(src parse.Source) error {
	_, err := parse.Parse(src, parse.Config{Grammar: ev.grammar})
	return err
}

// Executes a parsed tree with the given global frame.
func (ev *Evaler) execTree(tree parse.Tree, global *env) (err error) {
	fm := &Frame{ev, newScope(global, ev.builtin), tree.Source}
	defer func() {
		if r := recover(); r != nil {
			err = NewException(fmt.Errorf("internal error: %v", r),
				diag.NewContext(tree.Source.Name, tree.Source.Code, tree.Root))
		}
	}()
	f, err := fm.execChunk(tree.Root)
	if err != nil {
		return err
	}
	if f.kind != normalFlow {
		return fm.errorp(f.node, errs.UncaughtFlow{Flow: f.kind.String()})
	}
	return nil
}

// Call calls fn with the given arguments, outside of any code. Errors are
// positioned at the name of the caller.
func (ev *Evaler) Call(fn Callable, args []any, from string) (any, error) {
	fm := &Frame{ev, newScope(ev.global, ev.builtin), parse.Source{Name: from}}
	return fn.Call(fm, args)
}
