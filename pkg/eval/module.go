package eval

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Special names of the module system.
const (
	// A trailing path segment that marks a module path; "import a.b.smod" is
	// the same as "import a.b".
	moduleMarker = "smod"
	// A list of names a module file may bind to declare its exports.
	exportListName = "__all__"
	// A name a module file may bind its exported value to.
	fallbackExportName = "module"
)

// ModuleFS is the file system modules are probed on. Names are
// slash-separated.
type ModuleFS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSModuleFS returns a ModuleFS backed by the operating system. Relative names
// are resolved against dir, or the working directory if dir is empty.
func OSModuleFS(dir string) ModuleFS { return osFS{dir} }

type osFS struct{ dir string }

func (o osFS) path(name string) string {
	p := filepath.FromSlash(name)
	if o.dir != "" && !filepath.IsAbs(p) {
		p = filepath.Join(o.dir, p)
	}
	return p
}

func (o osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(o.path(name)) }

func (o osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(o.path(name)) }

// ResolveImport resolves a dotted module path and binds the result in the
// current frame under alias, or under the base name of the path if alias is
// empty. The base name is the last segment, ignoring a trailing "smod".
//
// A module already in the registry under the same key is reused; so is a
// module already loaded from the same path under another key. Otherwise the
// module file is found by probing, in order: the path segments under the
// primary module root, the same under the alternate root, and the dotted path
// as a single file name; each with every module extension. The file is run in
// a fresh global frame, and its exported value is chosen by the first of these
// that applies:
//
//  1. the value bound to the base name;
//  2. the value bound to the first bound name in the __all__ list;
//  3. the value bound to a name matching the base name case-insensitively;
//  4. the value bound to "module";
//  5. the whole namespace of the file.
func (fm *Frame) ResolveImport(segs []string, alias string) (any, error) {
	ev := fm.Evaler
	if len(segs) > 1 && segs[len(segs)-1] == moduleMarker {
		segs = segs[:len(segs)-1]
	}
	base := segs[len(segs)-1]
	key := alias
	if key == "" {
		key = base
	}
	canonical := strings.Join(segs, ".")

	if mod, ok := ev.modules[key]; ok {
		logger.Debug().Str("key", key).Msg("module registry hit")
		fm.scope.Set(key, mod)
		return mod, nil
	}
	if mod, ok := ev.loaded[canonical]; ok {
		logger.Debug().Str("key", key).Str("path", canonical).Msg("module reused under new key")
		ev.modules[key] = mod
		fm.scope.Set(key, mod)
		return mod, nil
	}
	if ev.loading[canonical] {
		return nil, errs.ImportCycle{Spec: canonical}
	}

	file, probed := ev.probe(segs)
	if file == "" {
		return nil, errs.ModuleNotFound{Spec: canonical, Probed: probed}
	}
	ev.loading[canonical] = true
	mod, err := ev.loadModule(file, base)
	delete(ev.loading, canonical)
	if err != nil {
		return nil, err
	}
	ev.loaded[canonical] = mod
	ev.modules[key] = mod
	fm.scope.Set(key, mod)
	return mod, nil
}

// Returns the first module file that exists, and all the paths probed.
func (ev *Evaler) probe(segs []string) (string, []string) {
	var candidates []string
	for _, root := range []string{ev.moduleRoot, ev.altRoot} {
		p := path.Join(append([]string{root}, segs...)...)
		for _, ext := range ev.moduleExts {
			candidates = append(candidates, p+ext)
		}
	}
	for _, ext := range ev.moduleExts {
		candidates = append(candidates, strings.Join(segs, ".")+ext)
	}

	for i, name := range candidates {
		logger.Debug().Str("path", name).Msg("probing module")
		if info, err := ev.moduleFS.Stat(name); err == nil && !info.IsDir() {
			return name, candidates[:i+1]
		}
	}
	return "", candidates
}

func (ev *Evaler) loadModule(file, base string) (any, error) {
	code, err := ev.moduleFS.ReadFile(file)
	if err != nil {
		return nil, err
	}
	src := parse.Source{Name: file, Code: string(code), IsFile: true}
	tree, err := parse.Parse(src, parse.Config{Grammar: ev.grammar})
	if err != nil {
		return nil, err
	}

	global := newEnv(nil)
	if err := ev.execTree(tree, global); err != nil {
		return nil, err
	}
	logger.Debug().Str("file", file).Msg("module loaded")
	return extractExport(global.vars, base), nil
}

func extractExport(vars map[string]any, base string) any {
	if v, ok := vars[base]; ok {
		return v
	}
	if all, ok := vars[exportListName].(*vals.List); ok {
		for _, name := range all.Elems() {
			if name, ok := name.(string); ok {
				if v, ok := vars[name]; ok {
					return v
				}
			}
		}
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.EqualFold(name, base) {
			return vars[name]
		}
	}
	if v, ok := vars[fallbackExportName]; ok {
		return v
	}
	return makeNs(base, vars)
}
