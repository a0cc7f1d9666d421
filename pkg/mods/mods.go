// Package mods collects the native modules of the standard library.
package mods

import (
	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/mods/env"
	"github.com/Bryantad/Sona-sub001/pkg/mods/io"
	"github.com/Bryantad/Sona-sub001/pkg/mods/math"
	"github.com/Bryantad/Sona-sub001/pkg/mods/platform"
	"github.com/Bryantad/Sona-sub001/pkg/mods/re"
	"github.com/Bryantad/Sona-sub001/pkg/mods/runtime"
	"github.com/Bryantad/Sona-sub001/pkg/mods/store"
	"github.com/Bryantad/Sona-sub001/pkg/mods/str"
	"github.com/Bryantad/Sona-sub001/pkg/mods/time"
	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
)

// AddTo adds all standard library modules to the Evaler. The store module is
// added only if st is not nil.
func AddTo(ev *eval.Evaler, st storedefs.Store) {
	ev.AddModule("env", env.Ns)
	ev.AddModule("io", io.Ns)
	ev.AddModule("math", math.Ns)
	ev.AddModule("platform", platform.Ns)
	ev.AddModule("re", re.Ns)
	ev.AddModule("runtime", runtime.Ns(ev))
	ev.AddModule("str", str.Ns)
	ev.AddModule("time", time.Ns)
	if st != nil {
		ev.AddModule("store", store.Ns(st))
	}
}
