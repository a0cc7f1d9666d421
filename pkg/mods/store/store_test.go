package store

import (
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	. "github.com/Bryantad/Sona-sub001/pkg/eval/evaltest"
	"github.com/Bryantad/Sona-sub001/pkg/store"
)

func TestStore(t *testing.T) {
	s := store.MustTempStore(t)
	setup := func(ev *eval.Evaler) { ev.AddModule("store", Ns(s)) }

	TestWithSetup(t, setup,
		That("import store", "print(store.get('k'), store.get('k', 0))").Prints("null 0\n"),
		That("import store", "store.put('k', 'v')", "store.put('a', '1')").DoesNothing(),
		That("import store", "print(store.get('k'), store.keys())").Prints(`v ["a", "k"]` + "\n"),
		That("import store", "store.del('k')", "print(store.get('k'), store.keys())").
			Prints(`null ["a"]` + "\n"),
	)
}
