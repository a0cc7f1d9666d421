package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

func TestNs(t *testing.T) {
	ns := BuildNsNamed("m").
		AddVar("b", 1.0).
		AddGoFns(map[string]any{"f": func() {}}).
		Ns()

	vals.TestValue(t, ns).
		Kind("module").
		Repr("<module m>").
		Member("b", 1.0).
		NoMember("c")

	ns.SetMember("a", "x")
	if diff := cmp.Diff([]string{"a", "b", "f"}, ns.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
	f, _ := ns.Member("f")
	if repr := vals.Repr(f); repr != "<builtin m.f>" {
		t.Errorf("qualified function repr = %q", repr)
	}
}
