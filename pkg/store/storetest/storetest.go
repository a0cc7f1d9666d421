// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
)

// TestKV tests the key-value functionality of a Store.
func TestKV(t *testing.T, store storedefs.Store) {
	t.Helper()

	if _, err := store.Get("missing"); err != storedefs.ErrNoKey {
		t.Errorf("Get(missing) -> error %v, want ErrNoKey", err)
	}
	for _, kv := range [][2]string{{"b", "2"}, {"a", "1"}, {"b", "two"}} {
		if err := store.Put(kv[0], kv[1]); err != nil {
			t.Errorf("Put(%q, %q) -> %v", kv[0], kv[1], err)
		}
	}
	if v, err := store.Get("b"); v != "two" || err != nil {
		t.Errorf("Get(b) -> %q, %v, want two, nil", v, err)
	}
	keys, err := store.Keys()
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" || err != nil {
		t.Errorf("Keys() -> error %v, diff (-want +got):\n%s", err, diff)
	}

	if err := store.Del("a"); err != nil {
		t.Errorf("Del(a) -> %v", err)
	}
	if err := store.Del("a"); err != nil {
		t.Errorf("Del(a) again -> %v", err)
	}
	if _, err := store.Get("a"); err != storedefs.ErrNoKey {
		t.Errorf("Get(a) after Del -> error %v, want ErrNoKey", err)
	}
}

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("NextCmdSeq() -> %v, %v, want 1, nil", startSeq, err)
	}
	cmds := []string{"print(1)", "let x = 2", "print(x)"}
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("AddCmd(%q) -> %v, %v, want %v, nil", cmd, seq, err, wantSeq)
		}
	}
	if cmd, err := store.Cmd(2); cmd != cmds[1] || err != nil {
		t.Errorf("Cmd(2) -> %q, %v, want %q, nil", cmd, err, cmds[1])
	}

	if err := store.DelCmd(2); err != nil {
		t.Errorf("DelCmd(2) -> %v", err)
	}
	if _, err := store.Cmd(2); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(2) after DelCmd -> error %v, want ErrNoMatchingCmd", err)
	}

	got, err := store.CmdsWithSeq(0, 100)
	want := []storedefs.Cmd{{Text: cmds[0], Seq: 1}, {Text: cmds[2], Seq: 3}}
	if diff := cmp.Diff(want, got); diff != "" || err != nil {
		t.Errorf("CmdsWithSeq(0, 100) -> error %v, diff (-want +got):\n%s", err, diff)
	}
	if next, _ := store.NextCmdSeq(); next != 4 {
		t.Errorf("NextCmdSeq() after deletion -> %v, want 4", next)
	}
}
