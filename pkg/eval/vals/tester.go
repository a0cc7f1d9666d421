package vals

import (
	"reflect"
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v any
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v any) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind string) Tester {
	vt.t.Helper()
	kind := Kind(vt.v)
	if kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Bool tests the truthiness of the value.
func (vt Tester) Bool(wantBool bool) Tester {
	vt.t.Helper()
	b := Truthy(vt.v)
	if b != wantBool {
		vt.t.Errorf("Truthy(v) = %v, want %v", b, wantBool)
	}
	return vt
}

// Len tests the Len of the value.
func (vt Tester) Len(wantLen int) Tester {
	vt.t.Helper()
	n := Len(vt.v)
	if n != wantLen {
		vt.t.Errorf("Len(v) = %v, want %v", n, wantLen)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	repr := Repr(vt.v)
	if repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// String tests the ToString of the value.
func (vt Tester) String(wantString string) Tester {
	vt.t.Helper()
	s := ToString(vt.v)
	if s != wantString {
		vt.t.Errorf("ToString(v) = %s, want %s", s, wantString)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values.
func (vt Tester) Equal(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = false, want true", other)
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = true, want false", other)
		}
	}
	return vt
}

// Index tests that Index'ing the value with the given key returns the wanted value
// and no error.
func (vt Tester) Index(key, wantVal any) Tester {
	vt.t.Helper()
	got, err := Index(vt.v, key)
	if err != nil {
		vt.t.Errorf("Index(v, %v) -> err %v, want nil", key, err)
	}
	if !Equal(got, wantVal) {
		vt.t.Errorf("Index(v, %v) -> %v, want %v", key, got, wantVal)
	}
	return vt
}

// IndexError tests that Index'ing the value with the given key returns the given
// error.
func (vt Tester) IndexError(key any, wantErr error) Tester {
	vt.t.Helper()
	_, err := Index(vt.v, key)
	if !reflect.DeepEqual(err, wantErr) {
		vt.t.Errorf("Index(v, %v) -> err %v, want %v", key, err, wantErr)
	}
	return vt
}

// Member tests that looking up a member of the value returns the wanted value.
func (vt Tester) Member(name string, wantVal any) Tester {
	vt.t.Helper()
	got, ok := Member(vt.v, name)
	if !ok {
		vt.t.Errorf("Member(v, %q) -> not found, want %v", name, wantVal)
	} else if !Equal(got, wantVal) {
		vt.t.Errorf("Member(v, %q) -> %v, want %v", name, got, wantVal)
	}
	return vt
}

// NoMember tests that the value has none of the given members.
func (vt Tester) NoMember(names ...string) Tester {
	vt.t.Helper()
	for _, name := range names {
		if _, ok := Member(vt.v, name); ok {
			vt.t.Errorf("Member(v, %q) -> found, want not found", name)
		}
	}
	return vt
}
