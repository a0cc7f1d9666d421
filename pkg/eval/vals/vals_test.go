package vals

import (
	"math"
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/tt"
)

type xtype int

type memberer map[string]any

func (m memberer) Kind() string { return "memberer" }

func (m memberer) Member(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		tt.Args(nil).Rets("null"),
		tt.Args(true).Rets("bool"),
		tt.Args("").Rets("string"),
		tt.Args(1.0).Rets("number"),
		tt.Args(MakeList()).Rets("list"),
		tt.Args(NewMap()).Rets("map"),
		tt.Args(memberer{}).Rets("memberer"),
		tt.Args(xtype(0)).Rets("!!vals.xtype"),
	})
}

func TestFormatNumber(t *testing.T) {
	tt.Test(t, tt.Fn("FormatNumber", FormatNumber), tt.Table{
		tt.Args(8.0).Rets("8"),
		tt.Args(-120.0).Rets("-120"),
		tt.Args(math.Copysign(0, -1)).Rets("0"),
		tt.Args(2.5).Rets("2.5"),
		tt.Args(0.1 + 0.2).Rets("0.30000000000000004"),
		tt.Args(1e21).Rets("1e+21"),
		tt.Args(1e-7).Rets("1e-07"),
		tt.Args(math.Inf(1)).Rets("inf"),
		tt.Args(math.Inf(-1)).Rets("-inf"),
		tt.Args(math.NaN()).Rets("nan"),
	})
}

func TestParseNumber(t *testing.T) {
	tt.Test(t, tt.Fn("ParseNumber", ParseNumber), tt.Table{
		tt.Args("12").Rets(12.0, nil),
		tt.Args(" 2.5\n").Rets(2.5, nil),
		tt.Args("abc").Rets(0.0, errs.BadValue{What: "argument", Valid: "number", Actual: `"abc"`}),
	})
}

func TestToInt(t *testing.T) {
	tt.Test(t, tt.Fn("ToInt", ToInt), tt.Table{
		tt.Args("index", 3.0).Rets(3, nil),
		tt.Args("index", 1.5).Rets(0, errs.BadValue{What: "index", Valid: "integer", Actual: "1.5"}),
		tt.Args("index", "1").Rets(0, errs.WrongType{What: "index", Valid: "number", Actual: "string"}),
	})
}

func TestReprAndString(t *testing.T) {
	TestValue(t, nil).Repr("null").String("null").Bool(false)
	TestValue(t, true).Repr("true").Bool(true)
	TestValue(t, 0.0).Repr("0").Bool(false)
	TestValue(t, "a\"b").Repr(`"a\"b"`).String(`a"b`).Bool(true)
	TestValue(t, "").Bool(false)
	TestValue(t, MakeList(1.0, "a", MakeList())).
		Repr(`[1, "a", []]`).String(`[1, "a", []]`).Bool(true).Len(3)
	TestValue(t, MakeMap("k", 1.0, 2.0, "v")).
		Repr(`{"k": 1, 2: "v"}`).Bool(true).Len(2)
	TestValue(t, NewMap()).Repr("{}").Bool(false)
	TestValue(t, xtype(1)).Repr("<unknown 1>")
}

func TestEqual(t *testing.T) {
	l := MakeList(1.0, MakeMap("a", "b"))
	TestValue(t, l).
		Equal(l, MakeList(1.0, MakeMap("a", "b"))).
		NotEqual(MakeList(1.0), MakeList(1.0, MakeMap("a", "c")), nil, "l")
	TestValue(t, MakeMap("a", 1.0, "b", 2.0)).
		Equal(MakeMap("b", 2.0, "a", 1.0)).
		NotEqual(MakeMap("a", 1.0), MakeMap("a", 1.0, "c", 2.0))
	TestValue(t, nil).Equal(nil).NotEqual(false, 0.0, "")
	TestValue(t, 1.0).Equal(1.0).NotEqual("1", true)

	a, b := &struct{ x int }{}, &struct{ x int }{}
	TestValue(t, a).Equal(a).NotEqual(b)
}

func TestIndex(t *testing.T) {
	l := MakeList("a", "b", "c")
	TestValue(t, l).
		Index(0.0, "a").
		Index(2.0, "c").
		Index(-1.0, "c").
		Index(-3.0, "a").
		IndexError(3.0, errs.OutOfRange{What: "index", ValidLow: "-3", ValidHigh: "2", Actual: "3"}).
		IndexError(-4.0, errs.OutOfRange{What: "index", ValidLow: "-3", ValidHigh: "2", Actual: "-4"}).
		IndexError("0", errs.WrongType{What: "index", Valid: "number", Actual: "string"})

	TestValue(t, "héllo").Index(1.0, "é").Index(-1.0, "o")

	TestValue(t, MakeMap("k", "v", 1.0, "one")).
		Index("k", "v").
		Index(1.0, "one").
		IndexError("x", errs.NoSuchKey{Key: `"x"`})

	TestValue(t, true).IndexError(0.0,
		errs.WrongType{What: "indexed value", Valid: "list, string or map", Actual: "bool"})
}

func TestSetIndex(t *testing.T) {
	l := MakeList(1.0, 2.0)
	if err := SetIndex(l, -1.0, "x"); err != nil {
		t.Errorf("SetIndex -> %v", err)
	}
	TestValue(t, l).Equal(MakeList(1.0, "x"))

	m := NewMap()
	if err := SetIndex(m, "k", 1.0); err != nil {
		t.Errorf("SetIndex -> %v", err)
	}
	TestValue(t, m).Equal(MakeMap("k", 1.0))

	tt.Test(t, tt.Fn("SetIndex", SetIndex), tt.Table{
		tt.Args(MakeList(), 0.0, nil).Rets(errs.OutOfRange{What: "index", ValidLow: "0", ValidHigh: "-1", Actual: "0"}),
		tt.Args(NewMap(), true, nil).Rets(errs.WrongType{What: "map key", Valid: "string or number", Actual: "bool"}),
		tt.Args(NewMap(), math.NaN(), nil).Rets(errs.BadValue{What: "map key", Valid: "number other than nan", Actual: "nan"}),
		tt.Args("str", 0.0, "x").Rets(errs.WrongType{What: "assigned container", Valid: "list or map", Actual: "string"}),
	})
}

func TestMember(t *testing.T) {
	TestValue(t, memberer{"add": "fn"}).Member("add", "fn").NoMember("nope")
	TestValue(t, MakeMap("k", 1.0)).Member("k", 1.0).NoMember("x")
	TestValue(t, "str").NoMember("len")

	m := NewMap()
	if err := SetMember(m, "f", 2.0); err != nil {
		t.Errorf("SetMember -> %v", err)
	}
	TestValue(t, m).Member("f", 2.0)
	if err := SetMember(1.0, "f", 2.0); err != (errs.NoSuchMember{Name: "f", On: "number"}) {
		t.Errorf("SetMember on number -> %v", err)
	}
}

func TestMap_OrderAndDelete(t *testing.T) {
	m := MakeMap("b", 1.0, "a", 2.0, "c", 3.0)
	m.Set("b", 4.0)
	if !m.Delete("a") || m.Delete("a") {
		t.Errorf("Delete did not report existence correctly")
	}
	TestValue(t, m).Repr(`{"b": 4, "c": 3}`)
	TestValue(t, MakeList(m.Values()...)).Equal(MakeList(4.0, 3.0))
}

func TestList_AppendPopConcat(t *testing.T) {
	l := MakeList(1.0)
	l.Append(2.0, 3.0)
	v, ok := l.Pop()
	if v != 3.0 || !ok {
		t.Errorf("Pop -> %v, %v", v, ok)
	}
	TestValue(t, l.Concat(MakeList("x"))).Equal(MakeList(1.0, 2.0, "x"))
	TestValue(t, l).Len(2)
	if _, ok := MakeList().Pop(); ok {
		t.Errorf("Pop on empty list -> ok")
	}
}

func TestIterate(t *testing.T) {
	collect := func(v any) []any {
		var got []any
		err := Iterate(v, func(e any) bool {
			got = append(got, e)
			return len(got) < 3
		})
		if err != nil {
			t.Errorf("Iterate -> %v", err)
		}
		return got
	}
	TestValue(t, MakeList(collect(MakeList(1.0, 2.0, 3.0, 4.0))...)).Equal(MakeList(1.0, 2.0, 3.0))
	TestValue(t, MakeList(collect(MakeMap("x", 1.0, "y", 2.0))...)).Equal(MakeList("x", "y"))
	TestValue(t, MakeList(collect("ab")...)).Equal(MakeList("a", "b"))

	wantErr := errs.WrongType{What: "iterated value", Valid: "list, map or string", Actual: "number"}
	if err := Iterate(1.0, func(any) bool { return true }); err != wantErr {
		t.Errorf("Iterate(1.0) -> %v", err)
	}
}
