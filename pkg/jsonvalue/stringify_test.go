package jsonvalue

import "testing"

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		build func(*Value)
		want  string
	}{
		{func(v *Value) { v.SetNull() }, "null"},
		{func(v *Value) { v.SetBool(true) }, "true"},
		{func(v *Value) { v.SetBool(false) }, "false"},
		{func(v *Value) { v.SetNumber(0) }, "0"},
		{func(v *Value) { v.SetNumber(-1.5) }, "-1.5"},
		{func(v *Value) { v.SetString("hi") }, `"hi"`},
	}
	for _, c := range cases {
		var v Value
		c.build(&v)
		got := string(v.Stringify(nil))
		if got != c.want {
			t.Errorf("Stringify() = %q, want %q", got, c.want)
		}
	}
}

func TestStringifyEscapesControlBytes(t *testing.T) {
	var v Value
	v.SetString("a\x01b")
	got := string(v.Stringify(nil))
	want := `"a\u0001b"`
	if got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestStringifyEscapesNamedEscapes(t *testing.T) {
	var v Value
	v.SetString("\"\\/\b\f\n\r\t")
	got := string(v.Stringify(nil))
	want := `"\"\\\/\b\f\n\r\t"`
	if got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestStringifyEmptyContainersAreCompact(t *testing.T) {
	var arr Value
	arr.SetArray()
	if got := string(arr.Stringify(nil)); got != "[]" {
		t.Errorf("empty array Stringify() = %q, want []", got)
	}

	var obj Value
	obj.SetObject()
	if got := string(obj.Stringify(nil)); got != "{}" {
		t.Errorf("empty object Stringify() = %q, want {}", got)
	}
}

func TestStringifyArrayIsTabIndented(t *testing.T) {
	var v Value
	v.SetArray()
	var a, b Value
	a.SetNumber(1)
	b.SetBool(true)
	v.AppendElement(a)
	v.AppendElement(b)

	want := "[\n\t1,\n\ttrue\n]"
	if got := string(v.Stringify(nil)); got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestStringifyObjectNesting(t *testing.T) {
	var inner Value
	inner.SetArray()
	var half Value
	half.SetNumber(0.5)
	inner.AppendElement(half)

	var v Value
	v.SetObject()
	v.AppendMember("k", inner)

	want := "{\n\t\"k\": [\n\t\t0.5\n\t]\n}"
	if got := string(v.Stringify(nil)); got != want {
		t.Errorf("Stringify() =\n%s\nwant\n%s", got, want)
	}
}

func TestStringifyCompactHasNoWhitespace(t *testing.T) {
	var v Value
	v.SetObject()
	var n Value
	n.SetNumber(1)
	v.AppendMember("a", n)

	want := `{"a":1}`
	if got := string(v.StringifyCompact(nil)); got != want {
		t.Errorf("StringifyCompact() = %q, want %q", got, want)
	}
}
