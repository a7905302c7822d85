package jsonvalue

import "testing"

func TestStringifyIndentTwoSpace(t *testing.T) {
	var v Value
	v.SetObject()
	var age Value
	age.SetNumber(30)
	v.AppendMember("age", age)

	got := string(v.StringifyIndent(nil, "", "  "))
	want := "{\n  \"age\": 30\n}"
	if got != want {
		t.Errorf("StringifyIndent() = %q, want %q", got, want)
	}
}

func TestStringifyIndentWithPrefix(t *testing.T) {
	var v Value
	v.SetArray()
	var one Value
	one.SetNumber(1)
	v.AppendElement(one)

	got := string(v.StringifyIndent(nil, ">>", "  "))
	want := "[\n>>  1\n>>]"
	if got != want {
		t.Errorf("StringifyIndent() = %q, want %q", got, want)
	}
}

func TestStringifyIndentEmptyIndentIsCompact(t *testing.T) {
	var v Value
	v.SetArray()
	got := string(v.StringifyIndent(nil, "", ""))
	if got != "[]" {
		t.Errorf("StringifyIndent with empty indent = %q, want %q", got, "[]")
	}
}
