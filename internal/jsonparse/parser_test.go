package jsonparse

import (
	"testing"

	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

func parseCode(t *testing.T, input string) (jsonvalue.Value, jsonerr.Code) {
	t.Helper()
	var v jsonvalue.Value
	err := Parse([]byte(input), &v)
	if err == nil {
		return v, jsonerr.OK
	}
	pe, ok := err.(*jsonerr.ParseError)
	if !ok {
		t.Fatalf("Parse(%q) returned non-ParseError: %v", input, err)
	}
	return v, pe.Code
}

// TestEndToEndCases exercises the concrete table from spec.md section 8.
func TestEndToEndCases(t *testing.T) {
	tests := []struct {
		input string
		code  jsonerr.Code
	}{
		{``, jsonerr.ExpectValue},
		{`null`, jsonerr.OK},
		{`true x`, jsonerr.RootNotSingular},
		{`nul`, jsonerr.InvalidValue},
		{`+0`, jsonerr.InvalidValue},
		{`0123`, jsonerr.RootNotSingular},
		{`1e309`, jsonerr.NumberOverflow},
		{`"\uD800"`, jsonerr.InvalidUnicodeSurrogate},
		{`[1,"",[0.5,true]]`, jsonerr.OK},
		{`{"a":1,"a":2}`, jsonerr.OK},
		{`[1`, jsonerr.MissingCommaOrBracket},
		{`{"k"1}`, jsonerr.MissingColon},
	}

	for _, tt := range tests {
		_, code := parseCode(t, tt.input)
		if code != tt.code {
			t.Errorf("Parse(%q) code = %s, want %s", tt.input, code, tt.code)
		}
	}
}

func TestParseOKValuesMatchShape(t *testing.T) {
	v, code := parseCode(t, `[1,"",[0.5,true]]`)
	if code != jsonerr.OK {
		t.Fatalf("unexpected error code %s", code)
	}
	if v.Type() != jsonvalue.Array || v.Len() != 3 {
		t.Fatalf("top-level array shape wrong: type=%s len=%d", v.Type(), v.Len())
	}
	inner := v.Index(2)
	if inner.Type() != jsonvalue.Array || inner.Len() != 2 {
		t.Fatalf("inner array shape wrong: type=%s len=%d", inner.Type(), inner.Len())
	}
}

func TestParseObjectRetainsDuplicateKeysInOrder(t *testing.T) {
	v, code := parseCode(t, `{"a":1,"a":2}`)
	if code != jsonerr.OK {
		t.Fatalf("unexpected error code %s", code)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.MemberAt(0).Key != "a" || v.MemberAt(0).Value.NumberValue() != 1 {
		t.Errorf("first member wrong: %+v", v.MemberAt(0))
	}
	if v.MemberAt(1).Key != "a" || v.MemberAt(1).Value.NumberValue() != 2 {
		t.Errorf("second member wrong: %+v", v.MemberAt(1))
	}
}

func TestParseOnErrorResetsRootToNull(t *testing.T) {
	var v jsonvalue.Value
	v.SetNumber(42) // pre-populate to confirm Parse really resets it
	err := Parse([]byte(`[1,`), &v)
	if err == nil {
		t.Fatal("expected an error")
	}
	if v.Type() != jsonvalue.Null {
		t.Errorf("root Type() = %s after failed parse, want null", v.Type())
	}
}

func TestLiteralsAtEveryNestingLevel(t *testing.T) {
	for _, input := range []string{
		`null`,
		`[null]`,
		`[[null]]`,
		`{"a":null}`,
		`{"a":{"b":null}}`,
		`[{"a":[true,false,null]}]`,
	} {
		if _, code := parseCode(t, input); code != jsonerr.OK {
			t.Errorf("Parse(%q) code = %s, want OK", input, code)
		}
	}
}

func TestNumberUnderflowToZeroIsAccepted(t *testing.T) {
	v, code := parseCode(t, `1e-10000`)
	if code != jsonerr.OK {
		t.Fatalf("code = %s, want OK", code)
	}
	if v.NumberValue() != 0 {
		t.Errorf("NumberValue() = %v, want 0", v.NumberValue())
	}
}

func TestStringNamedEscapes(t *testing.T) {
	v, code := parseCode(t, `"\"\\\/\b\f\n\r\t"`)
	if code != jsonerr.OK {
		t.Fatalf("code = %s, want OK", code)
	}
	want := "\"\\/\b\f\n\r\t"
	if v.Str() != want {
		t.Errorf("Str() = %q, want %q", v.Str(), want)
	}
}

// TestStringUnicodeEscapes covers the \u escape boundary cases named in
// spec.md section 8: an embedded NUL, two BMP codepoints that exercise the
// 2-byte and 3-byte UTF-8 encodings, and a surrogate pair that exercises
// the 4-byte encoding. Each input is built from plain ASCII bytes so the
// literal backslash-u escape reaches the parser unchanged.
func TestStringUnicodeEscapes(t *testing.T) {
	quote := "\""
	backslash := "\\"
	tests := []struct {
		input    string
		wantUTF8 []byte
	}{
		{quote + backslash + "u0000" + quote, []byte{0x00}},
		{quote + backslash + "u00A2" + quote, []byte{0xC2, 0xA2}},
		{quote + backslash + "u20AC" + quote, []byte{0xE2, 0x82, 0xAC}},
		{quote + backslash + "uD834" + backslash + "uDD1E" + quote, []byte{0xF0, 0x9D, 0x84, 0x9E}},
	}
	for _, tt := range tests {
		v, code := parseCode(t, tt.input)
		if code != jsonerr.OK {
			t.Fatalf("Parse(%q) code = %s, want OK", tt.input, code)
		}
		if v.Str() != string(tt.wantUTF8) {
			t.Errorf("Parse(%q).Str() = % x, want % x", tt.input, []byte(v.Str()), tt.wantUTF8)
		}
	}
}

func TestEmptyArrayAndObject(t *testing.T) {
	v, code := parseCode(t, `[]`)
	if code != jsonerr.OK || v.Type() != jsonvalue.Array || v.Len() != 0 {
		t.Errorf("Parse(\"[]\"): type=%s len=%d code=%s", v.Type(), v.Len(), code)
	}
	v, code = parseCode(t, `{}`)
	if code != jsonerr.OK || v.Type() != jsonvalue.Object || v.Len() != 0 {
		t.Errorf("Parse(\"{}\"): type=%s len=%d code=%s", v.Type(), v.Len(), code)
	}
}

// TestStringifyThenParseRoundTrips checks invariant 3 of spec.md section 8:
// a value obtained from parse(T), stringified, then reparsed, compares
// Equal to the original.
func TestStringifyThenParseRoundTrips(t *testing.T) {
	inputs := []string{
		`null`, `true`, `false`, `0`, `-1.5`, `1e10`,
		`"hello\nworld"`, `[]`, `{}`,
		`[1,"",[0.5,true]]`,
		`{"a":1,"b":[1,2,3],"c":{"d":null}}`,
	}
	for _, input := range inputs {
		var v jsonvalue.Value
		if err := Parse([]byte(input), &v); err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		text := v.Stringify(nil)

		var reparsed jsonvalue.Value
		if err := Parse(text, &reparsed); err != nil {
			t.Fatalf("reparsing stringified %q (from %q) failed: %v", text, input, err)
		}
		if !v.Equal(&reparsed) {
			t.Errorf("round trip mismatch for %q: stringified to %q", input, text)
		}
	}
}
