package jsonparse

import (
	"bytes"
	"testing"

	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// FuzzParse feeds arbitrary input at the parser and checks two properties:
// it never panics, and any value it accepts survives a
// Parse -> Stringify -> Parse round trip byte-for-byte (since StringifyCompact
// is deterministic over an already-parsed tree).
func FuzzParse(f *testing.F) {
	seeds := []string{
		`{}`,
		`[]`,
		`null`,
		`true`,
		`false`,
		`0`,
		`-456`,
		`123.456`,
		`1.23e10`,
		`""`,
		`"escaped \"quote\""`,
		`"unicodeA"`,
		`"surrogate𝄞"`,
		`{"key":"value"}`,
		`{"a":1,"a":2}`,
		`[1,2,3]`,
		`{"nested":{"obj":{"value":42}}}`,
		`[[[[[[1]]]]]]`,
		`   {}   `,
		`{"":""}`,
		`[null,null]`,
		`{"a":null,"b":false,"c":0,"d":"","e":[],"f":{}}`,
		`1e309`,
		`+0`,
		`0123`,
		`[1`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		var v jsonvalue.Value
		err := Parse([]byte(input), &v)
		if err != nil {
			return
		}

		out1 := v.StringifyCompact(nil)

		var v2 jsonvalue.Value
		if err := Parse(out1, &v2); err != nil {
			t.Fatalf("reparse of own output failed for %q -> %q: %v", input, out1, err)
		}
		out2 := v2.StringifyCompact(nil)
		if !bytes.Equal(out1, out2) {
			t.Fatalf("non-deterministic round trip: %q vs %q", out1, out2)
		}
	})
}
