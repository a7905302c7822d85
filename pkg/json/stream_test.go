package json

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncoderWritesNewlineTerminatedJSON(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(person{Name: "Al", Age: 5}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `{"name":"Al","age":5}` + "\n"
	if buf.String() != want {
		t.Errorf("Encode() wrote %q, want %q", buf.String(), want)
	}
}

func TestDecoderReadsValue(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`{"name":"Al","age":5}`))
	var p person
	if err := dec.Decode(&p); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if p.Name != "Al" || p.Age != 5 {
		t.Errorf("Decode() = %+v", p)
	}
}
