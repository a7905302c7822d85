package json

import (
	"bytes"

	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// Indent appends to dst an indented form of the JSON-encoded src, using
// prefix at the start of each line after the first and indent once per
// nesting level.
// Compatible with encoding/json.Indent.
func Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	var v jsonvalue.Value
	if err := parseInto(src, &v); err != nil {
		return err
	}
	dst.Write(v.StringifyIndent(nil, prefix, indent))
	return nil
}

// Compact appends to dst the JSON-encoded src with insignificant space
// elided. Compatible with encoding/json.Compact.
func Compact(dst *bytes.Buffer, src []byte) error {
	var v jsonvalue.Value
	if err := parseInto(src, &v); err != nil {
		return err
	}
	dst.Write(v.StringifyCompact(nil))
	return nil
}
