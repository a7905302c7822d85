// Package jsonparse implements the recursive-descent JSON parser: a
// single mutable cursor into an input byte buffer, dispatching on the
// current byte into one parse routine per grammar production.
//
// The parser is otherwise stateless and fully synchronous; it performs
// no I/O and never suspends. The cursor position after a failure is
// unspecified, matching the source contract — callers must not resume
// parsing after an error.
package jsonparse

import (
	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// whitespace is the set {0x20, 0x09, 0x0A, 0x0D}.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Parser holds the single piece of mutable state a JSON parse needs: a
// cursor into an immutable input buffer.
type Parser struct {
	data []byte
	pos  int
}

// New creates a Parser over data. data is not retained beyond the
// Parse call's string results; it is safe to reuse data after Parse
// returns.
func New(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses data as a complete JSON text into root.
//
// 1. Reset root to Null.
// 2. Skip leading whitespace.
// 3. Parse one value.
// 4. Skip trailing whitespace; any residual byte is RootNotSingular.
//
// On any failure, root observes as Null (invariant 2 of spec.md §8).
func Parse(data []byte, root *jsonvalue.Value) error {
	p := New(data)
	root.SetNull()

	p.skipWhitespace()
	if err := p.parseValue(root); err != nil {
		root.SetNull()
		return err
	}

	p.skipWhitespace()
	if p.pos != len(p.data) {
		root.SetNull()
		return p.errorAt(jsonerr.RootNotSingular, p.pos, "")
	}
	return nil
}

func (p *Parser) errorAt(code jsonerr.Code, offset int, msg string) error {
	return jsonerr.New(code, offset, msg)
}

func (p *Parser) peek() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

// parseValue examines the current byte without consuming it and
// dispatches to the production it identifies.
func (p *Parser) parseValue(v *jsonvalue.Value) error {
	b, ok := p.peek()
	if !ok {
		return p.errorAt(jsonerr.ExpectValue, p.pos, "unexpected end of input")
	}

	switch b {
	case 'n':
		return p.parseLiteral("null", jsonvalue.Null, v)
	case 'f':
		return p.parseLiteral("false", jsonvalue.False, v)
	case 't':
		return p.parseLiteral("true", jsonvalue.True, v)
	case '"':
		return p.parseString(v)
	case '[':
		return p.parseArray(v)
	case '{':
		return p.parseObject(v)
	default:
		return p.parseNumber(v)
	}
}

// parseLiteral requires an exact byte-for-byte match of expected
// starting at the cursor. A longer identifier suffix (e.g. "nullx") is
// not caught here; the residual surfaces later as RootNotSingular or as
// a container error.
func (p *Parser) parseLiteral(expected string, kind jsonvalue.Kind, v *jsonvalue.Value) error {
	if p.pos+len(expected) > len(p.data) || string(p.data[p.pos:p.pos+len(expected)]) != expected {
		return p.errorAt(jsonerr.InvalidValue, p.pos, "expected literal "+expected)
	}
	p.pos += len(expected)
	switch kind {
	case jsonvalue.Null:
		v.SetNull()
	case jsonvalue.True, jsonvalue.False:
		v.SetBool(kind == jsonvalue.True)
	}
	return nil
}
