package jsonparse

import (
	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// parseArray parses '[' (value (',' value)*)? ']'.
func (p *Parser) parseArray(v *jsonvalue.Value) error {
	p.pos++ // '['
	p.skipWhitespace()

	v.SetArray()

	if b, ok := p.peek(); ok && b == ']' {
		p.pos++
		return nil
	}

	for {
		var elem jsonvalue.Value
		if err := p.parseValue(&elem); err != nil {
			v.SetNull()
			return err
		}
		v.AppendElement(elem)

		p.skipWhitespace()
		b, ok := p.peek()
		if !ok {
			v.SetNull()
			return p.errorAt(jsonerr.MissingCommaOrBracket, p.pos, "")
		}
		if b == ']' {
			p.pos++
			return nil
		}
		if b != ',' {
			v.SetNull()
			return p.errorAt(jsonerr.MissingCommaOrBracket, p.pos, "")
		}
		p.pos++
		p.skipWhitespace()
	}
}

// parseObject parses '{' (member (',' member)*)? '}', where member is
// string ':' value. Duplicate keys are allowed and retained in input
// order.
func (p *Parser) parseObject(v *jsonvalue.Value) error {
	p.pos++ // '{'
	p.skipWhitespace()

	v.SetObject()

	if b, ok := p.peek(); ok && b == '}' {
		p.pos++
		return nil
	}

	for {
		b, ok := p.peek()
		if !ok || b != '"' {
			v.SetNull()
			return p.errorAt(jsonerr.MissingKey, p.pos, "")
		}
		key, err := p.scanString()
		if err != nil {
			v.SetNull()
			return err
		}

		p.skipWhitespace()
		b, ok = p.peek()
		if !ok || b != ':' {
			v.SetNull()
			return p.errorAt(jsonerr.MissingColon, p.pos, "")
		}
		p.pos++
		p.skipWhitespace()

		var child jsonvalue.Value
		if err := p.parseValue(&child); err != nil {
			v.SetNull()
			return err
		}
		v.AppendMember(key, child)

		p.skipWhitespace()
		b, ok = p.peek()
		if !ok {
			v.SetNull()
			return p.errorAt(jsonerr.MissingCommaOrBrace, p.pos, "")
		}
		if b == '}' {
			p.pos++
			return nil
		}
		if b != ',' {
			v.SetNull()
			return p.errorAt(jsonerr.MissingCommaOrBrace, p.pos, "")
		}
		p.pos++
		p.skipWhitespace()
	}
}
