package jsonparse

import (
	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// parseString consumes the opening '"', accumulates decoded bytes into
// buf, and installs the result into v on the closing '"'.
func (p *Parser) parseString(v *jsonvalue.Value) error {
	s, err := p.scanString()
	if err != nil {
		return err
	}
	v.SetString(s)
	return nil
}

// scanString implements the shared string grammar used both for values
// and for object member keys (MissingKey is raised by the caller before
// ever reaching here; once scanString runs, a key is just a string).
func (p *Parser) scanString() (string, error) {
	start := p.pos
	p.pos++ // opening '"'

	var buf []byte
	for {
		b, ok := p.peek()
		if !ok {
			return "", p.errorAt(jsonerr.MissingQuotationMark, start, "")
		}

		switch {
		case b == '"':
			p.pos++
			return string(buf), nil
		case b == '\\':
			escStart := p.pos
			p.pos++
			decoded, err := p.parseEscape(escStart)
			if err != nil {
				return "", err
			}
			buf = append(buf, decoded...)
		case b < 0x20:
			return "", p.errorAt(jsonerr.InvalidStringChar, p.pos, "")
		default:
			buf = append(buf, b)
			p.pos++
		}
	}
}

// parseEscape handles the byte(s) after a consumed backslash at escStart
// (the backslash's own offset). The cursor is positioned just past the
// backslash on entry.
func (p *Parser) parseEscape(escStart int) ([]byte, error) {
	b, ok := p.peek()
	if !ok {
		return nil, p.errorAt(jsonerr.InvalidStringEscape, escStart, "")
	}

	switch b {
	case '"', '\\', '/':
		p.pos++
		return []byte{b}, nil
	case 'b':
		p.pos++
		return []byte{0x08}, nil
	case 'f':
		p.pos++
		return []byte{0x0C}, nil
	case 'n':
		p.pos++
		return []byte{0x0A}, nil
	case 'r':
		p.pos++
		return []byte{0x0D}, nil
	case 't':
		p.pos++
		return []byte{0x09}, nil
	case 'u':
		p.pos++
		return p.parseUnicodeEscape(escStart)
	default:
		return nil, p.errorAt(jsonerr.InvalidStringEscape, escStart, "")
	}
}

// readHex4 reads exactly four hex digits starting at the cursor and
// returns the decoded 16-bit code unit.
func (p *Parser) readHex4(errOffset int) (uint32, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errorAt(jsonerr.InvalidUnicodeHex, errOffset, "")
	}
	var h uint32
	for i := 0; i < 4; i++ {
		b := p.data[p.pos+i]
		var d uint32
		switch {
		case b >= '0' && b <= '9':
			d = uint32(b - '0')
		case b >= 'a' && b <= 'f':
			d = uint32(b-'a') + 10
		case b >= 'A' && b <= 'F':
			d = uint32(b-'A') + 10
		default:
			return 0, p.errorAt(jsonerr.InvalidUnicodeHex, errOffset, "")
		}
		h = h<<4 | d
	}
	p.pos += 4
	return h, nil
}

// parseUnicodeEscape decodes \uXXXX (and, for a high surrogate, the
// mandatory following \uXXXX) into a UTF-8 byte sequence.
func (p *Parser) parseUnicodeEscape(escStart int) ([]byte, error) {
	h, err := p.readHex4(escStart)
	if err != nil {
		return nil, err
	}

	var codepoint uint32
	switch {
	case h >= 0xD800 && h <= 0xDBFF:
		// High surrogate: the next two bytes must be "\u", then four more
		// hex digits forming a low surrogate.
		if p.pos+2 > len(p.data) || p.data[p.pos] != '\\' || p.data[p.pos+1] != 'u' {
			return nil, p.errorAt(jsonerr.InvalidUnicodeSurrogate, escStart, "")
		}
		p.pos += 2
		l, err := p.readHex4(escStart)
		if err != nil {
			return nil, err
		}
		if l < 0xDC00 || l > 0xDFFF {
			return nil, p.errorAt(jsonerr.InvalidUnicodeSurrogate, escStart, "")
		}
		codepoint = 0x10000 + (h-0xD800)*0x400 + (l - 0xDC00)
	case h >= 0xDC00 && h <= 0xDFFF:
		return nil, p.errorAt(jsonerr.InvalidUnicodeSurrogate, escStart, "")
	default:
		codepoint = h
	}

	return encodeUTF8(codepoint), nil
}

// encodeUTF8 emits codepoint as UTF-8, per spec.md §4.1.7. The 4-byte
// branch uses <= 0x10FFFF (design note 2's fix for the source's off-by-
// one boundary).
func encodeUTF8(c uint32) []byte {
	switch {
	case c < 0x80:
		return []byte{byte(c)}
	case c < 0x800:
		return []byte{
			byte(0xC0 | (c >> 6)),
			byte(0x80 | (c & 0x3F)),
		}
	case c < 0x10000:
		return []byte{
			byte(0xE0 | (c >> 12)),
			byte(0x80 | ((c >> 6) & 0x3F)),
			byte(0x80 | (c & 0x3F)),
		}
	case c <= 0x10FFFF:
		return []byte{
			byte(0xF0 | (c >> 18)),
			byte(0x80 | ((c >> 12) & 0x3F)),
			byte(0x80 | ((c >> 6) & 0x3F)),
			byte(0x80 | (c & 0x3F)),
		}
	default:
		// Unreachable: callers only ever pass values produced by
		// parseUnicodeEscape, which are bounded by construction.
		return nil
	}
}
