package jsonparse

import (
	"math"
	"strconv"

	"github.com/ironjson/ironjson/pkg/jsonerr"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseNumber validates the span against the RFC 8259 number grammar,
// then converts it with strconv.ParseFloat (locale-independent,
// round-to-nearest). Overflow (±Inf) is rejected; underflow to 0 is
// accepted silently, per spec.md §4.1.5.
func (p *Parser) parseNumber(v *jsonvalue.Value) error {
	start := p.pos

	if !p.scanNumberSpan() {
		return p.errorAt(jsonerr.InvalidValue, start, "")
	}

	raw := string(p.data[start:p.pos])
	f, err := strconv.ParseFloat(raw, 64)
	if math.IsInf(f, 0) {
		// On overflow strconv returns ±Inf together with ErrRange, so this
		// is checked before the generic error below.
		return p.errorAt(jsonerr.NumberOverflow, start, "")
	}
	if err != nil {
		// Any other strconv failure is a shape it doesn't recognize, which
		// scanNumberSpan should have already rejected; treat defensively
		// as a shape error rather than propagating strconv's message.
		return p.errorAt(jsonerr.InvalidValue, start, "")
	}

	v.SetNumber(f)
	return nil
}

// scanNumberSpan advances the cursor across one well-formed JSON number
// token and reports whether the span matched the grammar:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int     = "0" | digit1-9 *digit
//	frac    = "." 1*digit
//	exp     = ("e" | "E") ["+" | "-"] 1*digit
func (p *Parser) scanNumberSpan() bool {
	if b, ok := p.peek(); ok && b == '-' {
		p.pos++
	}

	b, ok := p.peek()
	if !ok || !isDigit(b) {
		return false
	}
	if b == '0' {
		p.pos++
	} else {
		for {
			b, ok := p.peek()
			if !ok || !isDigit(b) {
				break
			}
			p.pos++
		}
	}

	if b, ok := p.peek(); ok && b == '.' {
		p.pos++
		if b, ok := p.peek(); !ok || !isDigit(b) {
			return false
		}
		for {
			b, ok := p.peek()
			if !ok || !isDigit(b) {
				break
			}
			p.pos++
		}
	}

	if b, ok := p.peek(); ok && (b == 'e' || b == 'E') {
		p.pos++
		if b, ok := p.peek(); ok && (b == '+' || b == '-') {
			p.pos++
		}
		if b, ok := p.peek(); !ok || !isDigit(b) {
			return false
		}
		for {
			b, ok := p.peek()
			if !ok || !isDigit(b) {
				break
			}
			p.pos++
		}
	}

	return true
}
