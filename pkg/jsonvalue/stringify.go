package jsonvalue

import (
	"fmt"
	"strconv"
)

const hexDigits = "0123456789abcdef"

// namedEscape reports the one-byte escape character for c (e.g. 'n' for
// '\n'), or 0 if c has no named JSON escape.
func namedEscape(c byte) byte {
	switch c {
	case '"':
		return '"'
	case '\\':
		return '\\'
	case '/':
		return '/'
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	default:
		return 0
	}
}

// appendEscapedString appends s, JSON-escaped, to buf without surrounding
// quotes. It walks s byte by byte, flushing the longest unescaped run
// before each escape so the common case (no escapes) is a single append.
// Control bytes below 0x20 without a named escape fall through to \u00XX
// (design note 3 leaves this branch empty in the source; this fills it in).
func appendEscapedString(buf []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c != '/' {
			continue
		}
		buf = append(buf, s[start:i]...)
		if esc := namedEscape(c); esc != 0 {
			buf = append(buf, '\\', esc)
		} else {
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		}
		start = i + 1
	}
	return append(buf, s[start:]...)
}

// appendNumber appends the shortest decimal text that round-trips v,
// per spec.md's "shortest round-tripping decimal" requirement.
func appendNumber(buf []byte, v float64) []byte {
	return strconv.AppendFloat(buf, v, 'g', -1, 64)
}

// Stringify appends the beautified, tab-indented textual form of v to
// buf and returns the extended buffer. Output is self-parseable: feeding
// it back through the parser reproduces an Equal tree (modulo
// float64 round-trip and duplicate-key ordering, as spec.md allows).
func (v *Value) Stringify(buf []byte) []byte {
	return v.stringify(buf, 0, false)
}

// StringifyCompact appends the compact (no extra whitespace) textual
// form of v to buf. Used by Marshal, which follows encoding/json's
// convention of compact-by-default output.
func (v *Value) StringifyCompact(buf []byte) []byte {
	return v.stringify(buf, 0, true)
}

func (v *Value) stringify(buf []byte, depth int, compact bool) []byte {
	switch v.kind {
	case Null:
		return append(buf, "null"...)
	case False:
		return append(buf, "false"...)
	case True:
		return append(buf, "true"...)
	case Number:
		return appendNumber(buf, v.num)
	case String:
		buf = append(buf, '"')
		buf = appendEscapedString(buf, v.str)
		return append(buf, '"')
	case Array:
		return v.stringifyArray(buf, depth, compact)
	case Object:
		return v.stringifyObject(buf, depth, compact)
	default:
		panic(fmt.Sprintf("jsonvalue: stringify on unknown kind %d", v.kind))
	}
}

func (v *Value) stringifyArray(buf []byte, depth int, compact bool) []byte {
	if len(v.arr) == 0 {
		return append(buf, '[', ']')
	}
	buf = append(buf, '[')
	for i := range v.arr {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNewlineIndent(buf, depth+1, compact)
		buf = v.arr[i].stringify(buf, depth+1, compact)
	}
	buf = appendNewlineIndent(buf, depth, compact)
	return append(buf, ']')
}

func (v *Value) stringifyObject(buf []byte, depth int, compact bool) []byte {
	if len(v.obj) == 0 {
		return append(buf, '{', '}')
	}
	buf = append(buf, '{')
	for i := range v.obj {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNewlineIndent(buf, depth+1, compact)
		buf = append(buf, '"')
		buf = appendEscapedString(buf, v.obj[i].Key)
		buf = append(buf, '"', ':')
		if !compact {
			buf = append(buf, ' ')
		}
		buf = v.obj[i].Value.stringify(buf, depth+1, compact)
	}
	buf = appendNewlineIndent(buf, depth, compact)
	return append(buf, '}')
}

func appendNewlineIndent(buf []byte, depth int, compact bool) []byte {
	if compact {
		return buf
	}
	buf = append(buf, '\n')
	for i := 0; i < depth; i++ {
		buf = append(buf, '\t')
	}
	return buf
}
