// Package jsonerr defines the stable error taxonomy shared by the parser,
// the DOM, and the marshaling layer.
//
// Every failure the core engine can produce reduces to one of the Code
// values below. The ordering matches the source's error enum so tests can
// assert on it directly.
package jsonerr

import "fmt"

// Code identifies the kind of failure a parse attempt produced.
type Code uint8

const (
	// OK means the input parsed successfully. ParseError is never
	// constructed with this code; it exists so Code's zero value reads
	// as "ok" rather than as an unnamed error.
	OK Code = iota
	ExpectValue
	InvalidValue
	RootNotSingular
	NumberOverflow
	MissingQuotationMark
	InvalidStringEscape
	InvalidStringChar
	InvalidUnicodeHex
	InvalidUnicodeSurrogate
	MissingCommaOrBracket
	MissingKey
	MissingColon
	MissingCommaOrBrace
)

var codeNames = [...]string{
	OK:                      "ok",
	ExpectValue:             "expect value",
	InvalidValue:            "invalid value",
	RootNotSingular:         "root not singular",
	NumberOverflow:          "number overflow",
	MissingQuotationMark:    "missing quotation mark",
	InvalidStringEscape:     "invalid string escape",
	InvalidStringChar:       "invalid string char",
	InvalidUnicodeHex:       "invalid unicode hex",
	InvalidUnicodeSurrogate: "invalid unicode surrogate",
	MissingCommaOrBracket:   "missing comma or bracket",
	MissingKey:              "missing key",
	MissingColon:            "missing colon",
	MissingCommaOrBrace:     "missing comma or brace",
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("jsonerr.Code(%d)", uint8(c))
}

// ParseError reports a parse failure together with the byte offset at
// which the innermost routine detected it. The cursor position after a
// failure is otherwise unspecified; callers must not resume parsing.
type ParseError struct {
	Code   Code
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("json: %s at byte %d", e.Code, e.Offset)
	}
	return fmt.Sprintf("json: %s: %s at byte %d", e.Code, e.Msg, e.Offset)
}

// New builds a ParseError for code at offset with an optional detail
// message.
func New(code Code, offset int, msg string) *ParseError {
	return &ParseError{Code: code, Offset: offset, Msg: msg}
}

// Is reports whether target is a sentinel for the same Code, so callers
// can write errors.Is(err, jsonerr.ErrNumberOverflow) instead of type
// asserting to *ParseError.
func (e *ParseError) Is(target error) bool {
	sentinel, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return sentinel.Code == e.Code && sentinel.Offset == 0 && sentinel.Msg == ""
}

// Sentinel errors, one per Code, for use with errors.Is. They carry no
// offset or message; compare only the Code.
var (
	ErrExpectValue             = &ParseError{Code: ExpectValue}
	ErrInvalidValue            = &ParseError{Code: InvalidValue}
	ErrRootNotSingular         = &ParseError{Code: RootNotSingular}
	ErrNumberOverflow          = &ParseError{Code: NumberOverflow}
	ErrMissingQuotationMark    = &ParseError{Code: MissingQuotationMark}
	ErrInvalidStringEscape     = &ParseError{Code: InvalidStringEscape}
	ErrInvalidStringChar       = &ParseError{Code: InvalidStringChar}
	ErrInvalidUnicodeHex       = &ParseError{Code: InvalidUnicodeHex}
	ErrInvalidUnicodeSurrogate = &ParseError{Code: InvalidUnicodeSurrogate}
	ErrMissingCommaOrBracket   = &ParseError{Code: MissingCommaOrBracket}
	ErrMissingKey              = &ParseError{Code: MissingKey}
	ErrMissingColon            = &ParseError{Code: MissingColon}
	ErrMissingCommaOrBrace     = &ParseError{Code: MissingCommaOrBrace}
)
