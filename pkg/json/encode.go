package json

import "io"

// An Encoder writes JSON values to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the JSON encoding of v to the stream, followed by a
// newline. See Marshal for the conversion rules between v and JSON.
func (enc *Encoder) Encode(v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if _, err := enc.w.Write(data); err != nil {
		return err
	}
	_, err = enc.w.Write([]byte("\n"))
	return err
}
