package json

import "io"

// A Decoder reads and decodes JSON values from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the next JSON-encoded value from its input and stores it
// in the value pointed to by v. The reader is consumed to EOF; Decoder
// does not yet support a stream of multiple concatenated values.
//
// See Unmarshal for the conversion rules between JSON and v.
func (dec *Decoder) Decode(v interface{}) error {
	data, err := io.ReadAll(dec.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}
