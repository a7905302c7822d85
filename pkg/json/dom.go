// Document and Array provide a fluent, type-safe API for building and
// reading JSON trees without juggling interface{} type assertions. Both
// are thin wrappers over a *jsonvalue.Value, so every read reflects the
// same ordered, duplicate-key-preserving tree the parser produces.
//
//	doc := json.NewDocument().
//		SetString("name", "Alice").
//		SetInt("age", 30).
//		SetBool("active", true)
//
//	name, ok := doc.GetString("name") // "Alice", true
package json

import (
	"fmt"

	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// Document represents a JSON object with a fluent API for manipulation.
// All setter methods return *Document to enable method chaining.
type Document struct {
	v jsonvalue.Value
}

// Array represents a JSON array with a fluent API for manipulation.
// All append methods return *Array to enable method chaining.
type Array struct {
	v jsonvalue.Value
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	d := &Document{}
	d.v.SetObject()
	return d
}

// NewArray creates a new empty Array.
func NewArray() *Array {
	a := &Array{}
	a.v.SetArray()
	return a
}

// ParseDocument parses input into a Document. Returns an error if input is
// not valid JSON or its root is not an object.
func ParseDocument(input string) (*Document, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if v.Type() != jsonvalue.Object {
		return nil, fmt.Errorf("json: expected object, got %s", v.Type())
	}
	return &Document{v: *v}, nil
}

// ParseArray parses input into an Array. Returns an error if input is not
// valid JSON or its root is not an array.
func ParseArray(input string) (*Array, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if v.Type() != jsonvalue.Array {
		return nil, fmt.Errorf("json: expected array, got %s", v.Type())
	}
	return &Array{v: *v}, nil
}

// ============================================================================
// Document setters
// ============================================================================

func (d *Document) set(key string, child jsonvalue.Value) *Document {
	if existing, ok := d.v.Find(key); ok {
		*existing = child
		return d
	}
	d.v.AppendMember(key, child)
	return d
}

// SetString sets a string value and returns the Document for chaining.
func (d *Document) SetString(key, value string) *Document {
	var child jsonvalue.Value
	child.SetString(value)
	return d.set(key, child)
}

// SetInt sets an int value and returns the Document for chaining.
func (d *Document) SetInt(key string, value int) *Document {
	var child jsonvalue.Value
	child.SetNumber(float64(value))
	return d.set(key, child)
}

// SetFloat sets a float64 value and returns the Document for chaining.
func (d *Document) SetFloat(key string, value float64) *Document {
	var child jsonvalue.Value
	child.SetNumber(value)
	return d.set(key, child)
}

// SetBool sets a bool value and returns the Document for chaining.
func (d *Document) SetBool(key string, value bool) *Document {
	var child jsonvalue.Value
	child.SetBool(value)
	return d.set(key, child)
}

// SetNull sets key to null and returns the Document for chaining.
func (d *Document) SetNull(key string) *Document {
	var child jsonvalue.Value
	child.SetNull()
	return d.set(key, child)
}

// SetObject nests value under key and returns the parent Document for
// chaining.
func (d *Document) SetObject(key string, value *Document) *Document {
	return d.set(key, value.v)
}

// SetArray nests value under key and returns the Document for chaining.
func (d *Document) SetArray(key string, value *Array) *Document {
	return d.set(key, value.v)
}

// ============================================================================
// Document getters
// ============================================================================

// GetString gets a string value. Returns "" and false if absent or of a
// different type.
func (d *Document) GetString(key string) (string, bool) {
	child, ok := d.v.Find(key)
	if !ok || child.Type() != jsonvalue.String {
		return "", false
	}
	return child.Str(), true
}

// GetInt gets a number value truncated to int. Returns 0 and false if
// absent or of a different type.
func (d *Document) GetInt(key string) (int, bool) {
	child, ok := d.v.Find(key)
	if !ok || child.Type() != jsonvalue.Number {
		return 0, false
	}
	return int(child.NumberValue()), true
}

// GetFloat gets a number value. Returns 0 and false if absent or of a
// different type.
func (d *Document) GetFloat(key string) (float64, bool) {
	child, ok := d.v.Find(key)
	if !ok || child.Type() != jsonvalue.Number {
		return 0, false
	}
	return child.NumberValue(), true
}

// GetBool gets a bool value. Returns false and false if absent or of a
// different type.
func (d *Document) GetBool(key string) (bool, bool) {
	child, ok := d.v.Find(key)
	if !ok || (child.Type() != jsonvalue.True && child.Type() != jsonvalue.False) {
		return false, false
	}
	return child.Bool(), true
}

// GetObject gets a nested Document. Returns nil and false if absent or of
// a different type.
func (d *Document) GetObject(key string) (*Document, bool) {
	child, ok := d.v.Find(key)
	if !ok || child.Type() != jsonvalue.Object {
		return nil, false
	}
	return &Document{v: *child}, true
}

// GetArray gets a nested Array. Returns nil and false if absent or of a
// different type.
func (d *Document) GetArray(key string) (*Array, bool) {
	child, ok := d.v.Find(key)
	if !ok || child.Type() != jsonvalue.Array {
		return nil, false
	}
	return &Array{v: *child}, true
}

// IsNull reports whether key exists and holds a null value.
func (d *Document) IsNull(key string) bool {
	child, ok := d.v.Find(key)
	return ok && child.Type() == jsonvalue.Null
}

// Has reports whether key exists, including when its value is null.
func (d *Document) Has(key string) bool {
	_, ok := d.v.Find(key)
	return ok
}

// Keys returns the document's keys in insertion order. Duplicate keys (as
// may arise from ParseDocument on malformed-but-valid-per-grammar input)
// appear once per occurrence.
func (d *Document) Keys() []string {
	keys := make([]string, d.v.Len())
	for i := range keys {
		keys[i] = d.v.MemberAt(i).Key
	}
	return keys
}

// Size returns the number of members in the Document.
func (d *Document) Size() int {
	return d.v.Len()
}

// ToMap converts the Document to a map[string]interface{}.
func (d *Document) ToMap() map[string]interface{} {
	m, _ := ToInterface(&d.v).(map[string]interface{})
	return m
}

// JSON renders the Document as compact JSON text.
func (d *Document) JSON() string {
	return string(d.v.StringifyCompact(nil))
}

// JSONIndent renders the Document as indented JSON text; see
// jsonvalue.Value.StringifyIndent for the prefix/indent convention.
func (d *Document) JSONIndent(prefix, indent string) string {
	return string(d.v.StringifyIndent(nil, prefix, indent))
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.v.StringifyCompact(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var v jsonvalue.Value
	if err := parseInto(data, &v); err != nil {
		return err
	}
	if v.Type() != jsonvalue.Object {
		return fmt.Errorf("json: expected object, got %s", v.Type())
	}
	d.v = v
	return nil
}

// ============================================================================
// Array append methods
// ============================================================================

// Add appends value, converted via FromInterface, and returns the Array
// for chaining. Panics if value cannot be converted.
func (a *Array) Add(value interface{}) *Array {
	child, err := FromInterface(value)
	if err != nil {
		panic(err)
	}
	a.v.AppendElement(child)
	return a
}

// AddString appends a string and returns the Array for chaining.
func (a *Array) AddString(value string) *Array {
	var child jsonvalue.Value
	child.SetString(value)
	a.v.AppendElement(child)
	return a
}

// AddInt appends an int and returns the Array for chaining.
func (a *Array) AddInt(value int) *Array {
	var child jsonvalue.Value
	child.SetNumber(float64(value))
	a.v.AppendElement(child)
	return a
}

// AddFloat appends a float64 and returns the Array for chaining.
func (a *Array) AddFloat(value float64) *Array {
	var child jsonvalue.Value
	child.SetNumber(value)
	a.v.AppendElement(child)
	return a
}

// AddBool appends a bool and returns the Array for chaining.
func (a *Array) AddBool(value bool) *Array {
	var child jsonvalue.Value
	child.SetBool(value)
	a.v.AppendElement(child)
	return a
}

// AddNull appends null and returns the Array for chaining.
func (a *Array) AddNull() *Array {
	var child jsonvalue.Value
	child.SetNull()
	a.v.AppendElement(child)
	return a
}

// AddObject appends value and returns the parent Array for chaining.
func (a *Array) AddObject(value *Document) *Array {
	a.v.AppendElement(value.v)
	return a
}

// AddArray appends value and returns the parent Array for chaining.
func (a *Array) AddArray(value *Array) *Array {
	a.v.AppendElement(value.v)
	return a
}

// ============================================================================
// Array getters
// ============================================================================

// GetString gets the string at index. Returns "" and false if out of
// bounds or of a different type.
func (a *Array) GetString(index int) (string, bool) {
	if index < 0 || index >= a.v.Len() {
		return "", false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.String {
		return "", false
	}
	return child.Str(), true
}

// GetInt gets the number at index truncated to int. Returns 0 and false
// if out of bounds or of a different type.
func (a *Array) GetInt(index int) (int, bool) {
	if index < 0 || index >= a.v.Len() {
		return 0, false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.Number {
		return 0, false
	}
	return int(child.NumberValue()), true
}

// GetFloat gets the number at index. Returns 0 and false if out of
// bounds or of a different type.
func (a *Array) GetFloat(index int) (float64, bool) {
	if index < 0 || index >= a.v.Len() {
		return 0, false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.Number {
		return 0, false
	}
	return child.NumberValue(), true
}

// GetBool gets the bool at index. Returns false and false if out of
// bounds or of a different type.
func (a *Array) GetBool(index int) (bool, bool) {
	if index < 0 || index >= a.v.Len() {
		return false, false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.True && child.Type() != jsonvalue.False {
		return false, false
	}
	return child.Bool(), true
}

// GetObject gets the Document at index. Returns nil and false if out of
// bounds or of a different type.
func (a *Array) GetObject(index int) (*Document, bool) {
	if index < 0 || index >= a.v.Len() {
		return nil, false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.Object {
		return nil, false
	}
	return &Document{v: *child}, true
}

// GetArray gets the Array at index. Returns nil and false if out of
// bounds or of a different type.
func (a *Array) GetArray(index int) (*Array, bool) {
	if index < 0 || index >= a.v.Len() {
		return nil, false
	}
	child := a.v.Index(index)
	if child.Type() != jsonvalue.Array {
		return nil, false
	}
	return &Array{v: *child}, true
}

// IsNull reports whether the value at index is null.
func (a *Array) IsNull(index int) bool {
	if index < 0 || index >= a.v.Len() {
		return false
	}
	return a.v.Index(index).Type() == jsonvalue.Null
}

// Len returns the number of elements in the Array.
func (a *Array) Len() int {
	return a.v.Len()
}

// ToSlice converts the Array to a []interface{}.
func (a *Array) ToSlice() []interface{} {
	s, _ := ToInterface(&a.v).([]interface{})
	return s
}

// JSON renders the Array as compact JSON text.
func (a *Array) JSON() string {
	return string(a.v.StringifyCompact(nil))
}

// JSONIndent renders the Array as indented JSON text; see
// jsonvalue.Value.StringifyIndent for the prefix/indent convention.
func (a *Array) JSONIndent(prefix, indent string) string {
	return string(a.v.StringifyIndent(nil, prefix, indent))
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	return a.v.StringifyCompact(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Array) UnmarshalJSON(data []byte) error {
	var v jsonvalue.Value
	if err := parseInto(data, &v); err != nil {
		return err
	}
	if v.Type() != jsonvalue.Array {
		return fmt.Errorf("json: expected array, got %s", v.Type())
	}
	a.v = v
	return nil
}
