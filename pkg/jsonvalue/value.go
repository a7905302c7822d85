// Package jsonvalue implements the tagged-union JSON value tree: the
// single data model shared by the parser, the DOM builders, and the
// marshaling layer.
//
// A Value owns its payload exclusively. Arrays own their elements,
// objects own their members, members own their key and child value.
// There is no sharing and no cycles: the tree is a strict arborescence,
// and Go's garbage collector reclaims it when the last reference drops —
// there is no explicit destructor to call.
package jsonvalue

import "fmt"

// Kind identifies which of the seven JSON variants a Value holds.
type Kind uint8

const (
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("jsonvalue.Kind(%d)", uint8(k))
	}
}

// Member is an object entry: an owned key paired with an owned child
// value. Duplicate keys are permitted and retained in parse order.
type Member struct {
	Key   string
	Value Value
}

// Value is a node in the JSON tree. The zero Value is Null, matching the
// source's "defaults to Null on creation" lifecycle rule.
type Value struct {
	kind Kind
	num  float64
	str  string
	arr  []Value
	obj  []Member
}

// Type reports the variant currently held.
func (v *Value) Type() Kind {
	return v.kind
}

// reset releases the current payload (in Go, simply drops references to
// it) and installs k as the new, zero-valued variant. Every mutator goes
// through reset so no exit path can leave a stale payload attached to a
// new tag.
func (v *Value) reset(k Kind) {
	v.kind = k
	v.num = 0
	v.str = ""
	v.arr = nil
	v.obj = nil
}

// SetNull installs the Null variant.
func (v *Value) SetNull() { v.reset(Null) }

// SetBool installs the True or False variant.
func (v *Value) SetBool(b bool) {
	if b {
		v.reset(True)
	} else {
		v.reset(False)
	}
}

// SetNumber installs the Number variant.
func (v *Value) SetNumber(n float64) {
	v.reset(Number)
	v.num = n
}

// SetString installs the String variant.
func (v *Value) SetString(s string) {
	v.reset(String)
	v.str = s
}

// SetArray installs an empty Array variant. Use AppendElement to
// populate it.
func (v *Value) SetArray() {
	v.reset(Array)
	v.arr = []Value{}
}

// SetObject installs an empty Object variant. Use AppendMember to
// populate it.
func (v *Value) SetObject() {
	v.reset(Object)
	v.obj = []Member{}
}

// Bool returns the boolean payload. Panics if Type is not True or False.
func (v *Value) Bool() bool {
	switch v.kind {
	case True:
		return true
	case False:
		return false
	default:
		panic(fmt.Sprintf("jsonvalue: Bool called on %s value", v.kind))
	}
}

// NumberValue returns the numeric payload. Panics if Type is not Number.
func (v *Value) NumberValue() float64 {
	if v.kind != Number {
		panic(fmt.Sprintf("jsonvalue: NumberValue called on %s value", v.kind))
	}
	return v.num
}

// Str returns the string payload. Panics if Type is not String.
func (v *Value) Str() string {
	if v.kind != String {
		panic(fmt.Sprintf("jsonvalue: Str called on %s value", v.kind))
	}
	return v.str
}

// Len returns the number of elements (Array) or members (Object).
// Panics on any other variant.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		panic(fmt.Sprintf("jsonvalue: Len called on %s value", v.kind))
	}
}

// Index returns a pointer to the element at i of an Array. Panics if
// Type is not Array, or if i is out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != Array {
		panic(fmt.Sprintf("jsonvalue: Index called on %s value", v.kind))
	}
	return &v.arr[i]
}

// AppendElement appends a child to an Array. Panics if Type is not
// Array.
func (v *Value) AppendElement(child Value) {
	if v.kind != Array {
		panic(fmt.Sprintf("jsonvalue: AppendElement called on %s value", v.kind))
	}
	v.arr = append(v.arr, child)
}

// MemberAt returns the i-th member of an Object by position. Panics if
// Type is not Object, or if i is out of range.
func (v *Value) MemberAt(i int) *Member {
	if v.kind != Object {
		panic(fmt.Sprintf("jsonvalue: MemberAt called on %s value", v.kind))
	}
	return &v.obj[i]
}

// AppendMember appends a (key, value) pair to an Object. Duplicate keys
// are allowed; both are retained in append order, as required by
// objects that round-trip `{"a":1,"a":2}`.
func (v *Value) AppendMember(key string, child Value) {
	if v.kind != Object {
		panic(fmt.Sprintf("jsonvalue: AppendMember called on %s value", v.kind))
	}
	v.obj = append(v.obj, Member{Key: key, Value: child})
}

// Find returns a pointer to the value of the first member matching key,
// and whether one was found. When duplicate keys are present this
// returns the first occurrence, matching the order members were parsed
// in.
func (v *Value) Find(key string) (*Value, bool) {
	if v.kind != Object {
		panic(fmt.Sprintf("jsonvalue: Find called on %s value", v.kind))
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			return &v.obj[i].Value, true
		}
	}
	return nil, false
}

// Equal reports whether v and other are structurally equal: same
// variant, same numeric/string payload, elementwise-equal arrays, and
// pairwise-equal (in order) object members. This is the relation
// invariant 3 of the source spec requires between a parsed value and
// the value obtained by re-parsing its stringified form.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null, True, False:
		return true
	case Number:
		return v.num == other.num
	case String:
		return v.str == other.str
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(&other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(&other.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
