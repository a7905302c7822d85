// Package json provides a facade over the jsonvalue/jsonparse engine:
// parsing, stringifying, a fluent DOM builder, Go-value conversion, and
// reflect-based Marshal/Unmarshal, all grounded on the same ordered
// jsonvalue.Value tree.
package json

import (
	"fmt"

	"github.com/ironjson/ironjson/internal/jsonparse"
	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// Parse parses input as a complete JSON text and returns its value tree.
func Parse(input string) (*jsonvalue.Value, error) {
	var v jsonvalue.Value
	if err := parseInto([]byte(input), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// parseInto parses data into v, sharing the byte-slice entry point used
// by Parse and by the Document/Array UnmarshalJSON methods.
func parseInto(data []byte, v *jsonvalue.Value) error {
	return jsonparse.Parse(data, v)
}

// ToInterface converts a jsonvalue.Value to native Go types.
//
// Converts:
//   - Null   -> nil
//   - False/True -> bool
//   - Number -> float64, or int64 when the number has no fractional part
//   - String -> string
//   - Array  -> []interface{}
//   - Object -> map[string]interface{} (duplicate keys collapse to the
//     last occurrence; use the Value tree directly to observe all of them)
func ToInterface(v *jsonvalue.Value) interface{} {
	switch v.Type() {
	case jsonvalue.Null:
		return nil
	case jsonvalue.False:
		return false
	case jsonvalue.True:
		return true
	case jsonvalue.Number:
		f := v.NumberValue()
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case jsonvalue.String:
		return v.Str()
	case jsonvalue.Array:
		arr := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			arr[i] = ToInterface(v.Index(i))
		}
		return arr
	case jsonvalue.Object:
		m := make(map[string]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			member := v.MemberAt(i)
			m[member.Key] = ToInterface(&member.Value)
		}
		return m
	default:
		return nil
	}
}

// FromInterface converts native Go types to a jsonvalue.Value tree.
//
// Converts:
//   - nil -> Null
//   - bool -> False/True
//   - any int/uint/float kind -> Number
//   - string -> String
//   - []interface{} -> Array
//   - map[string]interface{} -> Object (key order is the map's iteration
//     order, which Go does not guarantee is stable)
//   - *Document -> Object, *Array -> Array
func FromInterface(v interface{}) (jsonvalue.Value, error) {
	var out jsonvalue.Value

	if v == nil {
		out.SetNull()
		return out, nil
	}

	switch val := v.(type) {
	case string:
		out.SetString(val)
	case bool:
		out.SetBool(val)
	case int:
		out.SetNumber(float64(val))
	case int8:
		out.SetNumber(float64(val))
	case int16:
		out.SetNumber(float64(val))
	case int32:
		out.SetNumber(float64(val))
	case int64:
		out.SetNumber(float64(val))
	case uint:
		out.SetNumber(float64(val))
	case uint8:
		out.SetNumber(float64(val))
	case uint16:
		out.SetNumber(float64(val))
	case uint32:
		out.SetNumber(float64(val))
	case uint64:
		out.SetNumber(float64(val))
	case float32:
		out.SetNumber(float64(val))
	case float64:
		out.SetNumber(val)
	case []interface{}:
		out.SetArray()
		for i, item := range val {
			elem, err := FromInterface(item)
			if err != nil {
				return out, fmt.Errorf("array element %d: %w", i, err)
			}
			out.AppendElement(elem)
		}
	case map[string]interface{}:
		out.SetObject()
		for key, item := range val {
			child, err := FromInterface(item)
			if err != nil {
				return out, fmt.Errorf("object property %s: %w", key, err)
			}
			out.AppendMember(key, child)
		}
	case *Document:
		return FromInterface(val.ToMap())
	case *Array:
		return FromInterface(val.ToSlice())
	default:
		return out, fmt.Errorf("json: unsupported type: %T", v)
	}
	return out, nil
}
