package json

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

// Unmarshaler is the interface implemented by types that can unmarshal a
// JSON description of themselves.
type Unmarshaler interface {
	UnmarshalJSON([]byte) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

// Unmarshal parses the JSON-encoded data and stores the result in the
// value pointed to by v.
//
// Unmarshal uses the inverse of the encodings that Marshal uses,
// allocating maps, slices, and pointers as necessary. To unmarshal JSON
// into a struct, Unmarshal matches incoming object keys to the keys used
// by Marshal (the struct field name, or its "json" tag). To unmarshal
// into an interface{}, Unmarshal stores one of: nil, bool, float64 or
// int64, string, []interface{}, map[string]interface{}.
func Unmarshal(data []byte, v interface{}) error {
	var root jsonvalue.Value
	if err := parseInto(data, &root); err != nil {
		return err
	}
	return unmarshalFromValue(&root, v)
}

func unmarshalFromValue(root *jsonvalue.Value, v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil {
		return errors.New("json: Unmarshal(nil)")
	}
	if rv.Kind() != reflect.Ptr {
		return errors.New("json: Unmarshal(non-pointer " + rv.Type().String() + ")")
	}
	if rv.IsNil() {
		return errors.New("json: Unmarshal(nil " + rv.Type().String() + ")")
	}

	if rv.Type().Implements(unmarshalerType) {
		return rv.Interface().(Unmarshaler).UnmarshalJSON(root.StringifyCompact(nil))
	}

	return unmarshalValue(root, rv.Elem())
}

func unmarshalValue(node *jsonvalue.Value, rv reflect.Value) error {
	if node.Type() == jsonvalue.Null {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		rv.Set(reflect.ValueOf(ToInterface(node)))
		return nil
	}
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(node, rv.Elem())
	}

	switch rv.Type() {
	case timeType:
		if node.Type() != jsonvalue.String {
			return fmt.Errorf("json: cannot unmarshal %s into Go value of type time.Time", node.Type())
		}
		t, err := time.Parse(time.RFC3339Nano, node.Str())
		if err != nil {
			return fmt.Errorf("json: invalid time %q: %w", node.Str(), err)
		}
		rv.Set(reflect.ValueOf(t))
		return nil
	case durationType:
		if node.Type() != jsonvalue.String {
			return fmt.Errorf("json: cannot unmarshal %s into Go value of type time.Duration", node.Type())
		}
		d, err := parseISO8601Duration(node.Str())
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(d))
		return nil
	}

	switch node.Type() {
	case jsonvalue.String:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("json: cannot unmarshal string into Go value of type %s", rv.Type())
		}
		rv.SetString(node.Str())
		return nil
	case jsonvalue.True, jsonvalue.False:
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("json: cannot unmarshal bool into Go value of type %s", rv.Type())
		}
		rv.SetBool(node.Bool())
		return nil
	case jsonvalue.Number:
		return unmarshalNumber(node.NumberValue(), rv)
	case jsonvalue.Object:
		return unmarshalObject(node, rv)
	case jsonvalue.Array:
		return unmarshalArray(node, rv)
	default:
		return fmt.Errorf("json: unsupported node type %s", node.Type())
	}
}

func unmarshalNumber(f float64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := int64(f)
		if float64(i) != f {
			return fmt.Errorf("json: cannot unmarshal number %v into Go value of type %s", f, rv.Type())
		}
		if rv.OverflowInt(i) {
			return fmt.Errorf("json: value %v overflows %s", f, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f < 0 {
			return fmt.Errorf("json: value %v overflows %s", f, rv.Type())
		}
		u := uint64(f)
		if float64(u) != f {
			return fmt.Errorf("json: cannot unmarshal number %v into Go value of type %s", f, rv.Type())
		}
		if rv.OverflowUint(u) {
			return fmt.Errorf("json: value %v overflows %s", f, rv.Type())
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return fmt.Errorf("json: value %v overflows %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	default:
		return fmt.Errorf("json: cannot unmarshal number into Go value of type %s", rv.Type())
	}
}

func unmarshalObject(node *jsonvalue.Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Struct:
		return unmarshalStruct(node, rv)
	case reflect.Map:
		return unmarshalMap(node, rv)
	default:
		return fmt.Errorf("json: cannot unmarshal object into Go value of type %s", rv.Type())
	}
}

func unmarshalStruct(node *jsonvalue.Value, rv reflect.Value) error {
	fields := cachedFields(rv.Type())
	fieldMap := make(map[string]fieldInfo, len(fields))
	for _, info := range fields {
		fieldMap[info.name] = info
	}

	for i := 0; i < node.Len(); i++ {
		member := node.MemberAt(i)
		info, ok := fieldMap[member.Key]
		if !ok {
			continue
		}
		child := &member.Value
		if info.asString && child.Type() == jsonvalue.String {
			// Inverse of the "string" tag option: the string holds the
			// JSON text of a scalar.
			var inner jsonvalue.Value
			if err := parseInto([]byte(child.Str()), &inner); err != nil {
				return fmt.Errorf("json: invalid ,string value for field %s: %w", rv.Type().Field(info.index).Name, err)
			}
			child = &inner
		}
		if err := unmarshalValue(child, rv.Field(info.index)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMap(node *jsonvalue.Value, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("json: unsupported map key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	}

	for i := 0; i < node.Len(); i++ {
		member := node.MemberAt(i)
		elemVal := reflect.New(mapType.Elem()).Elem()
		if err := unmarshalValue(&member.Value, elemVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(member.Key).Convert(mapType.Key()), elemVal)
	}
	return nil
}

func unmarshalArray(node *jsonvalue.Value, rv reflect.Value) error {
	n := node.Len()
	switch rv.Kind() {
	case reflect.Slice:
		slice := reflect.MakeSlice(rv.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := unmarshalValue(node.Index(i), slice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil
	case reflect.Array:
		if n > rv.Len() {
			return fmt.Errorf("json: array length %d exceeds target array length %d", n, rv.Len())
		}
		for i := 0; i < n; i++ {
			if err := unmarshalValue(node.Index(i), rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("json: cannot unmarshal array into Go value of type %s", rv.Type())
	}
}
