package json

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/ironjson/ironjson/pkg/jsonvalue"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// Marshaler is the interface implemented by types that can marshal
// themselves into valid JSON.
type Marshaler interface {
	MarshalJSON() ([]byte, error)
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

// Marshal returns the compact JSON encoding of v.
//
// Marshal traverses v recursively. If an encountered value implements
// Marshaler, Marshal calls its MarshalJSON method. Otherwise it uses the
// following type-dependent default encodings: bool -> true/false; any
// numeric kind -> a JSON number; string -> a JSON string; struct -> a JSON
// object built from each exported field's name (or its "json" tag),
// honoring "omitempty" and "-"; map[string]T -> a JSON object with keys
// sorted for deterministic output; slice/array -> a JSON array, with a
// nil slice encoding as null; pointer -> the pointed-to value, or null if
// nil; interface -> the contained value, or null if nil.
func Marshal(v interface{}) ([]byte, error) {
	val, err := marshalToValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return val.StringifyCompact(nil), nil
}

// MarshalIndent is like Marshal but applies StringifyIndent's prefix/indent
// convention to the output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	val, err := marshalToValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return val.StringifyIndent(nil, prefix, indent), nil
}

// marshalToValue converts a reflect.Value into a jsonvalue.Value tree. It
// is the single place default encodings are defined; Marshal and
// MarshalIndent differ only in how the resulting tree is rendered.
func marshalToValue(rv reflect.Value) (jsonvalue.Value, error) {
	var out jsonvalue.Value

	if !rv.IsValid() {
		out.SetNull()
		return out, nil
	}
	if rv.Kind() == reflect.Interface && rv.IsNil() {
		out.SetNull()
		return out, nil
	}
	if rv.Type().Implements(marshalerType) {
		b, err := rv.Interface().(Marshaler).MarshalJSON()
		if err != nil {
			return out, err
		}
		if err := parseInto(b, &out); err != nil {
			return out, fmt.Errorf("json: invalid output from MarshalJSON: %w", err)
		}
		return out, nil
	}
	if rv.Kind() == reflect.Interface {
		return marshalToValue(rv.Elem())
	}
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			out.SetNull()
			return out, nil
		}
		return marshalToValue(rv.Elem())
	}

	switch rv.Type() {
	case timeType:
		t := rv.Interface().(time.Time)
		out.SetString(t.Format(time.RFC3339Nano))
		return out, nil
	case durationType:
		out.SetString(string(appendISO8601Duration(nil, rv.Interface().(time.Duration))))
		return out, nil
	}

	switch rv.Kind() {
	case reflect.String:
		out.SetString(rv.String())
		return out, nil
	case reflect.Bool:
		out.SetBool(rv.Bool())
		return out, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetNumber(float64(rv.Int()))
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out.SetNumber(float64(rv.Uint()))
		return out, nil
	case reflect.Float32, reflect.Float64:
		out.SetNumber(rv.Float())
		return out, nil
	case reflect.Struct:
		return marshalStruct(rv)
	case reflect.Map:
		return marshalMap(rv)
	case reflect.Slice, reflect.Array:
		return marshalSlice(rv)
	default:
		return out, fmt.Errorf("json: unsupported type %s", rv.Type())
	}
}

func marshalStruct(rv reflect.Value) (jsonvalue.Value, error) {
	var out jsonvalue.Value
	out.SetObject()

	structType := rv.Type()
	for _, info := range cachedFields(structType) {
		fieldVal := rv.Field(info.index)
		if info.omitEmpty && isEmptyValue(fieldVal) {
			continue
		}
		child, err := marshalToValue(fieldVal)
		if err != nil {
			return out, fmt.Errorf("field %s: %w", structType.Field(info.index).Name, err)
		}
		if info.asString {
			child = stringifyScalar(child)
		}
		out.AppendMember(info.name, child)
	}
	return out, nil
}

// stringifyScalar implements the "string" tag option: a number or bool
// field is marshaled as a JSON string of its usual representation.
func stringifyScalar(v jsonvalue.Value) jsonvalue.Value {
	var out jsonvalue.Value
	switch v.Type() {
	case jsonvalue.Number, jsonvalue.True, jsonvalue.False:
		out.SetString(string(v.StringifyCompact(nil)))
	default:
		return v
	}
	return out
}

func marshalMap(rv reflect.Value) (jsonvalue.Value, error) {
	var out jsonvalue.Value
	if rv.IsNil() {
		out.SetNull()
		return out, nil
	}
	if rv.Type().Key().Kind() != reflect.String {
		return out, fmt.Errorf("json: unsupported map key type %s", rv.Type().Key())
	}
	out.SetObject()

	keys := rv.MapKeys()
	strKeys := make([]string, len(keys))
	for i, k := range keys {
		strKeys[i] = k.String()
	}
	sort.Strings(strKeys)

	for _, k := range strKeys {
		child, err := marshalToValue(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
		if err != nil {
			return out, fmt.Errorf("map key %s: %w", k, err)
		}
		out.AppendMember(k, child)
	}
	return out, nil
}

func marshalSlice(rv reflect.Value) (jsonvalue.Value, error) {
	var out jsonvalue.Value
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		out.SetNull()
		return out, nil
	}
	out.SetArray()
	for i := 0; i < rv.Len(); i++ {
		child, err := marshalToValue(rv.Index(i))
		if err != nil {
			return out, fmt.Errorf("index %d: %w", i, err)
		}
		out.AppendElement(child)
	}
	return out, nil
}
