package json

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo is the decoded "json" tag for one encodable struct field,
// paired with the field's index so callers reach it via rv.Field(index)
// without re-walking the tag string on every Marshal/Unmarshal call.
type fieldInfo struct {
	index     int
	name      string
	omitEmpty bool
	asString  bool
}

// fieldCache memoizes cachedFields per struct type, mirroring
// encoding/json's own typeFields cache: struct tag parsing is pure
// reflect.Type introspection, so it only needs to happen once per type
// rather than once per encoded value.
var fieldCache sync.Map // reflect.Type -> []fieldInfo

// cachedFields returns the encodable fields of structType in declaration
// order, skipping unexported fields and fields tagged "-".
func cachedFields(structType reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(structType); ok {
		return cached.([]fieldInfo)
	}

	fields := make([]fieldInfo, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}

		info := fieldInfo{index: i, name: name}
		for _, opt := range strings.Split(opts, ",") {
			switch strings.TrimSpace(opt) {
			case "omitempty":
				info.omitEmpty = true
			case "string":
				info.asString = true
			}
		}
		fields = append(fields, info)
	}

	fieldCache.Store(structType, fields)
	return fields
}

// isEmptyValue reports whether v is empty according to omitempty rules.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
