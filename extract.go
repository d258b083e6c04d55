package tabular

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Fielder lets a record type answer field lookups directly, bypassing
// reflection. It is consulted before any other access path.
type Fielder interface {
	Field(key string) (value any, ok bool)
}

// extract pulls the value named by key out of record. Dotted keys resolve
// segment by segment, each through the same fallback chain: Fielder, then
// struct field or zero-argument method, then map key, then slice index.
// A segment no path can satisfy fails wrapping [ErrMissingField].
func extract(record any, key string) (any, error) {
	value := record
	for _, segment := range strings.Split(key, ".") {
		next, ok := extractOne(value, segment)
		if !ok {
			return nil, fmt.Errorf("%w: %q in record %T", ErrMissingField, key, record)
		}
		value = next
	}
	return value, nil
}

func extractOne(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if f, ok := v.(Fielder); ok {
		if value, ok := f.Field(key); ok {
			return value, true
		}
	}

	rv := reflect.ValueOf(v)
	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return nil, false
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		if value, ok := structField(elem, key); ok {
			return value, true
		}
	case reflect.Map:
		if value, ok := mapKey(elem, key); ok {
			return value, true
		}
	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(key)
		if err == nil && index >= 0 && index < elem.Len() {
			return elem.Index(index).Interface(), true
		}
	}

	// Last resort: a niladic method, so computed values work too.
	return methodValue(rv, key)
}

// structField finds an exported field by exact name, falling back to a
// case-insensitive match so lowercase source keys reach Go field names.
func structField(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	if f, ok := rt.FieldByName(key); ok && f.PkgPath == "" {
		return rv.FieldByIndex(f.Index).Interface(), true
	}
	for i := range rt.NumField() {
		f := rt.Field(i)
		if f.PkgPath == "" && strings.EqualFold(f.Name, key) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// methodValue calls a niladic single-result method named key, matching
// case-insensitively. Error-returning and multi-result methods are skipped.
func methodValue(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	for i := range rt.NumMethod() {
		m := rt.Method(i)
		if !strings.EqualFold(m.Name, key) {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		return rv.Method(i).Call(nil)[0].Interface(), true
	}
	return nil, false
}

func mapKey(rv reflect.Value, key string) (any, bool) {
	kt := rv.Type().Key()
	var mk reflect.Value
	switch {
	case kt.Kind() == reflect.String:
		mk = reflect.ValueOf(key).Convert(kt)
	case kt.Kind() >= reflect.Int && kt.Kind() <= reflect.Int64:
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, false
		}
		mk = reflect.ValueOf(n).Convert(kt)
	default:
		return nil, false
	}
	value := rv.MapIndex(mk)
	if !value.IsValid() {
		return nil, false
	}
	return value.Interface(), true
}
