package runtime

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Normalize converts a native Go value into the value model used by the
// interpreter: every number becomes float64, slices become []any and
// string-keyed maps become *Object. Go maps have no order, so their keys are
// sorted. *Object inputs are copied with their order intact. Values outside
// the model are returned unchanged.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil, bool, string, float64, UndefinedType, CallableFunc:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return f
	case *Object:
		if val == nil {
			return nil
		}
		out := &Object{Fields: make(map[string]any, len(val.Keys))}
		for _, k := range val.Keys {
			out.Set(k, Normalize(val.Fields[k]))
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = Normalize(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := &Object{Fields: make(map[string]any, rv.Len())}
		for _, k := range SortedMapKeys(rv) {
			out.Set(k.String(), Normalize(rv.MapIndex(k).Interface()))
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return v
}

// SortedMapKeys returns the keys of a string-keyed map in ascending order.
func SortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return keys
}
