package dekoda

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Nil accepts only nil.
func Nil() Decoder[any, any] {
	return func(v any) (any, *Error) {
		if v != nil {
			return nil, WrongType("nil")
		}
		return nil, nil
	}
}

// Bool accepts only bool.
func Bool() Decoder[any, bool] {
	return func(v any) (bool, *Error) {
		b, ok := v.(bool)
		if !ok {
			return false, WrongType("boolean")
		}
		return b, nil
	}
}

// Number accepts every numeric kind a runtime value can carry (float64 from
// JSON, json.Number, the Go int/uint/float families) and yields float64.
func Number() Decoder[any, float64] {
	return func(v any) (float64, *Error) {
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case json.Number:
			f, err := strconv.ParseFloat(n.String(), 64)
			if err != nil {
				return 0, WrongType("number")
			}
			return f, nil
		case int:
			return float64(n), nil
		case int8, int16, int32, int64:
			return float64(reflect.ValueOf(n).Int()), nil
		case uint, uint8, uint16, uint32, uint64:
			return float64(reflect.ValueOf(n).Uint()), nil
		default:
			return 0, WrongType("number")
		}
	}
}

// String accepts only string.
func String() Decoder[any, string] {
	return func(v any) (string, *Error) {
		s, ok := v.(string)
		if !ok {
			return "", WrongType("string")
		}
		return s, nil
	}
}

// Slice accepts []any directly and any other slice or array kind through
// reflection, yielding []any either way.
func Slice() Decoder[any, []any] {
	return func(v any) ([]any, *Error) {
		if s, ok := v.([]any); ok {
			return s, nil
		}
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, WrongType("array")
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	}
}

// StringMap accepts map[string]any directly and any other string-keyed map
// kind through reflection.
func StringMap() Decoder[any, map[string]any] {
	return func(v any) (map[string]any, *Error) {
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, WrongType("collection")
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	}
}

// Any accepts everything unchanged.
func Any() Decoder[any, any] {
	return func(v any) (any, *Error) { return v, nil }
}

// OfType asserts the input is a T, naming the expectation with label. It
// subsumes the instanceOf/typedPrimitive/withType guards of the original
// data model: in Go one generic assertion covers all three.
func OfType[T any](label string) Decoder[any, T] {
	return func(v any) (T, *Error) {
		t, ok := v.(T)
		if !ok {
			var zero T
			return zero, WrongType(label)
		}
		return t, nil
	}
}
