package dekoda

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strconv"
)

// Nativer exposes a JSON-native view of a richer value. jsonv.Value
// implements it; the encode bridge re-enters the traversal through it.
type Nativer interface {
	Native() any
}

// EncodeOpt bundles encode bridge options.
type EncodeOpt struct {
	// MaxDepth caps recursion over the input graph. Cyclic or pathologically
	// deep graphs fail instead of exhausting the stack. 0 means the default.
	MaxDepth int
}

const defaultEncodeDepth = 1000

// TryEncode converts a value of the wrapper-enriched algebra (primitives,
// slices, maps, Option, Result, iterators, pointers, Nativer views) into a
// JSON-native tree of nil/bool/float64/string/[]any/map[string]any. It is
// total and fallible: the first value with no canonical JSON shape stops the
// traversal and the error names the offending path. Option None encodes to
// nil, Option Some and Result Ok encode to the inner value's encoding.
func TryEncode(v any, opts ...EncodeOpt) (any, error) {
	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	depth := opt.MaxDepth
	if depth <= 0 {
		depth = defaultEncodeDepth
	}
	return encodeNative(v, "/", depth)
}

// MustEncode is TryEncode for call sites where the type system already
// guarantees encodability: it panics instead of returning an error. Treat a
// panic here as a programmer error, not a data condition.
func MustEncode(v any, opts ...EncodeOpt) any {
	out, err := TryEncode(v, opts...)
	if err != nil {
		panic(fmt.Sprintf("dekoda: MustEncode: %v", err))
	}
	return out
}

func encodeNative(v any, path string, depth int) (any, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("max encoding depth exceeded at %s", path)
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case absentType:
		return nil, fmt.Errorf("nothing to encode at %s: value is absent", path)
	case bool, string:
		return t, nil
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(t).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(t).Uint()), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q at %s", t.String(), path)
		}
		return f, nil
	case Optional:
		inner, some := t.OptionValue()
		if !some {
			return nil, nil
		}
		return encodeNative(inner, path, depth-1)
	case Fallible:
		inner, err := t.ResultValue()
		if err != nil {
			return nil, fmt.Errorf("cannot encode error result at %s: %v", path, err)
		}
		return encodeNative(inner, path, depth-1)
	case Nativer:
		return encodeNative(t.Native(), path, depth-1)
	case iter.Seq[any]:
		out := make([]any, 0)
		i := 0
		for item := range t {
			enc, err := encodeNative(item, childPath(path, fmt.Sprintf("%d", i)), depth-1)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
			i++
		}
		return out, nil
	case error:
		return nil, fmt.Errorf("cannot encode error value at %s: %v", path, t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		// A nil pointer is the not-yet-initialized wrapper: it encodes to
		// null rather than failing.
		if rv.IsNil() {
			return nil, nil
		}
		return encodeNative(rv.Elem().Interface(), path, depth-1)
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			enc, err := encodeNative(rv.Index(i).Interface(), childPath(path, fmt.Sprintf("%d", i)), depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			keys := rv.MapKeys()
			var offending any
			if len(keys) > 0 {
				offending = keys[0].Interface()
			}
			return nil, fmt.Errorf("non-string dictionary key %v at %s", offending, path)
		}
		keys := make([]string, 0, rv.Len())
		iterKeys := rv.MapRange()
		for iterKeys.Next() {
			keys = append(keys, iterKeys.Key().String())
		}
		sort.Strings(keys)
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			enc, err := encodeNative(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface(), childPath(path, k), depth-1)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	case reflect.Func, reflect.Chan:
		return nil, fmt.Errorf("no JSON shape for %T at %s", v, path)
	default:
		return nil, fmt.Errorf("no JSON shape for %T at %s", v, path)
	}
}

func childPath(parent, seg string) string {
	if parent == "/" {
		return "/" + seg
	}
	return parent + "/" + seg
}
