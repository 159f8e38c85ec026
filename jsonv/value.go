// Package jsonv carries the immutable tagged representation of parsed JSON
// together with its query API and the JSON-specific decoder namespace.
package jsonv

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Kind is the variant of a Value, fixed at construction. The payload is
// never re-inspected to derive it.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindCollection
)

// String names the kind the way decoder expectations name it.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindCollection:
		return "collection"
	default:
		return "invalid"
	}
}

// Value wraps one JSON payload. Children are themselves Value at every
// depth; no raw natives are mixed in. A Value is immutable after
// construction and the zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	col  map[string]Value
}

// NewNull returns the null Value.
func NewNull() Value { return Value{} }

// NewBool wraps a boolean.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewNumber wraps a number.
func NewNumber(n float64) Value { return Value{kind: KindNumber, num: n} }

// NewString wraps a string.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray wraps the given items.
func NewArray(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// NewCollection wraps the given fields.
func NewCollection(fields map[string]Value) Value {
	col := make(map[string]Value, len(fields))
	for k, v := range fields {
		col[k] = v
	}
	return Value{kind: KindCollection, col: col}
}

// FromNative builds a Value tree from a native-like tree: nil, bool, string,
// any numeric kind, json.Number, []any, []Value, string-keyed maps
// (map[string]any and the yaml-shaped map[any]any) and Value itself.
func FromNative(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return t, nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case float64:
		return NewNumber(t), nil
	case float32:
		return NewNumber(float64(t)), nil
	case int:
		return NewNumber(float64(t)), nil
	case int8, int16, int32, int64:
		return NewNumber(float64(reflect.ValueOf(t).Int())), nil
	case uint, uint8, uint16, uint32, uint64:
		return NewNumber(float64(reflect.ValueOf(t).Uint())), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return Value{}, fmt.Errorf("jsonv: malformed number %q", t.String())
		}
		return NewNumber(f), nil
	case []Value:
		return NewArray(t...), nil
	case []any:
		arr := make([]Value, len(t))
		for i, item := range t {
			cv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			arr[i] = cv
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]Value:
		return NewCollection(t), nil
	case map[string]any:
		col := make(map[string]Value, len(t))
		for k, item := range t {
			cv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			col[k] = cv
		}
		return Value{kind: KindCollection, col: col}, nil
	case map[any]any:
		col := make(map[string]Value, len(t))
		for k, item := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("jsonv: non-string collection key %v", k)
			}
			cv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			col[ks] = cv
		}
		return Value{kind: KindCollection, col: col}, nil
	default:
		return Value{}, fmt.Errorf("jsonv: no JSON shape for %T", v)
	}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// Native recovers the JSON-native tree: nil, bool, float64, string, []any or
// map[string]any.
func (v Value) Native() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Native()
		}
		return out
	case KindCollection:
		m := make(map[string]any, len(v.col))
		for k, item := range v.col {
			m[k] = item.Native()
		}
		return m
	default:
		return nil
	}
}

// Equal reports deep equality of two value trees.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindCollection:
		if len(v.col) != len(o.col) {
			return false
		}
		for k, item := range v.col {
			other, ok := o.col[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Fields returns the sorted field names of a collection, nil otherwise.
func (v Value) Fields() []string {
	if v.kind != KindCollection {
		return nil
	}
	keys := make([]string, 0, len(v.col))
	for k := range v.col {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
