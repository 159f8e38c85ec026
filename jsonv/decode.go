package jsonv

import (
	dekoda "github.com/reoring/dekoda"
)

// The decoders below mirror the root combinator algebra with F = Value.
// Generic Map/Then/Either/Combine need no mirror: they are generic over the
// input type and apply to Value decoders unchanged.

// Decode runs a Value decoder. It is the typed entry point; the Value method
// of the same name serves untyped call sites.
func Decode[T any](v Value, d dekoda.Decoder[Value, T]) (T, *dekoda.Error) {
	return d(v)
}

// Decode runs an untyped decoder against the value.
func (v Value) Decode(d dekoda.Decoder[Value, any]) (any, *dekoda.Error) { return d(v) }

// Null accepts only the null value.
func Null() dekoda.Decoder[Value, any] {
	return func(v Value) (any, *dekoda.Error) {
		if !v.IsNull() {
			return nil, dekoda.WrongType("null")
		}
		return nil, nil
	}
}

// Bool accepts only booleans.
func Bool() dekoda.Decoder[Value, bool] {
	return func(v Value) (bool, *dekoda.Error) {
		b, ok := v.AsBool().Get()
		if !ok {
			return false, dekoda.WrongType("boolean")
		}
		return b, nil
	}
}

// Number accepts only numbers.
func Number() dekoda.Decoder[Value, float64] {
	return func(v Value) (float64, *dekoda.Error) {
		n, ok := v.AsNumber().Get()
		if !ok {
			return 0, dekoda.WrongType("number")
		}
		return n, nil
	}
}

// String accepts only strings.
func String() dekoda.Decoder[Value, string] {
	return func(v Value) (string, *dekoda.Error) {
		s, ok := v.AsString().Get()
		if !ok {
			return "", dekoda.WrongType("string")
		}
		return s, nil
	}
}

// Raw accepts any value unchanged.
func Raw() dekoda.Decoder[Value, Value] {
	return func(v Value) (Value, *dekoda.Error) { return v, nil }
}

// Nullable passes null through as a nil *T and delegates everything else.
func Nullable[T any](d dekoda.Decoder[Value, T]) dekoda.Decoder[Value, *T] {
	return func(v Value) (*T, *dekoda.Error) {
		if v.IsNull() {
			return nil, nil
		}
		t, err := d(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// ArrayOf decodes an array element-wise, failing fast at the first
// offending index.
func ArrayOf[T any](d dekoda.Decoder[Value, T]) dekoda.Decoder[Value, []T] {
	return func(v Value) ([]T, *dekoda.Error) {
		items, ok := v.AsArray().Get()
		if !ok {
			return nil, dekoda.WrongType("array")
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			t, err := d(item)
			if err != nil {
				return nil, dekoda.ArrayItem(i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// DictOf decodes a collection value-wise. Keys are visited in sorted order
// so the first failure is deterministic.
func DictOf[T any](d dekoda.Decoder[Value, T]) dekoda.Decoder[Value, map[string]T] {
	return func(v Value) (map[string]T, *dekoda.Error) {
		if !v.IsCollection() {
			return nil, dekoda.WrongType("dictionary")
		}
		out := make(map[string]T, len(v.col))
		for _, k := range v.Fields() {
			t, err := d(v.col[k])
			if err != nil {
				return nil, dekoda.DictionaryValue(k, err)
			}
			out[k] = t
		}
		return out, nil
	}
}

// Tuple decodes an array positionally; a short array fails with the
// required count and a positional failure carries its 0-based index.
func Tuple(decoders ...dekoda.Decoder[Value, any]) dekoda.Decoder[Value, []any] {
	return func(v Value) ([]any, *dekoda.Error) {
		items, ok := v.AsArray().Get()
		if !ok {
			return nil, dekoda.WrongType("tuple")
		}
		if len(items) < len(decoders) {
			return nil, dekoda.MissingTupleEntry(len(decoders))
		}
		out := make([]any, 0, len(decoders))
		for i, d := range decoders {
			t, err := d(items[i])
			if err != nil {
				return nil, dekoda.ArrayItem(i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// FieldDecoder pairs a field name with the decoder for its Value. Built by
// Field and OptField, consumed by Struct.
type FieldDecoder struct {
	name string
	dec  dekoda.Decoder[Value, any]
	opt  bool
}

// Field declares a required struct field.
func Field(name string, d dekoda.Decoder[Value, any]) FieldDecoder {
	return FieldDecoder{name: name, dec: d}
}

// OptField declares an optional struct field: a missing key decodes against
// the null value instead of failing.
func OptField(name string, d dekoda.Decoder[Value, any]) FieldDecoder {
	return FieldDecoder{name: name, dec: d, opt: true}
}

// Struct decodes a collection field-wise. Presence is checked first in
// declaration order, so a missing required field fails before any value is
// decoded; value failures are tagged with their field name.
func Struct(fields ...FieldDecoder) dekoda.Decoder[Value, map[string]any] {
	return func(v Value) (map[string]any, *dekoda.Error) {
		if !v.IsCollection() {
			return nil, dekoda.WrongType("collection")
		}
		for _, f := range fields {
			if !v.Has(f.name) && !f.opt {
				return nil, dekoda.MissingCollectionField(f.name)
			}
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			item, present := v.Get(f.name).Get()
			if !present {
				item = NewNull()
			}
			t, err := f.dec(item)
			if err != nil {
				return nil, dekoda.CollectionItem(f.name, err)
			}
			out[f.name] = t
		}
		return out, nil
	}
}

// OneOf accepts a scalar whose native payload is a member of the candidate
// set.
func OneOf[T comparable](candidates ...T) dekoda.Decoder[Value, T] {
	inner := dekoda.OneOf(candidates...)
	return func(v Value) (T, *dekoda.Error) { return inner(v.Native()) }
}

// Cases decodes a string and substitutes the value registered under it.
func Cases[T any](mapping map[string]T) dekoda.Decoder[Value, T] {
	return dekoda.Then(String(), dekoda.Widen[string](dekoda.Cases(mapping)))
}

// Enum decodes a string, validates it against the declared labels and
// constructs the enum-like value.
func Enum[T ~string](name string, labels ...string) dekoda.Decoder[Value, T] {
	return dekoda.Then(String(), dekoda.Widen[string](dekoda.Enum[T](name, labels...)))
}
