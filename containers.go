package dekoda

import (
	"fmt"
	"sort"
)

// ArrayOf decodes a []any element-wise, failing fast at the first offending
// index.
func ArrayOf[T any](d Decoder[any, T]) Decoder[any, []T] {
	return func(v any) ([]T, *Error) {
		items, ok := v.([]any)
		if !ok {
			return nil, WrongType("array")
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			t, err := d(item)
			if err != nil {
				return nil, ArrayItem(i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// ListOf decodes any slice or array kind element-wise, failing fast at the
// first offending index. It differs from ArrayOf in accepting every sequence
// kind through reflection and in tagging failures as list items.
func ListOf[T any](d Decoder[any, T]) Decoder[any, []T] {
	return func(v any) ([]T, *Error) {
		items, werr := Slice()(v)
		if werr != nil {
			return nil, WrongType("list")
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			t, err := d(item)
			if err != nil {
				return nil, ListItem(i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// DictOf decodes a string-keyed map value-wise. Keys are visited in sorted
// order so the first failure is deterministic. A key that is not a string
// fails as a DictionaryKey error; a value failure is tagged with its key.
func DictOf[T any](d Decoder[any, T]) Decoder[any, map[string]T] {
	return func(v any) (map[string]T, *Error) {
		entries, err := dictionaryEntries(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]T, len(entries))
		for _, e := range entries {
			t, derr := d(e.val)
			if derr != nil {
				return nil, DictionaryValue(e.key, derr)
			}
			out[e.key] = t
		}
		return out, nil
	}
}

// RecordOf decodes a string-keyed map value-wise like DictOf, but tags value
// failures as collection items. The recordOf/collectionOf pair of the
// original data model collapses into this single decoder.
func RecordOf[T any](d Decoder[any, T]) Decoder[any, map[string]T] {
	return func(v any) (map[string]T, *Error) {
		entries, err := dictionaryEntries(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]T, len(entries))
		for _, e := range entries {
			t, derr := d(e.val)
			if derr != nil {
				return nil, CollectionItem(e.key, derr)
			}
			out[e.key] = t
		}
		return out, nil
	}
}

type dictEntry struct {
	key string
	val any
}

// dictionaryEntries normalizes map inputs to sorted key/value pairs. It
// accepts map[string]any and map[any]any (the yaml shape); a non-string key
// in the latter fails as a DictionaryKey error.
func dictionaryEntries(v any) ([]dictEntry, *Error) {
	switch m := v.(type) {
	case map[string]any:
		entries := make([]dictEntry, 0, len(m))
		for k, item := range m {
			entries = append(entries, dictEntry{key: k, val: item})
		}
		sortEntries(entries)
		return entries, nil
	case map[any]any:
		entries := make([]dictEntry, 0, len(m))
		for k, item := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, DictionaryKey(fmt.Sprintf("%v", k), WrongType("string"))
			}
			entries = append(entries, dictEntry{key: ks, val: item})
		}
		sortEntries(entries)
		return entries, nil
	default:
		return nil, WrongType("dictionary")
	}
}

func sortEntries(entries []dictEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
}

// Tuple decodes a sequence positionally. A sequence shorter than the tuple
// fails with the required count; a positional failure is tagged with its
// 0-based index (rendered 1-based).
func Tuple(decoders ...Decoder[any, any]) Decoder[any, []any] {
	return func(v any) ([]any, *Error) {
		items, ok := v.([]any)
		if !ok {
			return nil, WrongType("tuple")
		}
		if len(items) < len(decoders) {
			return nil, MissingTupleEntry(len(decoders))
		}
		out := make([]any, 0, len(decoders))
		for i, d := range decoders {
			t, err := d(items[i])
			if err != nil {
				return nil, ArrayItem(i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// FieldDecoder pairs a field name with the decoder for its value. Built by
// Field and OptField, consumed by Struct.
type FieldDecoder struct {
	name string
	dec  Decoder[any, any]
	opt  bool
}

// Field declares a required struct field.
func Field(name string, d Decoder[any, any]) FieldDecoder {
	return FieldDecoder{name: name, dec: d}
}

// OptField declares an optional struct field: when the key is missing its
// decoder receives Absent instead of failing, pairing with Maybe and
// Undefinable.
func OptField(name string, d Decoder[any, any]) FieldDecoder {
	return FieldDecoder{name: name, dec: d, opt: true}
}

// Struct decodes a struct-shaped collection. Presence is checked first, in
// declaration order: a missing required field fails immediately and no field
// value is decoded at all. Present fields are then decoded independently,
// also in declaration order, and a failure is tagged with its field name.
func Struct(fields ...FieldDecoder) Decoder[any, map[string]any] {
	return func(v any) (map[string]any, *Error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, WrongType("collection")
		}
		for _, f := range fields {
			if _, present := m[f.name]; !present && !f.opt {
				return nil, MissingCollectionField(f.name)
			}
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			raw, present := m[f.name]
			if !present {
				raw = Absent
			}
			t, err := f.dec(raw)
			if err != nil {
				return nil, CollectionItem(f.name, err)
			}
			out[f.name] = t
		}
		return out, nil
	}
}
