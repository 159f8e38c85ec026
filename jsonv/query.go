package jsonv

import (
	"fmt"

	dekoda "github.com/reoring/dekoda"
)

// The accessor families form a consistent matrix over the six JSON kinds:
// IsX (tag check), AsX (soft, Option), GetX (soft nested access through a
// collection), ExpectX (hard nested access, panics), HasX (existence probe).
// Nested access always goes through the collection lookup first.

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsNumber reports whether the value is a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsCollection reports whether the value is a collection.
func (v Value) IsCollection() bool { return v.kind == KindCollection }

// AsNull returns Some(nil) when the value is null. The payload carries no
// information; the Option state is the answer.
func (v Value) AsNull() dekoda.Option[any] {
	if v.kind != KindNull {
		return dekoda.None[any]()
	}
	return dekoda.Some[any](nil)
}

// AsBool returns the boolean payload when the kinds match.
func (v Value) AsBool() dekoda.Option[bool] {
	if v.kind != KindBool {
		return dekoda.None[bool]()
	}
	return dekoda.Some(v.b)
}

// AsNumber returns the numeric payload when the kinds match.
func (v Value) AsNumber() dekoda.Option[float64] {
	if v.kind != KindNumber {
		return dekoda.None[float64]()
	}
	return dekoda.Some(v.num)
}

// AsString returns the string payload when the kinds match.
func (v Value) AsString() dekoda.Option[string] {
	if v.kind != KindString {
		return dekoda.None[string]()
	}
	return dekoda.Some(v.str)
}

// AsArray returns the items when the value is an array.
func (v Value) AsArray() dekoda.Option[[]Value] {
	if v.kind != KindArray {
		return dekoda.None[[]Value]()
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return dekoda.Some(out)
}

// AsCollection returns the fields when the value is a collection.
func (v Value) AsCollection() dekoda.Option[map[string]Value] {
	if v.kind != KindCollection {
		return dekoda.None[map[string]Value]()
	}
	out := make(map[string]Value, len(v.col))
	for k, item := range v.col {
		out[k] = item
	}
	return dekoda.Some(out)
}

// Get returns the named field of a collection value.
func (v Value) Get(field string) dekoda.Option[Value] {
	if v.kind != KindCollection {
		return dekoda.None[Value]()
	}
	item, ok := v.col[field]
	if !ok {
		return dekoda.None[Value]()
	}
	return dekoda.Some(item)
}

// GetNull reports presence of the named field as null.
func (v Value) GetNull(field string) dekoda.Option[any] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[any]()
	}
	return item.AsNull()
}

// GetBool returns the named field as a boolean.
func (v Value) GetBool(field string) dekoda.Option[bool] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[bool]()
	}
	return item.AsBool()
}

// GetNumber returns the named field as a number.
func (v Value) GetNumber(field string) dekoda.Option[float64] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[float64]()
	}
	return item.AsNumber()
}

// GetString returns the named field as a string.
func (v Value) GetString(field string) dekoda.Option[string] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[string]()
	}
	return item.AsString()
}

// GetArray returns the named field as an array.
func (v Value) GetArray(field string) dekoda.Option[[]Value] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[[]Value]()
	}
	return item.AsArray()
}

// GetCollection returns the named field as a collection.
func (v Value) GetCollection(field string) dekoda.Option[map[string]Value] {
	item, ok := v.Get(field).Get()
	if !ok {
		return dekoda.None[map[string]Value]()
	}
	return item.AsCollection()
}

// Expect returns the named field or panics. The Expect family is for call
// sites that assert certainty: an absence or a kind mismatch there is a
// programmer error, not a data condition, and must not be recovered.
func (v Value) Expect(field string) Value {
	item, ok := v.Get(field).Get()
	if !ok {
		panic(fmt.Sprintf("jsonv: missing field %q in %s value", field, v.kind))
	}
	return item
}

func expectKind[T any](field string, o dekoda.Option[T], kind Kind) T {
	item, ok := o.Get()
	if !ok {
		panic(fmt.Sprintf("jsonv: field %q is not a %s", field, kind))
	}
	return item
}

// ExpectNull panics unless the named field exists and is null.
func (v Value) ExpectNull(field string) {
	expectKind(field, v.Expect(field).AsNull(), KindNull)
}

// ExpectBool returns the named boolean field or panics.
func (v Value) ExpectBool(field string) bool {
	return expectKind(field, v.Expect(field).AsBool(), KindBool)
}

// ExpectNumber returns the named numeric field or panics.
func (v Value) ExpectNumber(field string) float64 {
	return expectKind(field, v.Expect(field).AsNumber(), KindNumber)
}

// ExpectString returns the named string field or panics.
func (v Value) ExpectString(field string) string {
	return expectKind(field, v.Expect(field).AsString(), KindString)
}

// ExpectArray returns the named array field or panics.
func (v Value) ExpectArray(field string) []Value {
	return expectKind(field, v.Expect(field).AsArray(), KindArray)
}

// ExpectCollection returns the named collection field or panics.
func (v Value) ExpectCollection(field string) map[string]Value {
	return expectKind(field, v.Expect(field).AsCollection(), KindCollection)
}

// Has reports whether the named field exists.
func (v Value) Has(field string) bool { return v.Get(field).IsSome() }

// HasNull reports whether the named field exists and is null.
func (v Value) HasNull(field string) bool { return v.GetNull(field).IsSome() }

// HasBool reports whether the named field exists and is a boolean.
func (v Value) HasBool(field string) bool { return v.GetBool(field).IsSome() }

// HasNumber reports whether the named field exists and is a number.
func (v Value) HasNumber(field string) bool { return v.GetNumber(field).IsSome() }

// HasString reports whether the named field exists and is a string.
func (v Value) HasString(field string) bool { return v.GetString(field).IsSome() }

// HasArray reports whether the named field exists and is an array.
func (v Value) HasArray(field string) bool { return v.GetArray(field).IsSome() }

// HasCollection reports whether the named field exists and is a collection.
func (v Value) HasCollection(field string) bool { return v.GetCollection(field).IsSome() }
