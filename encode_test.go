package dekoda_test

import (
	"errors"
	"iter"
	"strings"
	"testing"

	dekoda "github.com/reoring/dekoda"
)

func TestTryEncode_WrapperAlgebra(t *testing.T) {
	t.Run("Some encodes to the inner value", func(t *testing.T) {
		v, err := dekoda.TryEncode(dekoda.Some(5))
		if err != nil || v != 5.0 {
			t.Fatalf("got %v, %v", v, err)
		}
	})
	t.Run("None encodes to null", func(t *testing.T) {
		v, err := dekoda.TryEncode(dekoda.None[int]())
		if err != nil || v != nil {
			t.Fatalf("got %v, %v", v, err)
		}
	})
	t.Run("Ok encodes to the inner value", func(t *testing.T) {
		v, err := dekoda.TryEncode(dekoda.Ok("fine"))
		if err != nil || v != "fine" {
			t.Fatalf("got %v, %v", v, err)
		}
	})
	t.Run("Err has no canonical shape", func(t *testing.T) {
		if _, err := dekoda.TryEncode(dekoda.Err[int](errors.New("x"))); err == nil {
			t.Fatalf("expected an encode failure for an error result")
		}
	})
	t.Run("Absent has no canonical shape", func(t *testing.T) {
		if _, err := dekoda.TryEncode(dekoda.Absent); err == nil {
			t.Fatalf("expected an encode failure for the absent sentinel")
		}
	})
	t.Run("nil pointer is the uninitialized wrapper", func(t *testing.T) {
		var p *string
		v, err := dekoda.TryEncode(p)
		if err != nil || v != nil {
			t.Fatalf("got %v, %v", v, err)
		}
		s := "x"
		v, err = dekoda.TryEncode(&s)
		if err != nil || v != "x" {
			t.Fatalf("got %v, %v", v, err)
		}
	})
}

func TestTryEncode_Primitives(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{true, true},
		{"s", "s"},
		{1.5, 1.5},
		{int(7), 7.0},
		{int64(8), 8.0},
		{uint8(9), 9.0},
	}
	for _, tc := range cases {
		v, err := dekoda.TryEncode(tc.in)
		if err != nil || v != tc.want {
			t.Fatalf("TryEncode(%v): got %v, %v", tc.in, v, err)
		}
	}
}

func TestTryEncode_ContainersRecurseUniformly(t *testing.T) {
	in := map[string]any{
		"tags": []any{"a", dekoda.Some("b")},
		"n":    dekoda.None[int](),
	}
	v, err := dekoda.TryEncode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if m["n"] != nil {
		t.Fatalf("None inside a map must encode to null, got %v", m["n"])
	}
	tags := m["tags"].([]any)
	if tags[0] != "a" || tags[1] != "b" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestTryEncode_FailureNamesTheOffendingPath(t *testing.T) {
	in := map[string]any{"outer": []any{map[string]any{"bad": dekoda.Absent}}}
	_, err := dekoda.TryEncode(in)
	if err == nil || !strings.Contains(err.Error(), "/outer/0/bad") {
		t.Fatalf("expected the path in the message, got %v", err)
	}
}

func TestTryEncode_NonStringKeysAreRejected(t *testing.T) {
	_, err := dekoda.TryEncode(map[int]string{1: "x"})
	if err == nil || !strings.Contains(err.Error(), "non-string dictionary key") {
		t.Fatalf("expected a non-string key failure, got %v", err)
	}
}

func TestTryEncode_FunctionsHaveNoShape(t *testing.T) {
	if _, err := dekoda.TryEncode(func() {}); err == nil {
		t.Fatalf("expected an encode failure for a function")
	}
}

func TestTryEncode_IteratorsCollectAsArrays(t *testing.T) {
	seq := iter.Seq[any](func(yield func(any) bool) {
		for _, v := range []any{1.0, 2.0} {
			if !yield(v) {
				return
			}
		}
	})
	v, err := dekoda.TryEncode(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := v.([]any)
	if len(arr) != 2 || arr[1] != 2.0 {
		t.Fatalf("unexpected array: %v", arr)
	}
}

func TestTryEncode_DepthGuardStopsRunawayGraphs(t *testing.T) {
	deep := any("leaf")
	for i := 0; i < 40; i++ {
		deep = []any{deep}
	}
	if _, err := dekoda.TryEncode(deep, dekoda.EncodeOpt{MaxDepth: 10}); err == nil {
		t.Fatalf("expected the depth guard to fire")
	}
	if _, err := dekoda.TryEncode(deep); err != nil {
		t.Fatalf("default depth must accommodate reasonable nesting: %v", err)
	}
}

func TestMustEncode_PanicsOnUnencodableInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	_ = dekoda.MustEncode(dekoda.Absent)
}

// Decoding then re-encoding a value with a defined encoding must yield a
// decode-equal value.
func TestEncode_RoundTripThroughDecoder(t *testing.T) {
	d := dekoda.Struct(
		dekoda.Field("id", dekoda.Untyped(dekoda.Number())),
		dekoda.Field("tags", dekoda.Untyped(dekoda.ArrayOf(dekoda.String()))),
	)
	in := map[string]any{"id": 4.0, "tags": []any{"a", "b"}}
	first, derr := d(in)
	if derr != nil {
		t.Fatalf("decode failed: %v", derr)
	}
	native, err := dekoda.TryEncode(first)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	second, derr := d(native)
	if derr != nil {
		t.Fatalf("re-decode failed: %v", derr)
	}
	if second["id"] != first["id"] {
		t.Fatalf("round trip changed id: %v vs %v", second["id"], first["id"])
	}
	a := first["tags"].([]string)
	b := second["tags"].([]string)
	if len(a) != len(b) || a[0] != b[0] || a[1] != b[1] {
		t.Fatalf("round trip changed tags: %v vs %v", a, b)
	}
}
