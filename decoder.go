package dekoda

import (
	"fmt"
	"sort"
)

// Decoder is a pure, total function from an input of type F to a typed value
// or a structured failure. It never panics; the only failure channel is the
// returned *Error. Combinators build bigger decoders out of smaller ones and
// do not inspect the input themselves unless they are primitives.
type Decoder[F, T any] func(v F) (T, *Error)

// Map transforms the success value of d; failures pass through untouched.
func Map[F, A, B any](d Decoder[F, A], f func(A) B) Decoder[F, B] {
	return func(v F) (B, *Error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Then chains next onto the success value of d, so next decodes what d
// produced. Failures of either decoder pass through untouched.
func Then[F, A, B any](d Decoder[F, A], next Decoder[A, B]) Decoder[F, B] {
	return func(v F) (B, *Error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return next(a)
	}
}

// Widen adapts a decoder over any to a concrete input type. jsonv uses it to
// reuse the root combinators against Value scalars.
func Widen[F any, T any](d Decoder[any, T]) Decoder[F, T] {
	return func(v F) (T, *Error) { return d(any(v)) }
}

// Untyped erases the success type so heterogeneous decoders can share a
// Tuple, Struct or Combine declaration.
func Untyped[F, T any](d Decoder[F, T]) Decoder[F, any] {
	return func(v F) (any, *Error) {
		t, err := d(v)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// Maybe decodes an absent-or-present value into an Option: Absent is a
// success (None), anything else is delegated and wrapped in Some. nil is
// deliberately delegated, unlike Undefinable.
func Maybe[T any](d Decoder[any, T]) Decoder[any, Option[T]] {
	return func(v any) (Option[T], *Error) {
		if IsAbsent(v) {
			return None[T](), nil
		}
		t, err := d(v)
		if err != nil {
			return None[T](), err
		}
		return Some(t), nil
	}
}

// Nullable special-cases nil only: nil passes through as a nil *T, anything
// else is delegated. Absent is delegated too and will fail unless the inner
// decoder accepts it.
func Nullable[T any](d Decoder[any, T]) Decoder[any, *T] {
	return func(v any) (*T, *Error) {
		if v == nil {
			return nil, nil
		}
		t, err := d(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// Undefinable treats both nil and Absent as an omitted optional field,
// anything else is delegated and wrapped in Some.
func Undefinable[T any](d Decoder[any, T]) Decoder[any, Option[T]] {
	return func(v any) (Option[T], *Error) {
		if v == nil || IsAbsent(v) {
			return None[T](), nil
		}
		t, err := d(v)
		if err != nil {
			return None[T](), err
		}
		return Some(t), nil
	}
}

// OneOf accepts only members of the candidate set. The failure lists every
// candidate, stringified, for diagnostics.
func OneOf[T comparable](candidates ...T) Decoder[any, T] {
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = fmt.Sprintf("%v", c)
	}
	return func(v any) (T, *Error) {
		t, ok := v.(T)
		if ok {
			for _, c := range candidates {
				if t == c {
					return t, nil
				}
			}
		}
		var zero T
		return zero, NoneOfCases(labels)
	}
}

// Cases decodes a string and substitutes the value registered under it. The
// failure lists the known keys in sorted order, map iteration being
// unordered.
func Cases[T any](mapping map[string]T) Decoder[any, T] {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(v any) (T, *Error) {
		var zero T
		s, err := String()(v)
		if err != nil {
			return zero, err
		}
		t, ok := mapping[s]
		if !ok {
			return zero, NoneOfCases(keys)
		}
		return t, nil
	}
}

// Enum decodes a string, validates it against the declared labels and
// constructs the enum-like value from it.
func Enum[T ~string](name string, labels ...string) Decoder[any, T] {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return func(v any) (T, *Error) {
		var zero T
		s, err := String()(v)
		if err != nil {
			return zero, err
		}
		for _, l := range ls {
			if s == l {
				return T(s), nil
			}
		}
		return zero, NoneOfEnumStates(name, ls)
	}
}

// Either tries each decoder in declaration order against the same input and
// returns the first success. On total failure every decoder has been run and
// the NoneOfEither failure carries all child errors in order, so the
// renderer can show each alternative.
func Either[F, T any](decoders ...Decoder[F, T]) Decoder[F, T] {
	return func(v F) (T, *Error) {
		errs := make([]*Error, 0, len(decoders))
		for _, d := range decoders {
			t, err := d(v)
			if err == nil {
				return t, nil
			}
			errs = append(errs, err)
		}
		var zero T
		return zero, NoneOfEither(errs)
	}
}

// Combine runs every decoder against the same input, in order, and
// short-circuits at the first failure: the failing decoder's 0-based index
// is recorded and the remaining decoders are never invoked. On full success
// merge receives all values in declaration order.
func Combine[F, T any](merge func(values []any) T, decoders ...Decoder[F, any]) Decoder[F, T] {
	return func(v F) (T, *Error) {
		values := make([]any, 0, len(decoders))
		for i, d := range decoders {
			out, err := d(v)
			if err != nil {
				var zero T
				return zero, FailedCombining(i, err)
			}
			values = append(values, out)
		}
		return merge(values), nil
	}
}
