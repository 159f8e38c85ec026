package dekoda

// Option is a minimal optional wrapper consumed by the optionality
// combinators and recognized by the encode bridge. The zero value is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{val: v, some: true} }

// None is the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.val, o.some }

// OrElse returns the value when present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.val
	}
	return def
}

// OptionValue is the non-generic view used by the encode bridge to recognize
// any Option instantiation through the Optional interface.
func (o Option[T]) OptionValue() (any, bool) { return o.val, o.some }

// Optional is satisfied by every Option[T].
type Optional interface {
	OptionValue() (any, bool)
}

// Result carries either a value or an error. Decoders do not use it (they
// return (T, *Error) directly); it exists for callers whose value graphs
// carry fallible entries into the encode bridge.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{val: v} }

// Err wraps a failure.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Get returns the value and the error; exactly one of them is meaningful.
func (r Result[T]) Get() (T, error) { return r.val, r.err }

// ResultValue is the non-generic view used by the encode bridge to recognize
// any Result instantiation through the Fallible interface.
func (r Result[T]) ResultValue() (any, error) { return r.val, r.err }

// Fallible is satisfied by every Result[T].
type Fallible interface {
	ResultValue() (any, error)
}

type absentType struct{}

// Absent stands in for a missing value: OptField feeds it to optional field
// decoders, Maybe and Undefinable translate it to None, and the encode
// bridge rejects it. It plays the role the source data model gives to
// undefined.
var Absent absentType

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentType)
	return ok
}
