package dekoda

// Package dekoda provides:
//
// - Composable typed decoding via Decoder[F, T] (primitives, Map/Then,
//   Either/Combine, Tuple/Struct, element-wise containers)
// - A structured error model via *Error (an immutable failure tree with a
//   lazy, tab-indented line renderer)
// - Option/Result wrapper types consumed by the optionality combinators and
//   the encode bridge
// - An encode bridge (TryEncode/MustEncode) from the wrapper-enriched value
//   algebra down to JSON-native trees
//
// Design policy:
// - Keep only public APIs in the root package; JSON-specific decoding lives
//   under jsonv/, wire codecs under codec/, and the CLI under cmd/dekoda.
// - Decoders are pure value functions: no panics, no I/O, nothing mutated
//   after construction, safe for concurrent reuse.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := dekoda.Struct(
//	        dekoda.Field("id", dekoda.Untyped(dekoda.Number())),
//	        dekoda.Field("name", dekoda.Untyped(dekoda.String())),
//	)
//	v, derr := d(raw)
//	if derr != nil {
//	        fmt.Println(derr.Render())
//	}
