// Package codec packages Value trees behind symmetric wire codecs, so a
// decoded document can travel as JSON, CBOR or MessagePack bytes and come
// back as the same tree.
package codec

import (
	"fmt"

	"github.com/reoring/dekoda/jsonv"
)

// Codec marshals a Value tree to bytes and back. Implementations round-trip
// through the JSON-native tree, so every codec preserves the same value
// invariants.
type Codec interface {
	Name() string
	Marshal(v jsonv.Value) ([]byte, error)
	Unmarshal(data []byte) (jsonv.Value, error)
}

// ByName resolves a codec by its wire name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON(), true
	case "cbor":
		return CBOR(), true
	case "msgpack":
		return Msgpack(), true
	default:
		return nil, false
	}
}

func wrapUnmarshal(name string, raw any, err error) (jsonv.Value, error) {
	if err != nil {
		return jsonv.Value{}, fmt.Errorf("codec/%s: %w", name, err)
	}
	v, err := jsonv.FromNative(raw)
	if err != nil {
		return jsonv.Value{}, fmt.Errorf("codec/%s: %w", name, err)
	}
	return v, nil
}
