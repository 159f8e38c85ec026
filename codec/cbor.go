package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/reoring/dekoda/jsonv"
)

// CBOR returns the CBOR codec, backed by fxamacker/cbor.
func CBOR() Codec { return cborCodec{} }

type cborCodec struct{}

func (cborCodec) Name() string { return "cbor" }

func (cborCodec) Marshal(v jsonv.Value) ([]byte, error) {
	return cbor.Marshal(v.Native())
}

func (cborCodec) Unmarshal(data []byte) (jsonv.Value, error) {
	// cbor decodes maps as map[any]any; FromNative insists their keys are
	// strings, which is exactly the JSON-shape contract.
	var raw any
	err := cbor.Unmarshal(data, &raw)
	return wrapUnmarshal("cbor", raw, err)
}
