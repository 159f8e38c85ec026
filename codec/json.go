package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/reoring/dekoda/jsonv"
)

// JSON returns the JSON codec, backed by goccy/go-json.
func JSON() Codec { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v jsonv.Value) ([]byte, error) {
	return gojson.Marshal(v.Native())
}

func (jsonCodec) Unmarshal(data []byte) (jsonv.Value, error) {
	var raw any
	err := gojson.Unmarshal(data, &raw)
	return wrapUnmarshal("json", raw, err)
}
