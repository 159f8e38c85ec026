package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/reoring/dekoda/jsonv"
)

// Msgpack returns the MessagePack codec, backed by vmihailenco/msgpack.
func Msgpack() Codec { return msgpackCodec{} }

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v jsonv.Value) ([]byte, error) {
	return msgpack.Marshal(v.Native())
}

func (msgpackCodec) Unmarshal(data []byte) (jsonv.Value, error) {
	var raw any
	err := msgpack.Unmarshal(data, &raw)
	return wrapUnmarshal("msgpack", raw, err)
}
