package jsonv

import (
	gojson "github.com/goccy/go-json"
)

// Parse builds a Value tree from JSON text. A syntax failure surfaces as the
// parser's own error, deliberately not a *dekoda.Error: a parse failure is
// not a shape mismatch.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return FromNative(raw)
}

// ParseString is Parse over a string.
func ParseString(text string) (Value, error) { return Parse([]byte(text)) }

// Stringify serializes the recovered native tree through the standard JSON
// text format. An empty indent produces compact output.
func (v Value) Stringify(indent string) (string, error) {
	if indent == "" {
		b, err := gojson.Marshal(v.Native())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := gojson.MarshalIndent(v.Native(), "", indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
