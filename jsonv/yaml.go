package jsonv

import (
	"gopkg.in/yaml.v3"
)

// ParseYAML builds a Value tree from a YAML document. Mapping keys must be
// strings; everything else follows the same conversion rules as Parse. Like
// Parse, a syntax failure is the parser's own error.
func ParseYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return FromNative(raw)
}
