package internal

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

func UnmarshalYAML[T any](b []byte) (T, error) {
	var t T
	err := yaml.Unmarshal(b, &t)
	return t, err
}

// MarshalYAMLPreserveKeysOrder marshals structs through their JSON form, so
// the keys follow the json tags in declaration order instead of the
// lowercased field names yaml.Marshal would pick.
func MarshalYAMLPreserveKeysOrder(v any) ([]byte, error) {
	if b, ok := v.([]byte); ok {
		return b, nil
	}
	if !HasStruct(v) {
		return yaml.Marshal(v)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	// JSON is valid YAML, and a yaml.Node keeps the mapping order.
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)

	return yaml.Marshal(&node)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
