package openapi

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSON returns the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}
	return data, nil
}

// YAML returns the document as YAML with the same keys and key order as
// the JSON output.
func (d *Document) YAML() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode openapi yaml: %w", err)
	}

	// JSON is valid YAML; decoding it into a node keeps the json tag names
	// and field order, which marshalling the structs directly would not.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("encode openapi yaml: %w", err)
	}
	resetStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("encode openapi yaml: %w", err)
	}
	return out, nil
}

// resetStyle clears the flow and quoting styles inherited from the JSON
// source so the output uses block YAML.
func resetStyle(node *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		node.Style = 0
	case yaml.ScalarNode:
		if node.Tag == "!!str" {
			node.Style = 0
		}
	}
	for _, child := range node.Content {
		resetStyle(child)
	}
}
