package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document. Mappings become *Object with their keys
// in document order; aliases are resolved.
func DecodeYAML(data []byte) (any, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind == 0 {
		return nil, errors.New("empty YAML document")
	}

	return fromYAMLNode(&root)
}

func fromYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return fromYAMLNode(node.Content[0])

	case yaml.MappingNode:
		obj := NewObject()

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}

			val, err := fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}

			obj.Set(keyNode.Value, val)
		}

		return obj, nil

	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			val, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}

			list = append(list, val)
		}

		return list, nil

	case yaml.ScalarNode:
		var v any

		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil

	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler, emitting keys in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range o.keys {
		var key, val yaml.Node

		key.SetString(k)

		if err := val.Encode(yamlValue(o.values[k])); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		node.Content = append(node.Content, &key, &val)
	}

	return node, nil
}

// EncodeYAML encodes v as YAML with two-space indentation.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(yamlValue(v)); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// yamlValue converts json.Number into a native number so it is not emitted
// as a quoted string.
func yamlValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}

		if f, err := t.Float64(); err == nil {
			return f
		}

		return string(t)

	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = yamlValue(item)
		}

		return out

	default:
		return v
	}
}
