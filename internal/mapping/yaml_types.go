package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"record-reindexer/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// --- FieldPairs YAML methods ---

// UnmarshalYAML decodes a YAML mapping of "source: target" pairs, keeping
// the order in which the keys are written.
func (f *FieldPairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of source: target pairs, got %v", node.Line, kindName(node.Kind))
	}

	pairs := make(FieldPairs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var p FieldPair

		if err := node.Content[i].Decode(&p.Source); err != nil {
			return fmt.Errorf("line %d: invalid source field: %w", node.Content[i].Line, err)
		}

		if err := node.Content[i+1].Decode(&p.Target); err != nil {
			return fmt.Errorf("line %d: invalid target field for %q: %w", node.Content[i+1].Line, p.Source, err)
		}

		pairs = append(pairs, p)
	}

	*f = pairs

	return nil
}

// MarshalYAML encodes the pairs as a YAML mapping in their original order.
func (f FieldPairs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range f {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Source},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Target},
		)
	}

	return node, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
