package alias

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping of pattern to templates, keeping the
// document order of patterns. A template list may be a single string or
// a sequence:
//
//	"@utils/*": src/utils/*
//	"@app/*":
//	  - src/app/*
//	  - generated/app/*
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: alias table must be a mapping", node.Line)
	}

	decoded := Table{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var pattern string
		if err := keyNode.Decode(&pattern); err != nil {
			return fmt.Errorf("line %d: alias pattern: %w", keyNode.Line, err)
		}

		templates, err := decodeTemplates(valueNode)
		if err != nil {
			return fmt.Errorf("line %d: templates for %q: %w", valueNode.Line, pattern, err)
		}

		if err := decoded.Add(pattern, templates...); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
	}

	*t = decoded

	return nil
}

func decodeTemplates(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return nil, err
		}

		if str == "" {
			return []string{}, nil
		}

		return []string{str}, nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return nil, err
		}

		return arr, nil

	default:
		return nil, errors.New("expected string or sequence of strings")
	}
}

// MarshalYAML encodes the table as a mapping in table order. Templates
// are always written as a sequence.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range t.entries {
		templates := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, tpl := range e.Templates {
			templates.Content = append(templates.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: tpl,
			})
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Pattern},
			templates,
		)
	}

	return node, nil
}
