package declaration

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"themekit/internal/domain"
)

// Encode renders a declaration as YAML in the shape Parse reads, keeping
// declaration order. Steps of a scale are grouped where the scale first
// appears.
func Encode(decl *domain.Declaration) ([]byte, error) {
	shortcuts := mappingNode()
	for _, rule := range decl.Shortcuts {
		var value *yaml.Node
		if len(rule.Expansion) == 1 {
			value = stringNode(rule.Expansion[0])
		} else {
			value = &yaml.Node{Kind: yaml.SequenceNode}
			for _, entry := range rule.Expansion {
				value.Content = append(value.Content, stringNode(entry))
			}
		}
		shortcuts.Content = append(shortcuts.Content, keyNode(rule.Alias), value)
	}

	colors := mappingNode()
	scales := make(map[string]*yaml.Node)
	for _, token := range decl.Tokens {
		if !token.IsScaled() {
			colors.Content = append(colors.Content, keyNode(token.Key), stringNode(token.Value))
			continue
		}

		scale, exists := scales[token.Namespace]
		if !exists {
			scale = mappingNode()
			scales[token.Namespace] = scale
			colors.Content = append(colors.Content, keyNode(token.Namespace), scale)
		}
		scale.Content = append(scale.Content, keyNode(token.Key), stringNode(token.Value))
	}

	theme := mappingNode()
	theme.Content = append(theme.Content, keyNode("colors"), colors)

	root := mappingNode()
	root.Content = append(root.Content,
		keyNode("shortcuts"), shortcuts,
		keyNode("theme"), theme,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode declaration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode declaration: %w", err)
	}
	return buf.Bytes(), nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

// double quoted so hex colors are not read back as comments
func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}
