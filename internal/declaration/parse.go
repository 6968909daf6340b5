// Package declaration reads shortcut and theme declarations from YAML, JSON
// or TOML and serves the builtin declarations bundled with themekit.
package declaration

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"themekit/internal/domain"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported declaration format")

const shortcutsNamespace = "shortcuts"

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a declaration. YAML and JSON keep declaration order; TOML
// tables are unordered, so TOML input is sorted by key.
func Parse(data []byte, format Format) (*domain.Declaration, error) {
	var (
		decl *domain.Declaration
		err  error
	)

	switch format {
	case FormatYAML, FormatJSON:
		decl, err = parseYAML(data)
	case FormatTOML:
		decl, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := decl.Validate(); err != nil {
		return nil, err
	}
	return decl, nil
}

// yaml.v3 decodes JSON as well, and walking nodes rather than decoding into
// maps keeps key order and lets duplicates surface as DuplicateKeyError.
func parseYAML(data []byte) (*domain.Declaration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode declaration: %w", err)
	}

	decl := &domain.Declaration{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return decl, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "declaration must be a mapping")
	}

	err := eachPair(root, "", func(key string, value *yaml.Node) error {
		switch key {
		case "shortcuts":
			return walkShortcuts(decl, value)
		case "theme":
			return walkTheme(decl, value)
		default:
			return nodeError(value, fmt.Sprintf("unknown section %q", key))
		}
	})
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func walkShortcuts(decl *domain.Declaration, node *yaml.Node) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return nodeError(node, "shortcuts must be a mapping of alias to utilities")
	}

	return eachPair(node, shortcutsNamespace, func(alias string, value *yaml.Node) error {
		switch value.Kind {
		case yaml.ScalarNode:
			if isNull(value) {
				return nodeError(value, fmt.Sprintf("shortcut %q has no expansion", alias))
			}
			decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule(alias, value.Value))
		case yaml.SequenceNode:
			entries := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode || isNull(item) {
					return nodeError(item, fmt.Sprintf("shortcut %q: entries must be strings", alias))
				}
				entries = append(entries, item.Value)
			}
			decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule(alias, entries...))
		default:
			return nodeError(value, fmt.Sprintf("shortcut %q must be a string or a list of strings", alias))
		}
		return nil
	})
}

func walkTheme(decl *domain.Declaration, node *yaml.Node) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return nodeError(node, "theme must be a mapping")
	}

	return eachPair(node, "theme", func(key string, value *yaml.Node) error {
		if key != "colors" {
			return nodeError(value, fmt.Sprintf("unknown theme section %q", key))
		}
		return walkColors(decl, value)
	})
}

func walkColors(decl *domain.Declaration, node *yaml.Node) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return nodeError(node, "theme.colors must be a mapping")
	}

	return eachPair(node, "", func(name string, value *yaml.Node) error {
		switch value.Kind {
		case yaml.ScalarNode:
			if isNull(value) {
				return nodeError(value, fmt.Sprintf("color %q has no value", name))
			}
			decl.Tokens = append(decl.Tokens, domain.Token{Key: name, Value: value.Value})
			return nil
		case yaml.MappingNode:
			return eachPair(value, name, func(step string, v *yaml.Node) error {
				if err := validateStep(name, step); err != nil {
					return nodeError(v, err.Error())
				}
				if v.Kind != yaml.ScalarNode || isNull(v) {
					return nodeError(v, fmt.Sprintf("color %s.%s must be a string; scales are one level deep", name, step))
				}
				decl.Tokens = append(decl.Tokens, domain.Token{Namespace: name, Key: step, Value: v.Value})
				return nil
			})
		default:
			return nodeError(value, fmt.Sprintf("color %q must be a string or a scale mapping", name))
		}
	})
}

// eachPair visits a mapping in order and rejects repeated keys.
func eachPair(node *yaml.Node, namespace string, fn func(key string, value *yaml.Node) error) error {
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nodeError(keyNode, "mapping keys must be scalars")
		}

		key := keyNode.Value
		if seen[key] {
			return fmt.Errorf("line %d: %w", keyNode.Line, &domain.DuplicateKeyError{Namespace: namespace, Key: key})
		}
		seen[key] = true

		if err := fn(key, valueNode); err != nil {
			return err
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func nodeError(node *yaml.Node, msg string) error {
	return fmt.Errorf("line %d: %s", node.Line, msg)
}

func validateStep(scale, step string) error {
	if _, err := strconv.Atoi(step); err != nil {
		return fmt.Errorf("color %s: scale key %q must be numeric", scale, step)
	}
	return nil
}

type tomlDeclaration struct {
	Shortcuts map[string]any `toml:"shortcuts"`
	Theme     *struct {
		Colors map[string]any `toml:"colors"`
	} `toml:"theme"`
}

func parseTOML(data []byte) (*domain.Declaration, error) {
	var raw tomlDeclaration
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		if dup := tomlDuplicate(data, err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("failed to decode declaration: %w", err)
	}

	decl := &domain.Declaration{}

	for _, alias := range sortedKeys(raw.Shortcuts) {
		switch v := raw.Shortcuts[alias].(type) {
		case string:
			decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule(alias, v))
		case []any:
			entries := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("shortcut %q: entries must be strings", alias)
				}
				entries = append(entries, s)
			}
			decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule(alias, entries...))
		default:
			return nil, fmt.Errorf("shortcut %q must be a string or a list of strings", alias)
		}
	}

	if raw.Theme == nil {
		return decl, nil
	}

	for _, name := range sortedKeys(raw.Theme.Colors) {
		switch v := raw.Theme.Colors[name].(type) {
		case string:
			decl.Tokens = append(decl.Tokens, domain.Token{Key: name, Value: v})
		case map[string]any:
			steps := make([]string, 0, len(v))
			for step := range v {
				if err := validateStep(name, step); err != nil {
					return nil, err
				}
				steps = append(steps, step)
			}
			sort.Slice(steps, func(i, j int) bool {
				a, _ := strconv.Atoi(steps[i])
				b, _ := strconv.Atoi(steps[j])
				return a < b
			})
			for _, step := range steps {
				s, ok := v[step].(string)
				if !ok {
					return nil, fmt.Errorf("color %s.%s must be a string; scales are one level deep", name, step)
				}
				decl.Tokens = append(decl.Tokens, domain.Token{Namespace: name, Key: step, Value: s})
			}
		default:
			return nil, fmt.Errorf("color %q must be a string or a scale table", name)
		}
	}

	return decl, nil
}

// go-toml reports key and table redefinitions as plain text
var tomlRedefinedRegex = regexp.MustCompile(`(?:key|table) (\S+) (?:is already defined|already exists)`)

// tomlDuplicate turns a go-toml redefinition error into a DuplicateKeyError,
// locating the table and line of the second definition. Other errors give nil.
func tomlDuplicate(data []byte, err error) error {
	match := tomlRedefinedRegex.FindStringSubmatch(err.Error())
	if match == nil {
		return nil
	}

	name := strings.Trim(match[1], `"'`)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	table, line := locateTOMLRedefinition(data, name)
	dup := &domain.DuplicateKeyError{Namespace: tomlNamespace(table), Key: name}
	if line == 0 {
		return dup
	}
	return fmt.Errorf("line %d: %w", line, dup)
}

// finds the second definition of name within one table, either as a key or
// as the last segment of a table header
func locateTOMLRedefinition(data []byte, name string) (string, int) {
	seen := make(map[string]bool)
	table := ""

	for i, raw := range strings.Split(string(data), "\n") {
		text := strings.TrimSpace(raw)

		var parent, key string
		switch {
		case strings.HasPrefix(text, "["):
			if end := strings.IndexByte(text, ']'); end > 0 {
				text = text[:end]
			}
			table = strings.Trim(text, "[] ")
			parent, key = "", table
			if dot := strings.LastIndexByte(table, '.'); dot >= 0 {
				parent, key = table[:dot], table[dot+1:]
			}
		case strings.Contains(text, "=") && !strings.HasPrefix(text, "#"):
			parent = table
			key = strings.TrimSpace(text[:strings.IndexByte(text, '=')])
		default:
			continue
		}

		key = strings.Trim(key, `"' `)
		if key != name {
			continue
		}
		id := parent + "\x00" + key
		if seen[id] {
			return parent, i + 1
		}
		seen[id] = true
	}

	return "", 0
}

// maps a TOML table path to the namespace used by the YAML walker
func tomlNamespace(table string) string {
	switch {
	case table == "shortcuts":
		return shortcutsNamespace
	case table == "theme.colors":
		return ""
	case strings.HasPrefix(table, "theme.colors."):
		return strings.TrimPrefix(table, "theme.colors.")
	default:
		return table
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
