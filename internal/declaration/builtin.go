package declaration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"themekit/internal/domain"
	"themekit/internal/logging"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultBuiltin is the declaration used when nothing else is configured.
const DefaultBuiltin = "workshop"

var ErrBuiltinNotFound = errors.New("builtin declaration not found")

// BuiltinNames returns the names of the bundled declarations, sorted.
func BuiltinNames() ([]string, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin declarations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// BuiltinData returns the raw YAML of a bundled declaration.
func BuiltinData(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBuiltinNotFound, name)
		}
		return nil, fmt.Errorf("failed to read builtin declaration %s: %w", name, err)
	}
	return data, nil
}

func LoadBuiltin(name string) (*domain.Declaration, error) {
	data, err := BuiltinData(name)
	if err != nil {
		return nil, err
	}

	decl, err := Parse(data, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse builtin declaration %s: %w", name, err)
	}
	decl.Source = "builtin:" + name

	logger := logging.Component("declaration")
	logger.Debug().Str("source", decl.Source).Msg("loaded declaration")
	return decl, nil
}
