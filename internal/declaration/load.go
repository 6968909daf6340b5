package declaration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"themekit/internal/domain"
	"themekit/internal/logging"
)

// FileNames lists the declaration file names looked up in each search
// directory, in precedence order.
var FileNames = []string{"themekit.yaml", "themekit.yml", "themekit.json", "themekit.toml"}

var ErrDeclarationNotFound = errors.New("no declaration file found")

// LoadFile reads a declaration from disk, picking the format from the
// extension.
func LoadFile(path string) (*domain.Declaration, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("declaration path is required")
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration %s: %w", path, err)
	}

	decl, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration %s: %w", path, err)
	}
	decl.Source = path

	logger := logging.Component("declaration")
	logger.Debug().
		Str("source", path).
		Int("shortcuts", len(decl.Shortcuts)).
		Int("tokens", len(decl.Tokens)).
		Msg("loaded declaration")
	return decl, nil
}

// SearchPaths returns the directories searched for a declaration, in
// precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, projectDir)
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themekit"))
	}

	return paths
}

// Find returns the first declaration file on the search paths.
func Find(projectDir string) (string, error) {
	for _, dir := range SearchPaths(projectDir) {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			return path, nil
		}
	}
	return "", ErrDeclarationNotFound
}
