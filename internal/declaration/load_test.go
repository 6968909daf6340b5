package declaration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinWorkshop(t *testing.T) {
	decl, err := LoadBuiltin(DefaultBuiltin)
	require.NoError(t, err)

	assert.Equal(t, "builtin:workshop", decl.Source)
	assert.Len(t, decl.Shortcuts, 10)
	assert.Len(t, decl.Tokens, 13)
	assert.Equal(t, "rh-red", decl.Shortcuts[0].Alias)
	assert.Equal(t, []string{"text-[{rhRed}]"}, decl.Shortcuts[0].Expansion)

	last := decl.Tokens[len(decl.Tokens)-1]
	assert.Equal(t, "pfGray.700", last.Ref())
	assert.Equal(t, "#292929", last.Value)
}

func TestBuiltinNames(t *testing.T) {
	names, err := BuiltinNames()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultBuiltin)
}

func TestLoadBuiltinMissing(t *testing.T) {
	_, err := LoadBuiltin("nope")
	assert.True(t, errors.Is(err, ErrBuiltinNotFound))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	decl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, decl.Source)
	assert.Len(t, decl.Shortcuts, 3)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile("")
	assert.Error(t, err)
}

func TestFindPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	project := t.TempDir()

	_, err := Find(project)
	assert.True(t, errors.Is(err, ErrDeclarationNotFound))

	userDir := filepath.Join(home, ".config", "themekit")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	userFile := filepath.Join(userDir, "themekit.toml")
	require.NoError(t, os.WriteFile(userFile, []byte(""), 0644))

	path, err := Find(project)
	require.NoError(t, err)
	assert.Equal(t, userFile, path)

	projectJSON := filepath.Join(project, "themekit.json")
	projectYAML := filepath.Join(project, "themekit.yaml")
	require.NoError(t, os.WriteFile(projectJSON, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(projectYAML, []byte(""), 0644))

	path, err = Find(project)
	require.NoError(t, err)
	assert.Equal(t, projectYAML, path)

	assert.Equal(t, []string{project, userDir}, SearchPaths(project))
}
