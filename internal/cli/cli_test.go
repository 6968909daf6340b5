package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themekit/internal/config"
	"themekit/internal/declaration"
	"themekit/internal/domain"
)

const cyclicYAML = `
shortcuts:
  a: "b"
  b: "a"
  c: "text-[{missing}]"
`

const tomlDeclaration = `
[shortcuts]
brand = "text-[{brand}] p-4"

[theme.colors]
brand = "#663399"
`

// runs the root command with fresh flags, a temp HOME and a temp config
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandIn(t, t.TempDir(), args...)
}

// like executeCommand, with HOME and ~/.themekit/config.yaml under home
func executeCommandIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", home)

	cfgFile, logLevel, logFormat, declPath, builtinName = "", "", "", "", ""
	buildOutput, buildMinify, buildVariables, buildStrict = "", false, false, false
	exportOutput, exportFormat = "", "json"
	importOutput = ""
	initOutput, initForce, initSave = "themekit.yaml", false, false
	settings = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(home, ".themekit", "config.yaml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildBuiltinMinified(t *testing.T) {
	out, err := executeCommand(t, "build", "--builtin", "workshop", "--minify")
	require.NoError(t, err)

	assert.Contains(t, out, ".text-pf-blue{color:#0066CC;}")
	assert.Contains(t, out, ".bg-pf-gray{background-color:#F2F2F2;}")
	assert.Contains(t, out, `.font-display{font-family:"Red Hat Display";}`)
	assert.False(t, strings.Contains(out, ":root"))
}

func TestBuildVariables(t *testing.T) {
	out, err := executeCommand(t, "build", "--minify", "--variables")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, ":root{--color-rhRed:#EE0000;"))
	assert.Contains(t, out, "--color-pfGray-500:#6A6E73;")
}

func TestBuildToFile(t *testing.T) {
	dir := t.TempDir()
	decl := writeFile(t, dir, "themekit.toml", tomlDeclaration)
	output := filepath.Join(dir, "dist", "theme.css")

	out, err := executeCommand(t, "build", "-d", decl, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 rules")
	assert.Contains(t, out, "1 utilities skipped")

	css, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, ".brand {\n  color: #663399;\n}\n", string(css))
}

func TestBuildStrict(t *testing.T) {
	decl := writeFile(t, t.TempDir(), "themekit.toml", tomlDeclaration)

	_, err := executeCommand(t, "build", "-d", decl, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand: p-4")
}

func TestBuildFromConfig(t *testing.T) {
	decl := writeFile(t, t.TempDir(), "themekit.toml", tomlDeclaration)

	home := t.TempDir()
	config.SetConfigFile(filepath.Join(home, ".themekit", "config.yaml"))
	require.NoError(t, config.SaveConfig(&config.Config{Declaration: decl, Minify: true}))

	out, err := executeCommandIn(t, home, "build")
	require.NoError(t, err)
	assert.Equal(t, ".brand{color:#663399;}", out)
}

func TestExpand(t *testing.T) {
	out, err := executeCommand(t, "expand", "text-pf-blue", "bg-pf-gray")
	require.NoError(t, err)
	assert.Equal(t, "text-pf-blue: text-[#0066CC]\nbg-pf-gray: bg-[#F2F2F2]\n", out)

	out, err = executeCommand(t, "expand")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestExpandUnknownAlias(t *testing.T) {
	_, err := executeCommand(t, "expand", "text-pf-blu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownAlias))
	assert.Contains(t, err.Error(), "text-pf-blue")
}

func TestCheck(t *testing.T) {
	out, err := executeCommand(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "builtin:workshop: 13 tokens, 10 shortcuts")
}

func TestCheckReportsEveryFailure(t *testing.T) {
	decl := writeFile(t, t.TempDir(), "themekit.yaml", cyclicYAML)

	_, err := executeCommand(t, "check", "-d", decl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCyclicAlias))
	assert.True(t, errors.Is(err, domain.ErrUnknownToken))
}

func TestCheckFindsUserDeclaration(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, filepath.Join(".config", "themekit", "themekit.toml"), tomlDeclaration)

	out, err := executeCommandIn(t, home, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "1 tokens, 1 shortcuts")
	assert.Contains(t, out, "not generated: brand: p-4")
}

func TestLoadDeclarationNotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	builtinName, settings = "", nil

	decl, err := loadDeclaration()
	assert.Nil(t, decl)
	assert.True(t, errors.Is(err, declaration.ErrDeclarationNotFound))

	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "builtin:"+declaration.DefaultBuiltin, cat.Source())
}

func TestMissingDeclarationFileIsAnError(t *testing.T) {
	_, err := executeCommand(t, "check", "-d", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, declaration.ErrDeclarationNotFound))
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestTokens(t *testing.T) {
	out, err := executeCommand(t, "tokens", "pfGray.500")
	require.NoError(t, err)
	assert.Equal(t, "#6A6E73\n", out)

	_, err = executeCommand(t, "tokens", "pfGray.900")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	out, err = executeCommand(t, "tokens", "pfGray")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "pfGray.100 #F2F2F2", lines[0])
	assert.Equal(t, "pfGray.700 #292929", lines[6])

	out, err = executeCommand(t, "tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "Tokens (13)")
	assert.Contains(t, out, "pfGray.700")
	assert.Contains(t, out, "#6A6E73")
}

func TestExportCSV(t *testing.T) {
	out, err := executeCommand(t, "export", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "token,rhRed,,rhRed,#EE0000")
	assert.Contains(t, out, "shortcut,text-pf-blue,,,text-[#0066CC]")

	_, err = executeCommand(t, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "theme.json")
	imported := filepath.Join(dir, "themekit.yaml")

	_, err := executeCommand(t, "export", "-o", exported)
	require.NoError(t, err)

	out, err := executeCommand(t, "import", exported, "-o", imported)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 10 shortcuts and 13 tokens")

	out, err = executeCommand(t, "expand", "-d", imported, "bg-pf-gray")
	require.NoError(t, err)
	assert.Equal(t, "bg-pf-gray: bg-[#F2F2F2]\n", out)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "styles", "themekit.yaml")

	out, err := executeCommand(t, "init", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote the workshop declaration")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rhRed: "#EE0000"`)

	_, err = executeCommand(t, "init", "-o", target)
	assert.Error(t, err, "refuses to overwrite")

	_, err = executeCommand(t, "init", "-o", target, "--force", "--save")
	require.NoError(t, err)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, target, cfg.Declaration)

	_, err = executeCommand(t, "init", "-o", filepath.Join(dir, "x.yaml"), "--builtin", "nope")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, "check", "--log-level", "loud")
	assert.Error(t, err)
}
