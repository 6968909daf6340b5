package declaration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themekit/internal/domain"
)

func TestEncodeRoundTrip(t *testing.T) {
	decl, err := LoadBuiltin(DefaultBuiltin)
	require.NoError(t, err)
	decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule("btn", "rh-red px-4", "bg-pf-gray"))

	data, err := Encode(decl)
	require.NoError(t, err)

	again, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, decl.Shortcuts, again.Shortcuts)
	assert.Equal(t, decl.Tokens, again.Tokens)
}

func TestEncodeShape(t *testing.T) {
	data, err := Encode(&domain.Declaration{
		Shortcuts: []domain.ShortcutRule{domain.NewShortcutRule("rh-red", "text-[{rhRed}]")},
		Tokens: []domain.Token{
			{Key: "rhRed", Value: "#EE0000"},
			{Namespace: "pfGray", Key: "100", Value: "#F2F2F2"},
		},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "shortcuts:\n")
	assert.Contains(t, out, `rh-red: "text-[{rhRed}]"`)
	assert.Contains(t, out, `rhRed: "#EE0000"`)
	assert.Contains(t, out, `100: "#F2F2F2"`)
}
