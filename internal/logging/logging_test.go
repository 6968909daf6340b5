package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogging(t *testing.T) {
	t.Helper()

	prevLogger := Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "", want: zerolog.InfoLevel},
		{input: "debug", want: zerolog.DebugLevel},
		{input: " WARN ", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitJSONComponent(t *testing.T) {
	resetLogging(t)

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "debug", Format: FormatJSON, Output: &buf}))

	logger := Component("resolver")
	logger.Debug().Str("alias", "rh-red").Msg("expanded alias")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolver", entry["component"])
	assert.Equal(t, "rh-red", entry["alias"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "expanded alias", entry["message"])
}

func TestInitRespectsLevel(t *testing.T) {
	resetLogging(t)

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "warn", Format: FormatJSON, Output: &buf}))

	logger := Component("generate")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitConsole(t *testing.T) {
	resetLogging(t)

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Output: &buf}))

	logger := Component("catalog")
	logger.Info().Msg("built catalog")
	assert.Contains(t, buf.String(), "built catalog")
	assert.Contains(t, buf.String(), "catalog")
}

func TestInitInvalidFormat(t *testing.T) {
	resetLogging(t)

	err := Init(Options{Format: "xml"})
	assert.Error(t, err)
}
