package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "duplicate flat key",
			err:      &DuplicateKeyError{Key: "rhRed"},
			sentinel: ErrDuplicateKey,
			message:  `duplicate key: "rhRed"`,
		},
		{
			name:     "duplicate scaled key",
			err:      &DuplicateKeyError{Namespace: "pfGray", Key: "100"},
			sentinel: ErrDuplicateKey,
			message:  `duplicate key: "100" in "pfGray"`,
		},
		{
			name:     "not found",
			err:      &NotFoundError{Namespace: "pfGray", Key: "800"},
			sentinel: ErrNotFound,
			message:  "token not found: pfGray.800",
		},
		{
			name:     "unknown alias with suggestions",
			err:      &UnknownAliasError{Alias: "rh-rde", Suggestions: []string{"rh-red"}},
			sentinel: ErrUnknownAlias,
			message:  `unknown alias: "rh-rde" (did you mean rh-red?)`,
		},
		{
			name:     "unknown token",
			err:      &UnknownTokenError{Alias: "text-pf-blue", Reference: "pfBlu"},
			sentinel: ErrUnknownToken,
			message:  `unknown token: {pfBlu} referenced by "text-pf-blue"`,
		},
		{
			name:     "cycle",
			err:      &CyclicAliasError{Path: []string{"a", "b", "a"}},
			sentinel: ErrCyclicAlias,
			message:  "cyclic alias: a -> b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to build: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestCyclicAliasErrorAs(t *testing.T) {
	err := fmt.Errorf("failed to expand: %w", &CyclicAliasError{Path: []string{"a", "a"}})

	var cycle *CyclicAliasError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"a", "a"}, cycle.Path)
}
