package export

import (
	"encoding/json"
	"fmt"
	"io"

	"themekit/internal/domain"
)

// Import turns a JSON export back into a declaration. Resolved utilities
// are ignored; the declared expansions are kept.
func Import(r io.Reader) (*domain.Declaration, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}

	if doc.Version != documentVersion {
		return nil, fmt.Errorf("unsupported export version %q", doc.Version)
	}

	decl := &domain.Declaration{
		Source:    doc.Source,
		Shortcuts: make([]domain.ShortcutRule, 0, len(doc.Shortcuts)),
		Tokens:    make([]domain.Token, 0, len(doc.Tokens)),
	}

	for _, token := range doc.Tokens {
		if token == nil {
			continue
		}
		decl.Tokens = append(decl.Tokens, domain.Token{
			Namespace: token.Namespace,
			Key:       token.Key,
			Value:     token.Value,
		})
	}

	for _, sc := range doc.Shortcuts {
		if sc == nil {
			continue
		}
		decl.Shortcuts = append(decl.Shortcuts, domain.NewShortcutRule(sc.Alias, sc.Expansion...))
	}

	if err := decl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export: %w", err)
	}
	return decl, nil
}
