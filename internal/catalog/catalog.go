// Package catalog turns a declaration into a sealed registry and a
// validated resolver.
package catalog

import (
	"fmt"
	"sync"

	"themekit/internal/declaration"
	"themekit/internal/domain"
	"themekit/internal/logging"
	"themekit/internal/shortcut"
	"themekit/internal/theme"
)

// Catalog is immutable once built and safe for concurrent reads.
type Catalog struct {
	source   string
	registry *theme.Registry
	resolver *shortcut.Resolver
}

// Build registers every token, seals the registry, and expands every alias
// once. Any failure aborts the build.
func Build(decl *domain.Declaration) (*Catalog, error) {
	logger := logging.Component("catalog")

	registry, err := theme.FromTokens(decl.Tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to register tokens: %w", err)
	}

	resolver, err := shortcut.NewResolver(registry, decl.Shortcuts,
		shortcut.WithLogger(logging.Component("resolver")))
	if err != nil {
		return nil, fmt.Errorf("failed to index shortcuts: %w", err)
	}

	if err := resolver.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", decl.Source).
		Int("tokens", registry.Len()).
		Int("shortcuts", resolver.Len()).
		Msg("built catalog")

	return &Catalog{
		source:   decl.Source,
		registry: registry,
		resolver: resolver,
	}, nil
}

func (c *Catalog) Source() string {
	return c.source
}

func (c *Catalog) Registry() *theme.Registry {
	return c.registry
}

func (c *Catalog) Resolver() *shortcut.Resolver {
	return c.resolver
}

// Expand is a shorthand for Resolver().Expand.
func (c *Catalog) Expand(alias string) ([]string, error) {
	return c.resolver.Expand(alias)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog of the builtin declaration. It is built on
// first use and shared afterwards.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		decl, err := declaration.LoadBuiltin(declaration.DefaultBuiltin)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog, defaultErr = Build(decl)
	})
	return defaultCatalog, defaultErr
}
