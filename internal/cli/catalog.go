package cli

import (
	"errors"
	"fmt"
	"os"

	"themekit/internal/catalog"
	"themekit/internal/declaration"
	"themekit/internal/display"
	"themekit/internal/domain"
	"themekit/internal/logging"
)

// picks the declaration: --builtin, then -d or config, then search paths.
// Returns declaration.ErrDeclarationNotFound when nothing is declared.
func loadDeclaration() (*domain.Declaration, error) {
	if builtinName != "" {
		return declaration.LoadBuiltin(builtinName)
	}

	if settings != nil && settings.Declaration != "" {
		return declaration.LoadFile(settings.Declaration)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := declaration.Find(cwd)
	if err != nil {
		return nil, err
	}
	return declaration.LoadFile(path)
}

// builds the catalog for the chosen declaration, falling back to the
// default builtin
func loadCatalog() (*catalog.Catalog, error) {
	decl, err := loadDeclaration()
	if errors.Is(err, declaration.ErrDeclarationNotFound) {
		logger := logging.Component("cli")
		logger.Debug().Msg("no declaration found, using builtin " + declaration.DefaultBuiltin)
		return catalog.Default()
	}
	if err != nil {
		return nil, err
	}

	return catalog.Build(decl)
}

// styles drawn from the catalog's own tokens
func catalogStyles(cat *catalog.Catalog) *display.Styles {
	return display.NewStyles(display.PaletteFrom(cat.Registry()))
}
