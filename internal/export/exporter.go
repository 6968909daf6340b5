package export

import (
	"fmt"
	"io"

	"themekit/internal/catalog"
)

type Exporter struct {
	cat *catalog.Catalog
}

func NewExporter(cat *catalog.Catalog) *Exporter {
	return &Exporter{cat: cat}
}

// Document collects every token and every resolved shortcut.
func (e *Exporter) Document() (*Document, error) {
	tokens := e.cat.Registry().Tokens()
	doc := &Document{
		Version:   documentVersion,
		Source:    e.cat.Source(),
		Tokens:    make([]*TokenData, 0, len(tokens)),
		Shortcuts: make([]*ShortcutData, 0, e.cat.Resolver().Len()),
	}

	for _, token := range tokens {
		doc.Tokens = append(doc.Tokens, &TokenData{
			Ref:       token.Ref(),
			Namespace: token.Namespace,
			Key:       token.Key,
			Value:     token.Value,
		})
	}

	expansions, err := e.cat.Resolver().ExpandAll()
	if err != nil {
		return nil, fmt.Errorf("failed to expand shortcuts: %w", err)
	}
	for _, exp := range expansions {
		rule, _ := e.cat.Resolver().Rule(exp.Alias)
		doc.Shortcuts = append(doc.Shortcuts, &ShortcutData{
			Alias:     exp.Alias,
			Expansion: rule.Expansion,
			Utilities: exp.Utilities,
		})
	}

	return doc, nil
}

func (e *Exporter) Export(w io.Writer, format ExportFormat) error {
	doc, err := e.Document()
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatCSV:
		return writeCSV(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
