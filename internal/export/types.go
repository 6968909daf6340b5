package export

import (
	"fmt"
	"strings"
)

const documentVersion = "1.0"

type Document struct {
	Version   string          `json:"version"`
	Source    string          `json:"source"`
	Tokens    []*TokenData    `json:"tokens"`
	Shortcuts []*ShortcutData `json:"shortcuts"`
}

type TokenData struct {
	Ref       string `json:"ref"`
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// ShortcutData keeps the declared expansion next to the resolved one so a
// document can be turned back into a declaration.
type ShortcutData struct {
	Alias     string   `json:"alias"`
	Expansion []string `json:"expansion"`
	Utilities []string `json:"utilities"`
}

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be json, csv or markdown", s)
	}
}
