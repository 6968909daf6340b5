package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, doc *Document) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Kind", "Name", "Namespace", "Key", "Value"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, token := range doc.Tokens {
		row := []string{"token", token.Ref, token.Namespace, token.Key, token.Value}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, sc := range doc.Shortcuts {
		row := []string{"shortcut", sc.Alias, "", "", strings.Join(sc.Utilities, " ")}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
