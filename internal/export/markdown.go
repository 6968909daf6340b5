package export

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, doc *Document) error {
	fmt.Fprintf(w, "# Theme: %s\n\n", doc.Source)

	fmt.Fprintf(w, "## Tokens (%d)\n\n", len(doc.Tokens))
	if len(doc.Tokens) > 0 {
		fmt.Fprintln(w, "| Token | Value |")
		fmt.Fprintln(w, "|---|---|")
		for _, token := range doc.Tokens {
			fmt.Fprintf(w, "| `%s` | `%s` |\n", token.Ref, escapeCell(token.Value))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "## Shortcuts (%d)\n\n", len(doc.Shortcuts))
	if len(doc.Shortcuts) > 0 {
		fmt.Fprintln(w, "| Alias | Expansion | Utilities |")
		fmt.Fprintln(w, "|---|---|---|")
		for _, sc := range doc.Shortcuts {
			_, err := fmt.Fprintf(w, "| `%s` | `%s` | `%s` |\n",
				sc.Alias,
				escapeCell(strings.Join(sc.Expansion, " ")),
				escapeCell(strings.Join(sc.Utilities, " ")),
			)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

// pipes would end the table cell
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
