package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"themekit/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tokens and resolved shortcuts",
	Long: `Export every token and every resolved shortcut.

Supported formats:
  - json: Structured JSON format (default), readable by 'themekit import'
  - csv: Comma-separated values for spreadsheets
  - markdown: Human-readable markdown tables

Examples:
  themekit export --format markdown -o THEME.md
  themekit export --format csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, csv, markdown)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	if err := export.NewExporter(cat).Export(w, format); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if exportOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), catalogStyles(cat).Success.Render(
			fmt.Sprintf("✓ Exported %s to %s", cat.Source(), exportOutput)))
	}
	return nil
}
