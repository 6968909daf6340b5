package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"themekit/internal/catalog"
	"themekit/internal/declaration"
	"themekit/internal/display"
	"themekit/internal/export"
)

var importOutput string

var importCmd = &cobra.Command{
	Use:   "import [export.json]",
	Short: "Turn a JSON export back into a declaration",
	Long: `Read a JSON file written by 'themekit export' and write the declaration
it was built from as YAML. The declaration is validated before it is
written.

Examples:
  themekit import theme.json -o themekit.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Output file (default stdout)")
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	decl, err := export.Import(file)
	if err != nil {
		return err
	}

	if _, err := catalog.Build(decl); err != nil {
		return err
	}

	data, err := declaration.Encode(decl)
	if err != nil {
		return err
	}

	if importOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(importOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", importOutput, err)
	}

	styles := display.NewStyles(display.DefaultPalette())
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
		fmt.Sprintf("✓ Imported %d shortcuts and %d tokens into %s", len(decl.Shortcuts), len(decl.Tokens), importOutput)))
	return nil
}
