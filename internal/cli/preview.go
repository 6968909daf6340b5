package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"themekit/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse aliases and tokens interactively",
	Long: `Launch an interactive browser of the declaration.

The left pane lists aliases (tab switches to tokens). The right pane shows
the declared expansion, the resolved utilities, the generated CSS and a
swatch for every referenced token.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewPreviewModel(cat), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
