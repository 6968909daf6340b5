package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"themekit/internal/generate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the declaration",
	Long: `Load the declaration and expand every alias. Every unknown token and
every alias cycle is reported, not just the first one.

Utilities that cannot be generated are listed as warnings.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	styles := catalogStyles(cat)
	out := cmd.OutOrStdout()

	expansions, err := cat.Resolver().ExpandAll()
	if err != nil {
		return err
	}

	res := generate.New(cat.Registry(), generate.Options{}).GenerateShortcuts(expansions)
	for _, skipped := range res.Skipped {
		fmt.Fprintln(out, styles.Warning.Render("! not generated: "+skipped))
	}

	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("✓ %s: %d tokens, %d shortcuts",
		cat.Source(), cat.Registry().Len(), cat.Resolver().Len())))
	return nil
}
