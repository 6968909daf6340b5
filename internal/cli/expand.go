package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [alias...]",
	Short: "Print the utilities an alias expands to",
	Long: `Expand one or more aliases and print the resulting utility expressions.
Without arguments every alias is expanded.

Examples:
  themekit expand text-pf-blue
  themekit expand rh-red bg-pf-gray`,
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	aliases := args
	if len(aliases) == 0 {
		aliases = cat.Resolver().Aliases()
	}

	for _, alias := range aliases {
		utilities, err := cat.Expand(alias)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", alias, strings.Join(utilities, " "))
	}
	return nil
}
