package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"themekit/internal/display"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [ref|scale]",
	Short: "List theme tokens",
	Long: `List every token with a color swatch and the closest CSS color name.
With a reference, print only that token's value. With a scale name, print
each step of the scale.

Examples:
  themekit tokens
  themekit tokens pfGray
  themekit tokens pfGray.500`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 && slices.Contains(cat.Registry().Namespaces(), args[0]) {
		steps, err := cat.Registry().Scale(args[0])
		if err != nil {
			return err
		}
		for _, token := range steps {
			fmt.Fprintf(out, "%s %s\n", token.Ref(), token.Value)
		}
		return nil
	}

	if len(args) == 1 {
		value, err := cat.Registry().Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	}

	styles := catalogStyles(cat)
	tokens := cat.Registry().Tokens()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Tokens (%d) ", len(tokens))))
	fmt.Fprintln(out)

	for _, token := range tokens {
		name := "-"
		if n, _, err := display.NearestName(token.Value); err == nil {
			name = n
		}
		fmt.Fprintf(out, "  %-14s %s  %s\n",
			token.Ref(),
			display.Swatch(token.Value),
			styles.Muted.Render(name),
		)
	}

	fmt.Fprintln(out)
	return nil
}
