package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"themekit/internal/generate"
)

var (
	buildOutput    string
	buildMinify    bool
	buildVariables bool
	buildStrict    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate CSS for every shortcut",
	Long: `Load the declaration, expand every alias and write one CSS ruleset per
alias. Any unknown alias, unknown token or alias cycle aborts the build.

Utilities themekit cannot translate (for example p-4) are skipped with a
warning, unless --strict is set.

Examples:
  themekit build
  themekit build -d themekit.toml -o dist/theme.css --minify
  themekit build --builtin workshop --variables`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (default stdout)")
	buildCmd.Flags().BoolVar(&buildMinify, "minify", false, "Minify the stylesheet")
	buildCmd.Flags().BoolVar(&buildVariables, "variables", false, "Emit a :root block with one custom property per token")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "Fail when a utility cannot be generated")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	expansions, err := cat.Resolver().ExpandAll()
	if err != nil {
		return err
	}

	opts := generate.Options{
		Minify:    buildMinify || settings.Minify,
		Variables: buildVariables || settings.Variables,
	}
	gen := generate.New(cat.Registry(), opts)
	res := gen.GenerateShortcuts(expansions)

	if buildStrict && len(res.Skipped) > 0 {
		return fmt.Errorf("%d utilities could not be generated: %v", len(res.Skipped), res.Skipped)
	}

	output := buildOutput
	if output == "" {
		output = settings.Output
	}

	css := gen.Render(res)
	if output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), css)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(css), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	styles := catalogStyles(cat)
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
		fmt.Sprintf("✓ Wrote %d rules to %s", len(res.Rules), output)))
	if len(res.Skipped) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Warning.Render(
			fmt.Sprintf("  %d utilities skipped", len(res.Skipped))))
	}
	return nil
}
