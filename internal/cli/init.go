package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"themekit/internal/config"
	"themekit/internal/declaration"
	"themekit/internal/display"
)

var (
	initOutput string
	initForce  bool
	initSave   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter declaration",
	Long: `Write a builtin declaration (workshop unless --builtin is given) to
themekit.yaml so it can be edited.

Examples:
  themekit init
  themekit init -o styles/themekit.yaml --save`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "themekit.yaml", "Where to write the declaration")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&initSave, "save", false, "Record the file as the default declaration in the config")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := builtinName
	if name == "" {
		name = declaration.DefaultBuiltin
	}

	data, err := declaration.BuiltinData(name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", initOutput)
	}

	if err := os.MkdirAll(filepath.Dir(initOutput), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(initOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOutput, err)
	}

	if initSave {
		abs, err := filepath.Abs(initOutput)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", initOutput, err)
		}
		if err := config.UpdateDeclaration(abs); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
	}

	styles := display.NewStyles(display.DefaultPalette())
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
		fmt.Sprintf("✓ Wrote the %s declaration to %s", name, initOutput)))
	return nil
}
