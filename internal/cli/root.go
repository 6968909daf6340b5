package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"themekit/internal/config"
	"themekit/internal/display"
	"themekit/internal/logging"
)

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	declPath    string
	builtinName string

	// loaded in PersistentPreRunE, flags already applied
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "themekit - resolve design tokens and shortcut aliases into CSS",
	Long: `themekit reads a declaration of color tokens and shortcut aliases,
expands every alias, substitutes {token} references, and writes the
resulting utility classes as CSS.

Declarations are YAML, JSON or TOML. Without -d or --builtin, themekit
looks for themekit.yaml, themekit.yml, themekit.json or themekit.toml in
the current directory, then in ~/.config/themekit, and finally falls back
to the builtin workshop declaration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.themekit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&declPath, "declaration", "d", "", "Declaration file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&builtinName, "builtin", "", "Use a builtin declaration instead of a file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loads config, applies flag overrides and sets up logging
func loadSettings(cmd *cobra.Command) error {
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if declPath != "" {
		cfg.Declaration = declPath
	}

	if err := logging.Init(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	settings = cfg
	return nil
}

func displayWelcome(cmd *cobra.Command) {
	styles := display.NewStyles(display.DefaultPalette())
	out := cmd.OutOrStdout()

	title := styles.Title.Render(`
		------------------------------------------------------

		                 T H E M E K I T

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("Tokens in, utility classes out")

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, subtitle)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'themekit --help' to see available commands.")
	fmt.Fprintln(out)
}
