package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-initfield/internal/config"
	"github.com/deploymenttheory/go-initfield/pkg/app"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:   "initfield",
	Short: "Read, validate and rewrite hydrodynamic initial field files",
	Long: `initfield reads initial field files (the [General]/[Initial]/[Parameter] INI
format), validates every record against a model definition and writes the model back
out together with its polygon, sample and 1D field data files.

Commands:
  inspect     Read an initial field file and report its records
  rewrite     Read an initial field file and write it to a new location`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./initfield.yaml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// cfg is loaded before any command runs
var cfg = &config.Config{LogLevel: "info", LogFormat: "text", OutputFormat: "table"}

// loadConfig reads the config file and lets explicitly set flags override it
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(afero.NewOsFs(), configPath)
	if err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "failed to load configuration", err)
	}
	cfg = loaded

	if cmd.Flags().Changed("output") {
		cfg.OutputFormat = outputFormat
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if quiet {
		cfg.LogLevel = "error"
	}
	return app.ValidateOutputFormat(cfg.OutputFormat)
}

// newAppContext builds the application context from the loaded configuration
func newAppContext() *app.Context {
	ctx := app.NewContext()
	ctx.OutputFormat = cfg.OutputFormat
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.Logger = cfg.NewLogger()
	slog.SetDefault(ctx.Logger)
	return ctx
}
