// Package cmd implements the skytrackr CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skytrackr/skytrackr/cmd/skytrackr/app"
)

var (
	application *app.App

	// Persistent flags.
	flagConfig   string
	flagVerbose  bool
	flagQuiet    bool
	flagNoColor  bool
	flagOutput   string
	flagLogLevel string
	flagDataDir  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "skytrackr",
	Short: "Star catalog enrichment and API server",
	Long: `SkyTrackr ingests a bright star catalog and its naming reference
tables, derives a display name for every star through the standard
designation cascade (proper name, Bayer, Flamsteed, Durchmusterung,
HD number), and serves the enriched catalog read-only over HTTP.`,
	PersistentPreRunE: setupCommand,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context, version, commit, date string) error {
	a, err := app.New(version, commit, date)
	if err != nil {
		return err
	}
	application = a
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.skytrackr.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "quiet output (warnings and errors only)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory containing the catalog data files")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

// setupCommand applies parsed flags to the loaded configuration before any
// subcommand runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	config := application.Config()
	if flagConfig != "" {
		// LoadConfig ran before flag parsing, so re-read from the
		// named file and let it replace the search-path values.
		if err := config.LoadFile(flagConfig); err != nil {
			return err
		}
	}
	config.UpdateFromFlags(flagVerbose, flagQuiet, flagNoColor, flagOutput)
	if flagLogLevel != "" {
		config.LogLevel = flagLogLevel
	}
	if flagDataDir != "" {
		config.DataDir = flagDataDir
	}

	// Rebuild the logger now that flags are known.
	logger := app.NewLogger(config)
	*application.Logger() = logger
	return nil
}
