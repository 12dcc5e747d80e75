package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trailplan/traildb/internal/ioconfig"
	"github.com/trailplan/traildb/internal/iofs"
	"github.com/trailplan/traildb/internal/iologger"
	pkgconfig "github.com/trailplan/traildb/pkg/config"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traildb",
		Short: "traildb manages a local hiking-trail database",
		Long: `traildb is a CLI tool for a personal hike-planning workflow. It
ingests CSV files produced by the WTA scrapers into a local SQLite
database, resolving conflicts between observations field by field, and
renders a static planning site from the merged data.

The tool provides four phases:
  - migrate: apply schema migrations
  - import:  merge a scraped CSV file into the database
  - status:  show schema version and per-table counts
  - build:   render the static planning site

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TRAILDB_*)
  3. Config file (~/.config/traildb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.path → TRAILDB_DATABASE_PATH).

  Examples:
    TRAILDB_DATABASE_PATH           SQLite database file
    TRAILDB_BUILD_OUTPUT_DIR        Site output directory
    TRAILDB_LOG_LEVEL               Log level (debug/info/warn/error)`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/traildb/config.yaml)")

	// -V for version, consistent with sibling projects.
	rootCmd.Flags().BoolP("version", "V", false, "version for traildb")

	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getStatusCmd())
	rootCmd.AddCommand(getBuildCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		return err
	}

	// Auto-generate config file on first run if it doesn't exist.
	if cfgFile == "" {
		if err = iofs.EnsureConfigFile(homeDir); err != nil {
			// Only warn, don't fail - defaults still work.
			fmt.Fprintf(os.Stderr,
				"Warning: could not generate config file: %v\n", err)
		}
	}

	result, err := ioconfig.Load(cfgFile, homeDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = result.Config

	if err = iologger.Init(
		pkgconfig.LogDir(homeDir), cfg.Log, false,
	); err != nil {
		return err
	}

	return nil
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *pkgconfig.Config {
	return cfg
}
