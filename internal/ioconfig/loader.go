// Package ioconfig provides I/O operations for loading configuration
// from files, environment and flags. This is an impure package that
// handles file system operations.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/trailplan/traildb/pkg/config"
)

// LoadResult contains the loaded configuration and metadata about the
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a Config with
// source info. If configPath is empty, the default location
// (~/.config/traildb/config.yaml) is tried. Returns an error if an
// explicitly given file is missing or malformed.
func Load(configPath, homeDir string) (*LoadResult, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	// Precedence: flags > env vars > config file > defaults
	v.SetEnvPrefix("TRAILDB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config so viper knows which keys to
	// check for env vars even when the config file is absent.
	defaults := config.New()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("build.output_dir", defaults.Build.OutputDir)
	v.SetDefault("build.site_title", defaults.Build.SiteTitle)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath := config.ConfigFilePath(homeDir)
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
		// Otherwise viper falls back to defaults + env vars.
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath != "" || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply file/env values as options over defaults so invalid
	// values are rejected with warnings instead of breaking the
	// config.
	cfg := config.New()
	cfg.Update(fileCfg.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// An unset database path resolves to the data directory.
	if cfg.Database.Path == "" {
		cfg.Database.Path = config.DatabaseFilePath(homeDir)
	}

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars reports whether any TRAILDB_ environment variable is set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TRAILDB_") {
			return true
		}
	}
	return false
}
