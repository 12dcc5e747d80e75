// Package config provides configuration management for traildb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains valid
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: path, batch_size
//   - Build: output_dir, site_title
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.Kind (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TRAILDB_ prefix with underscores for nesting:
//
//	TRAILDB_DATABASE_PATH=/tmp/trails.sqlite
//	TRAILDB_BUILD_OUTPUT_DIR=./site
//	TRAILDB_LOG_LEVEL=debug
package config

// Config represents the complete traildb configuration.
type Config struct {
	// Database contains settings for the local SQLite store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Build contains settings specific to the build command.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains settings for the local SQLite store.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file.
	// An empty value resolves to <data dir>/traildb.sqlite at startup.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize defines the number of rows reported per progress tick
	// during import. Cosmetic only, does not change transaction size:
	// every accepted row commits on its own.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// Kind is the entity kind of the CSV file being imported:
	// "hikes", "reports" or "schedule". Runtime-only, set by CLI flag.
	Kind string
}

// BuildConfig contains settings specific to the build command.
type BuildConfig struct {
	// OutputDir is the directory where the rendered site is written.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// SiteTitle is the heading used on the rendered page.
	SiteTitle string `mapstructure:"site_title" yaml:"site_title"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Path:      "",
			BatchSize: 500,
		},
		Build: BuildConfig{
			OutputDir: "site",
			SiteTitle: "Hike Planner",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
