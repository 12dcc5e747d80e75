package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "traildb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/traildb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/traildb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for the SQLite store.
// Returns ~/.local/share/traildb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/traildb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/traildb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatabaseFilePath returns the default location of the SQLite store.
// Returns ~/.local/share/traildb/traildb.sqlite by default.
func DatabaseFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "traildb.sqlite")
}
