package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trailplan/traildb/pkg/config"
	"github.com/trailplan/traildb/pkg/templates"
	"gopkg.in/yaml.v3"
)

// GenerateDefaultConfig creates a documented default config file at
// the default location. Returns the path where the file was created.
// Does NOT overwrite an existing file.
func GenerateDefaultConfig(homeDir string) (string, error) {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(
		configPath, []byte(templates.ConfigYAML), 0644,
	); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// TemplateConfig parses the embedded config.yaml template. Used to
// keep the documented template in sync with the built-in defaults.
func TemplateConfig() (*config.Config, error) {
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(templates.ConfigYAML), &cfg); err != nil {
		return nil, fmt.Errorf("embedded config template is invalid: %w", err)
	}
	return &cfg, nil
}
