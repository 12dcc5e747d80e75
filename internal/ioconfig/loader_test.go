package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/internal/ioconfig"
	"github.com/trailplan/traildb/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	res, err := ioconfig.Load("", home)
	require.NoError(t, err)
	assert.Equal(t, "defaults", res.Source)
	assert.Empty(t, res.SourcePath)

	cfg := res.Config
	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, config.DatabaseFilePath(home), cfg.Database.Path)
	assert.Equal(t, 500, cfg.Database.BatchSize)
	assert.Equal(t, "site", cfg.Build.OutputDir)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	data := `database:
  path: /tmp/trails.sqlite
  batch_size: 50
build:
  site_title: Cascade Hikes
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res, err := ioconfig.Load(path, home)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)

	cfg := res.Config
	assert.Equal(t, "/tmp/trails.sqlite", cfg.Database.Path)
	assert.Equal(t, 50, cfg.Database.BatchSize)
	assert.Equal(t, "Cascade Hikes", cfg.Build.SiteTitle)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "site", cfg.Build.OutputDir)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	path := config.ConfigFilePath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data := "build:\n  output_dir: public\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res, err := ioconfig.Load("", home)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)
	assert.Equal(t, "public", res.Config.Build.OutputDir)
}

func TestLoad_BadValuesIgnored(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	data := "log:\n  level: verbose\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res, err := ioconfig.Load(path, home)
	require.NoError(t, err)
	assert.Equal(t, "info", res.Config.Log.Level,
		"invalid value falls back to the default")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	home := t.TempDir()
	_, err := ioconfig.Load(filepath.Join(home, "nope.yaml"), home)
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TRAILDB_LOG_LEVEL", "warn")
	t.Setenv("TRAILDB_BUILD_SITE_TITLE", "Env Hikes")

	res, err := ioconfig.Load("", home)
	require.NoError(t, err)
	assert.Equal(t, "defaults+env", res.Source)
	assert.Equal(t, "warn", res.Config.Log.Level)
	assert.Equal(t, "Env Hikes", res.Config.Build.SiteTitle)
}

func TestGenerateDefaultConfig(t *testing.T) {
	home := t.TempDir()

	path, err := ioconfig.GenerateDefaultConfig(home)
	require.NoError(t, err)
	assert.Equal(t, config.ConfigFilePath(home), path)

	res, err := ioconfig.Load(path, home)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)

	// Second call refuses to overwrite.
	_, err = ioconfig.GenerateDefaultConfig(home)
	require.Error(t, err)
}

// TestTemplateMatchesDefaults keeps the documented template in sync
// with the built-in defaults.
func TestTemplateMatchesDefaults(t *testing.T) {
	tmpl, err := ioconfig.TemplateConfig()
	require.NoError(t, err)

	defaults := config.New()
	assert.Equal(t, defaults.Database.BatchSize, tmpl.Database.BatchSize)
	assert.Equal(t, defaults.Build.OutputDir, tmpl.Build.OutputDir)
	assert.Equal(t, defaults.Build.SiteTitle, tmpl.Build.SiteTitle)
	assert.Equal(t, defaults.Log.Format, tmpl.Log.Format)
	assert.Equal(t, defaults.Log.Level, tmpl.Log.Level)
	assert.Equal(t, defaults.Log.Destination, tmpl.Log.Destination)
}
