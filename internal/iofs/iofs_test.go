package iofs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/internal/iofs"
	"github.com/trailplan/traildb/pkg/config"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.DataDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Idempotent.
	require.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	require.NoError(t, iofs.EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// An existing file is never overwritten.
	require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom: true\n", string(data))
}
