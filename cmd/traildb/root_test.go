package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")

	found := make(map[string]bool)
	for _, c := range cmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"migrate", "import", "status", "build"} {
		assert.True(t, found[name], "%s subcommand should exist", name)
	}
}

// TestRootCommand_ConfigFlag verifies --config flag exists
func TestRootCommand_ConfigFlag(t *testing.T) {
	cmd := getRootCmd()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "--config flag should exist")
	assert.Equal(t, "string", configFlag.Value.Type())
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "traildb")
	assert.Contains(t, helpText, "database")
	assert.Contains(t, helpText, "Available Commands")
}

// TestRootCommand_VersionFlag verifies --version flag
func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "test-version")
}

// TestImportCommand_RequiresKind verifies the --kind flag is declared
// and required.
func TestImportCommand_RequiresKind(t *testing.T) {
	cmd := getImportCmd()

	kindFlag := cmd.Flags().Lookup("kind")
	require.NotNil(t, kindFlag, "--kind flag should exist")
	assert.Equal(t, "k", kindFlag.Shorthand)

	required, ok := kindFlag.Annotations[cobra.BashCompOneRequiredFlag]
	require.True(t, ok, "--kind should be marked required")
	assert.Equal(t, []string{"true"}, required)
}

// TestBuildCommand_OutFlag verifies the --out override flag.
func TestBuildCommand_OutFlag(t *testing.T) {
	cmd := getBuildCmd()

	outFlag := cmd.Flags().Lookup("out")
	require.NotNil(t, outFlag, "--out flag should exist")
	assert.Equal(t, "o", outFlag.Shorthand)
}
