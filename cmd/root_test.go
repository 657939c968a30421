package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"roster/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args against a fresh config
// directory and returns what it wrote to stdout and stderr.
func executeCommand(t *testing.T, configDir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config-path", configDir, "--quiet", "--no-color"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		globalFlags.Driver = ""
		globalFlags.DSN = ""
		listOutputFormat = "table"
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "roster", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE)

	for _, flag := range []string{"config-path", "driver", "dsn", "debug", "quiet", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "roster version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "roster version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, expected := range []string{"version", "list", "migrate", "seed"} {
		assert.True(t, found[expected], "missing subcommand %s", expected)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"generic", errors.New("boom"), ExitCodeError},
		{"configuration error", config.NewConfigurationError("", "database.dsn", "validation", "is required"), ExitCodeConfig},
		{"wrapped configuration error", fmt.Errorf("bootstrap: %w", config.ConfigurationError{Field: "logLevel"}), ExitCodeConfig},
		{"collection", config.ConfigurationErrorCollection{Errors: []config.ConfigurationError{{Field: "a"}, {Field: "b"}}}, ExitCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getExitCode(tt.err))
		})
	}
}

func TestMigrateCommand(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, dir, "migrate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Database schema is up to date (sqlite).")
	assert.FileExists(t, dir+"/roster.db")
}

func TestInvalidDriverIsConfigError(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "--driver", "oracle", "migrate")
	require.Error(t, err)
	assert.Equal(t, ExitCodeConfig, getExitCode(err))
}
