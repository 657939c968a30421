package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedThenList(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, dir, "seed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sample data has been loaded.")

	stdout, _, err = executeCommand(t, dir, "list", "departments")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "id | name       ", lines[0])
	assert.Equal(t, "1  | Engineering", lines[2])

	stdout, _, err = executeCommand(t, dir, "list", "employees", "-o", "json")
	require.NoError(t, err)
	var employees []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &employees))
	require.Len(t, employees, 8)
	assert.Nil(t, employees[0]["manager"])
	assert.Equal(t, "Ashley Rodriguez", employees[4]["manager"])

	stdout, _, err = executeCommand(t, dir, "list", "roles", "-o", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "- id: 1\n  title: Lead Engineer\n  department: Engineering\n"), stdout)
}

func TestSeedTwiceWarns(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, dir, "seed")
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, dir, "seed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sample data not loaded")
}

func TestListEmptyDatabase(t *testing.T) {
	stdout, _, err := executeCommand(t, t.TempDir(), "list", "roles")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestListRejectsUnknownInput(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "list", "projects")
	require.Error(t, err)

	_, _, err = executeCommand(t, t.TempDir(), "list", "roles", "-o", "wide")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
