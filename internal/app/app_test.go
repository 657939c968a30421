package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"roster/internal/cli"
	"roster/internal/config"
	"roster/internal/pipeline"
	"roster/internal/prompt"
	"roster/internal/testing/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) (*Application, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := NewConfig(t.TempDir(), false, true, true)

	application, err := NewApplication(context.Background(), cfg, stdout, stderr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return application, stdout, stderr
}

func TestNewApplication_DefaultsCreateDatabase(t *testing.T) {
	application, _, _ := newTestApplication(t)

	rc := application.Config().RosterConfig
	require.NotNil(t, rc)
	assert.Equal(t, config.DefaultDriver, rc.Database.Driver)
	assert.FileExists(t, rc.Database.DSN)

	deps, err := application.Store().Departments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestNewApplication_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "custom", "people.db")
	cfg := NewConfig(dir, true, true, true)
	cfg.DSN = dsn

	application, err := NewApplication(context.Background(), cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, dsn, application.Config().RosterConfig.Database.DSN)
	assert.Equal(t, "debug", application.Config().RosterConfig.LogLevel)
	assert.True(t, application.Config().RosterConfig.NoColor)
	assert.FileExists(t, dsn)
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  driver: oracle\n"), 0644))

	_, err := NewApplication(context.Background(), NewConfig(dir, false, true, true), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)

	var cfgErr config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "database.driver", cfgErr.Field)
}

func TestMenu_OptionsEndWithExit(t *testing.T) {
	m := NewMenu(nil, nil, pipeline.Catalogue())

	opts := m.options()

	require.Len(t, opts, 12)
	assert.Equal(t, "View all departments", opts[0].Label)
	assert.Equal(t, int64(10), *opts[10].ID)
	assert.Equal(t, exitLabel, opts[11].Label)
	assert.True(t, opts[11].IsNull())
}

func TestRunMenu_RunsActionsUntilExit(t *testing.T) {
	application, stdout, stderr := newTestApplication(t)
	p := mock.NewPrompter(
		mock.Choose("Add a department"), mock.Text("Engineering"),
		mock.Choose("View all departments"),
		mock.Choose(exitLabel),
	)

	require.NoError(t, application.RunMenu(context.Background(), p))

	out := stdout.String()
	assert.Contains(t, out, "New department has been successfully added.")
	assert.Contains(t, out, "1  | Engineering")
	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, p.Remaining())

	calls := p.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, menuMessage, calls[0].Message)
	assert.Equal(t, menuMessage, calls[3].Message)
}

func TestRunMenu_FailureKeepsSessionAlive(t *testing.T) {
	application, stdout, stderr := newTestApplication(t)
	p := mock.NewPrompter(
		mock.Choose("Add a role"),
		mock.Choose("Add a department"), mock.Text("Legal"),
		mock.Choose(exitLabel),
	)

	require.NoError(t, application.RunMenu(context.Background(), p))

	assert.Contains(t, stderr.String(), "no departments available")
	assert.Contains(t, stdout.String(), "New department has been successfully added.")
	assert.Equal(t, 0, p.Remaining())
}

func TestMenu_EndOfInputExits(t *testing.T) {
	application, _, _ := newTestApplication(t)
	out := cli.NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, false)
	p := mock.NewPrompter(mock.Fail(prompt.ErrAborted))

	m := NewMenu(pipeline.NewExecutor(application.Store(), p, out), p, pipeline.Catalogue())
	assert.NoError(t, m.Run(context.Background()))
}

func TestMenu_PromptErrorIsReturned(t *testing.T) {
	application, _, _ := newTestApplication(t)
	out := cli.NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, false)
	p := mock.NewPrompter(mock.Fail(errors.New("terminal gone")))

	m := NewMenu(pipeline.NewExecutor(application.Store(), p, out), p, pipeline.Catalogue())
	err := m.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
}

func TestMenu_CancelledContextExits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := mock.NewPrompter(mock.Choose("View all roles"))

	m := NewMenu(nil, p, pipeline.Catalogue())
	assert.NoError(t, m.Run(ctx))
	assert.Empty(t, p.Calls())
}
