package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"roster/internal/cli"
	"roster/internal/storage"
	"roster/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Application owns the resolved configuration, the database handle and the
// output streams for one roster session.
//
// Example usage:
//
//	cfg := app.NewConfig(configPath, false, false, false)
//	application, err := app.NewApplication(ctx, cfg, os.Stdout, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer application.Close()
//	return application.RunMenu(ctx, prompter)
type Application struct {
	config *Config
	store  *storage.Store
	out    *cli.Output
}

// NewApplication performs the bootstrap sequence:
//
//  1. Resolves configuration (defaults, config.yaml, ROSTER_* variables, flags)
//  2. Initializes logging on stderr
//  3. Opens the database and applies migrations, behind a spinner unless quiet
//
// Configuration problems are returned as config.ConfigurationError values.
func NewApplication(ctx context.Context, cfg *Config, stdout, stderr io.Writer) (*Application, error) {
	rc, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	cfg.RosterConfig = &rc

	if stderr == nil {
		stderr = os.Stderr
	}
	level, _ := logging.ParseLevel(rc.LogLevel)
	var logOutput = stderr
	if cfg.Quiet {
		logOutput = io.Discard
	}
	logging.InitForCLI(level, logOutput)

	out := cli.NewOutput(stdout, stderr, !rc.NoColor)

	store, err := openStore(ctx, rc.Database.Driver, rc.Database.DSN, rc.Database.MaxOpenConns, cfg.Quiet, out.Stderr())
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to open the roster database")
		return nil, err
	}

	return &Application{
		config: cfg,
		store:  store,
		out:    out,
	}, nil
}

func openStore(ctx context.Context, driver, dsn string, maxOpenConns int, quiet bool, w io.Writer) (*storage.Store, error) {
	var s *spinner.Spinner
	if !quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		s.Suffix = " Opening roster database..."
		s.Start()
	}

	store, err := storage.Open(ctx, storage.Options{
		Driver:       driver,
		DSN:          dsn,
		MaxOpenConns: maxOpenConns,
	})
	if err == nil {
		if err = store.Migrate(ctx); err != nil {
			_ = store.Close()
		}
	}

	if s != nil {
		if err != nil {
			s.FinalMSG = text.FgRed.Sprint("Failed to open roster database") + "\n"
		}
		s.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open roster database: %w", err)
	}
	return store, nil
}

// Store returns the session's database handle.
func (a *Application) Store() *storage.Store {
	return a.store
}

// Output returns the session's output streams.
func (a *Application) Output() *cli.Output {
	return a.out
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Close releases the database handle.
func (a *Application) Close() error {
	return a.store.Close()
}
