package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roster/internal/app"
	"roster/internal/cli"
	"roster/internal/config"
	"roster/internal/prompt"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfig indicates the configuration file, environment or flags are invalid.
	ExitCodeConfig = 2
)

var globalFlags cli.CommandFlags

// rootCmd represents the base command for the roster application.
// Called without a subcommand it starts the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage departments, roles and employees from the terminal",
	Long: `roster is an interactive employee tracker. It keeps departments, roles
and employees in a SQLite file (or a PostgreSQL database) and offers a menu
to view, add, update and delete them.

Run without arguments to start the menu. Use "roster list" for scripted,
non-interactive output.`,
	Args: cobra.NoArgs,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	RunE:         runMenu,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "roster version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var cfgErr config.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitCodeConfig
	}

	var cfgErrs config.ConfigurationErrorCollection
	if errors.As(err, &cfgErrs) {
		return ExitCodeConfig
	}

	return ExitCodeError
}

// newApplication bootstraps the application from the global flags, writing to
// the command's streams.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(globalFlags.ConfigPath, globalFlags.Debug, globalFlags.Quiet, globalFlags.NoColor)
	cfg.Driver = globalFlags.Driver
	cfg.DSN = globalFlags.DSN
	return app.NewApplication(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runMenu(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	defer application.Close()

	prompter, err := prompt.NewReadlinePrompter(prompt.Config{Output: application.Output()})
	if err != nil {
		return fmt.Errorf("failed to start interactive prompt: %w", err)
	}
	defer prompter.Close()

	return application.RunMenu(cmd.Context(), prompter)
}

func init() {
	cli.RegisterGlobalFlags(rootCmd, &globalFlags)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
}
