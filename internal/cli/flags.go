package cli

import (
	"roster/internal/config"

	"github.com/spf13/cobra"
)

// CommandFlags holds the global flag values shared by every roster command.
type CommandFlags struct {
	// ConfigPath specifies the configuration directory
	ConfigPath string
	// Driver overrides the configured database driver
	Driver string
	// DSN overrides the configured database location
	DSN string
	// Debug enables debug logging
	Debug bool
	// Quiet suppresses the spinner and log output
	Quiet bool
	// NoColor disables colored status lines
	NoColor bool
}

// RegisterGlobalFlags registers the persistent flags on the root command.
//
// The registered flags are:
//   - --config-path: Configuration directory
//   - --driver: Database driver, sqlite or postgres (env: ROSTER_DB_DRIVER)
//   - --dsn: Database file or connection URL (env: ROSTER_DB_DSN)
//   - --debug: Enable debug logging
//   - --quiet/-q: Suppress non-essential output
//   - --no-color: Disable colored output (env: ROSTER_NO_COLOR)
func RegisterGlobalFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	cmd.PersistentFlags().StringVar(&flags.Driver, "driver", "", "Database driver: sqlite or postgres (env: ROSTER_DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&flags.DSN, "dsn", "", "Database file path or connection URL (env: ROSTER_DB_DSN)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output (env: ROSTER_NO_COLOR)")
}
