// Package logging provides a structured logging system for roster built on
// Go's standard slog package.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// All log entries carry a subsystem identifier and, for errors, the error text.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Info("Storage", "Opened %s database", driver)
//	logging.Error("Pipeline", err, "Action %q failed", name)
//
// # Subsystem Organization
//
//   - **Config**: Configuration loading and validation
//   - **Storage**: Database connection and queries
//   - **Migrate**: Schema migrations and seed data
//   - **Pipeline**: Menu action execution
//   - **Menu**: The interactive session loop
//   - **Prompt**: Terminal input handling
//
// Log output goes to the diagnostic stream so it never interleaves with
// rendered tables on stdout. The interactive session defaults to the WARN level.
//
// The logging system is safe for concurrent use.
package logging
