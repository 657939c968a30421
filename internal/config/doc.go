// Package config provides configuration management for roster.
//
// Configuration is resolved in layers, later layers winning:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. config.yaml in the configuration directory
//  3. ROSTER_* environment variables
//  4. Command-line flags (applied by the cmd package)
//
// The default configuration directory is ~/.config/roster. A custom directory
// can be given with the --config-path flag. A missing config.yaml is not an
// error; defaults are used.
//
// # Configuration File
//
//	database:
//	  driver: postgres            # sqlite (default) or postgres
//	  dsn: postgres://localhost/roster?sslmode=disable
//	  maxOpenConns: 4
//	logLevel: info                # debug, info, warn, error
//	noColor: false
//
// # Environment Variables
//
//	ROSTER_DB_DRIVER, ROSTER_DB_DSN, ROSTER_DB_MAX_OPEN_CONNS,
//	ROSTER_LOG_LEVEL, ROSTER_NO_COLOR
//
// # Errors
//
// Problems with the file or the resolved values are reported as
// ConfigurationError values, collected in a ConfigurationErrorCollection when
// there are several, so callers can map them to a dedicated exit code with
// errors.As.
package config
