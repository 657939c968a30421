package config

import "path/filepath"

const (
	// DefaultDriver is the database driver used when none is configured.
	DefaultDriver = "sqlite"

	// DefaultLogLevel keeps the interactive menu free of routine log lines.
	DefaultLogLevel = "warn"

	// DefaultDatabaseFile is the SQLite file created in the configuration directory.
	DefaultDatabaseFile = "roster.db"
)

// GetDefaultConfig returns the default configuration. The SQLite database lives
// in configDir.
func GetDefaultConfig(configDir string) RosterConfig {
	return RosterConfig{
		Database: DatabaseConfig{
			Driver: DefaultDriver,
			DSN:    filepath.Join(configDir, DefaultDatabaseFile),
		},
		LogLevel: DefaultLogLevel,
	}
}
