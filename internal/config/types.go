package config

// RosterConfig is the top-level configuration structure for roster.
type RosterConfig struct {
	Database DatabaseConfig `yaml:"database"`
	LogLevel string         `yaml:"logLevel,omitempty" env:"ROSTER_LOG_LEVEL"` // debug, info, warn or error (default: warn)
	NoColor  bool           `yaml:"noColor,omitempty" env:"ROSTER_NO_COLOR"`   // Disable colored status lines
}

// DatabaseConfig selects and tunes the SQL database holding the roster.
type DatabaseConfig struct {
	Driver       string `yaml:"driver,omitempty" env:"ROSTER_DB_DRIVER"`                 // sqlite or postgres (default: sqlite)
	DSN          string `yaml:"dsn,omitempty" env:"ROSTER_DB_DSN"`                       // File path for sqlite, connection URL for postgres
	MaxOpenConns int    `yaml:"maxOpenConns,omitempty" env:"ROSTER_DB_MAX_OPEN_CONNS"` // 0 keeps the driver default
}
