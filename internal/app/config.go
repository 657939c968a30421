package app

import (
	"roster/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces the debug log level.
	Debug bool

	// Quiet hides the progress spinner and log output.
	Quiet bool

	// NoColor disables colored status lines.
	NoColor bool

	// Configuration directory holding config.yaml.
	ConfigPath string

	// Driver and DSN override the configured database when non-empty.
	Driver string
	DSN    string

	// Resolved configuration, set by NewApplication.
	RosterConfig *config.RosterConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug, quiet, noColor bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
		Quiet:      quiet,
		NoColor:    noColor,
	}
}

// resolve loads the configuration file and environment and applies the flag
// overrides on top.
func (c *Config) resolve() (config.RosterConfig, error) {
	rc, err := config.LoadConfig(c.ConfigPath)
	if err != nil {
		return config.RosterConfig{}, err
	}
	if c.Driver != "" {
		rc.Database.Driver = c.Driver
	}
	if c.DSN != "" {
		rc.Database.DSN = c.DSN
	}
	if c.Debug {
		rc.LogLevel = "debug"
	}
	if c.NoColor {
		rc.NoColor = true
	}
	if err := rc.Validate(); err != nil {
		return config.RosterConfig{}, err
	}
	return rc, nil
}
