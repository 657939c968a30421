package config

import (
	"fmt"
	"strings"

	"roster/internal/storage"
	"roster/pkg/logging"
)

// Validate checks the resolved configuration. It returns nil, a single
// ConfigurationError, or a ConfigurationErrorCollection.
func (c RosterConfig) Validate() error {
	var errs ConfigurationErrorCollection

	if _, err := storage.ParseDialect(c.Database.Driver); err != nil {
		errs.Add(ConfigurationError{
			Field:       "database.driver",
			ErrorType:   "validation",
			Message:     fmt.Sprintf("unsupported driver %q", c.Database.Driver),
			Suggestions: []string{"Use sqlite or postgres"},
		})
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		errs.Add(ConfigurationError{
			Field:       "database.dsn",
			ErrorType:   "validation",
			Message:     "is required",
			Suggestions: []string{"Set a file path for sqlite or a connection URL for postgres"},
		})
	}

	if c.Database.MaxOpenConns < 0 {
		errs.Add(ConfigurationError{
			Field:     "database.maxOpenConns",
			ErrorType: "validation",
			Message:   fmt.Sprintf("must not be negative, got %d", c.Database.MaxOpenConns),
		})
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs.Add(ConfigurationError{
			Field:     "logLevel",
			ErrorType: "validation",
			Message:   err.Error(),
		})
	}

	switch len(errs.Errors) {
	case 0:
		return nil
	case 1:
		return errs.Errors[0]
	default:
		return errs
	}
}
