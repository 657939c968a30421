package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterConfig_Validate(t *testing.T) {
	valid := GetDefaultConfig("/tmp/roster")

	tests := []struct {
		name      string
		mutate    func(c *RosterConfig)
		wantField string
	}{
		{"defaults", func(c *RosterConfig) {}, ""},
		{"postgres alias", func(c *RosterConfig) { c.Database.Driver = "postgresql" }, ""},
		{"unknown driver", func(c *RosterConfig) { c.Database.Driver = "mysql" }, "database.driver"},
		{"empty dsn", func(c *RosterConfig) { c.Database.DSN = "  " }, "database.dsn"},
		{"negative pool", func(c *RosterConfig) { c.Database.MaxOpenConns = -1 }, "database.maxOpenConns"},
		{"bad log level", func(c *RosterConfig) { c.LogLevel = "loud" }, "logLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Equal(t, "validation", cfgErr.ErrorType)
		})
	}
}

func TestRosterConfig_ValidateCollectsErrors(t *testing.T) {
	cfg := RosterConfig{Database: DatabaseConfig{Driver: "oracle"}, LogLevel: "loud"}

	err := cfg.Validate()
	require.Error(t, err)

	var coll ConfigurationErrorCollection
	require.True(t, errors.As(err, &coll))
	assert.Len(t, coll.Errors, 3)
	assert.Contains(t, err.Error(), "3 configuration errors")
}
