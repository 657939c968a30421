package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"roster/pkg/logging"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/roster"
	configFileName = "config.yaml"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from config.yaml in configPath, on top of the
// defaults, and then applies ROSTER_* environment overrides.
func LoadConfig(configPath string) (RosterConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig(configPath)

	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Info("Config", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return RosterConfig{}, NewConfigurationError(configFilePath, "", "io", "failed to read config file: "+err.Error())
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			cfgErr := NewConfigurationError(configFilePath, "", "parse", "malformed YAML")
			cfgErr.Details = err.Error()
			cfgErr.Suggestions = []string{"Check the indentation and key names of " + configFileName}
			return RosterConfig{}, cfgErr
		}
		logging.Info("Config", "Loaded configuration from %s", configFilePath)
	}

	if err := applyEnv(&config); err != nil {
		return RosterConfig{}, err
	}
	return config, nil
}

// applyEnv overrides fields whose ROSTER_* variable is set. Unset variables
// leave the field untouched.
func applyEnv(config *RosterConfig) error {
	if err := env.Parse(config); err != nil {
		cfgErr := NewConfigurationError("", "", "env", "invalid environment override")
		cfgErr.Details = err.Error()
		return cfgErr
	}
	return nil
}
