package configs

import (
	"fmt"
	"os"

	"github.com/asokolsky/secretsettings/internal/errors"
)

// Output formats accepted by the show command.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

type Config struct {
	Defaults Defaults `toml:"defaults"`
}

type Defaults struct {
	File             string `toml:"file"`
	Realm            string `toml:"realm"`
	CheckPermissions bool   `toml:"check_permissions"`
	Output           string `toml:"output"`
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			File:   "secrets.ini",
			Realm:  "",
			Output: OutputYAML,
		},
	}
}

// Validate checks the values that cannot be validated by decoding alone.
func (c *Config) Validate() error {
	switch c.Defaults.Output {
	case OutputYAML, OutputJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", errors.ErrInvalidOutput, c.Defaults.Output)
}

// LoadConfig reads the config file, falling back to DefaultConfig when it does
// not exist. Keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	configPath := ConfigPath()
	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig writes config to the config file.
func SaveConfig(config *Config) error {
	configPath := ConfigPath()
	if configPath == "" {
		return errors.ErrNoConfigDir
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// ConfigExists reports whether the config file is present.
func ConfigExists() bool {
	configPath := ConfigPath()
	if configPath == "" {
		return false
	}
	_, err := os.Stat(configPath)
	return err == nil
}
