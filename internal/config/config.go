// Package config loads the YAML configuration of the superhex command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all command configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig holds board construction settings.
type BoardConfig struct {
	Radius   int  `yaml:"radius"`   // rings around the center, >= 1
	Validate bool `yaml:"validate"` // run the full invariant check after building
	Dump     bool `yaml:"dump"`     // log every field at debug level
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Board: BoardConfig{Radius: 3, Validate: true},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default, so keys left out keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Empty strings in the file fall back to defaults as well.
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Board.Radius < 1 {
		return fmt.Errorf("%w: board.radius must be >= 1, got %d", ErrInvalidConfig, c.Board.Radius)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
