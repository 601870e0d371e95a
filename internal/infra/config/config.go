// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Product ProductConfig `yaml:"product"`
	Convert ConvertConfig `yaml:"convert"`
	Watch   WatchConfig   `yaml:"watch"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Output string `yaml:"output" default:"stderr"` // "stdout", "stderr", or "file"
	File   string `yaml:"file"`                    // log file path when Output is "file"
}

// ProductConfig stamps the PRODUCT element of exported documents.
type ProductConfig struct {
	Name    string `yaml:"name" default:"mixport" validate:"required"`
	Version string `yaml:"version" default:"1.0.0" validate:"required"`
	Company string `yaml:"company" default:"mixport"`
}

// ConvertConfig represents conversion defaults.
type ConvertConfig struct {
	DefaultInputFormat  string         `yaml:"default_input_format" default:"traktor" validate:"required"`
	DefaultOutputFormat string         `yaml:"default_output_format" default:"rekordbox" validate:"required"`
	Options             map[string]any `yaml:"options"`
}

// WatchConfig represents watch mode configuration.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" default:"500" validate:"gte=0,lte=60000"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file. Environment variables take
// precedence over file values for log settings.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MIXPORT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MIXPORT_LOG_OUTPUT"); v != "" {
		c.Log.Output = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
