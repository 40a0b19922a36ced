// Copyright (c) 2025 Visvasity LLC

// Package config loads the demo program's settings from SUBCOMMAND_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, so the key
// "logger.level" is read from SUBCOMMAND_LOGGER_LEVEL.
const EnvPrefix = "SUBCOMMAND"

// Config is the top-level configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
}

// LoggerConfig controls the diagnostic logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
}

// DispatchConfig controls command dispatch.
type DispatchConfig struct {
	// SuggestThreshold is the edit distance below which registered names are
	// suggested for an unknown command.
	SuggestThreshold int `mapstructure:"suggest_threshold"`
	// SplitStreams writes diagnostics to stderr instead of stdout.
	SplitStreams bool `mapstructure:"split_streams"`
}

// SetDefaults initializes default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "subcommand")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("dispatch.suggest_threshold", 2)
	v.SetDefault("dispatch.split_streams", true)
}

// Load reads the configuration from the environment on top of the defaults
// and validates it.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the values are usable.
func (c *Config) Validate() error {
	if c.Dispatch.SuggestThreshold < 0 {
		return fmt.Errorf("dispatch.suggest_threshold must not be negative")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.Logger.Format)
	}
	return nil
}
