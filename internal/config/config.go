// Package config loads themeport configuration from the user config
// directory and THEMEPORT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDirName  = "themeport"
	configFileName = "config"
	configFileType = "yaml"
)

// Config holds all tunable settings.
type Config struct {
	Terminal TerminalConfig `mapstructure:"terminal"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// TerminalConfig bounds the palette color queries sent to the terminal.
type TerminalConfig struct {
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	QueryRetries int           `mapstructure:"query_retries"`
}

// OutputConfig controls human-readable output.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{
			QueryTimeout: 200 * time.Millisecond,
			QueryRetries: 1,
		},
		Output: OutputConfig{Color: true},
		Log:    LogConfig{Level: "warn"},
	}
}

// Load reads configuration from the config file and environment. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir())

	v.SetEnvPrefix("THEMEPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("terminal.query_timeout", defaults.Terminal.QueryTimeout)
	v.SetDefault("terminal.query_retries", defaults.Terminal.QueryRetries)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("log.level", defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Terminal.QueryTimeout <= 0 {
		cfg.Terminal.QueryTimeout = defaults.Terminal.QueryTimeout
	}
	if cfg.Terminal.QueryRetries < 0 {
		cfg.Terminal.QueryRetries = 0
	}

	return cfg, nil
}

func configDir() string {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		userConfigDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(userConfigDir, configDirName)
}
