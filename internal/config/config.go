// Package config loads server configuration from defaults, an optional
// config file, and SHEETSRV_* environment variables, in increasing
// precedence. Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server settings.
type Config struct {
	// SpreadsheetsDir is the directory holding workbook files.
	SpreadsheetsDir string `mapstructure:"spreadsheets_dir"`
	// ImportsDir is the staging directory for import_file. Empty disables
	// the import tools.
	ImportsDir string `mapstructure:"imports_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in configuration, matching the container
// layout: workbooks in ./spreadsheets, staged files in /imports.
func Default() Config {
	return Config{
		SpreadsheetsDir: "spreadsheets",
		ImportsDir:      "/imports",
		LogLevel:        "info",
	}
}

// Load reads configuration. cfgFile, when non-empty, must exist; otherwise
// a sheetsrv.yaml in the working directory is used when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("spreadsheets_dir", defaults.SpreadsheetsDir)
	v.SetDefault("imports_dir", defaults.ImportsDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("sheetsrv")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("sheetsrv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
