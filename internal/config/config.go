// Package config loads shade settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither file nor environment sets a value.
const (
	DefaultLogLevel    = "warn"
	DefaultPaddingBase = 10.0
)

// Config holds runtime settings for the shade commands.
type Config struct {
	LogLevel    string  `mapstructure:"log_level"`
	PaddingBase float64 `mapstructure:"padding_base"`
	Database    string  `mapstructure:"database"`
	NoColor     bool    `mapstructure:"no_color"`
}

// Load reads configuration. When path is empty the default location
// ($XDG_CONFIG_HOME/shade/config.yaml) is tried and a missing file is not
// an error; an explicit path must exist. Environment variables use the
// SHADE_ prefix.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("padding_base", DefaultPaddingBase)
	v.SetDefault("database", defaultDatabasePath())
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "shade"))
		}
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shade.db"
	}
	return filepath.Join(dir, "shade", "themes.db")
}
