// Package config loads folio settings from defaults, an optional config file
// and the environment, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the complete folio configuration.
type Config struct {
	Addr         string `mapstructure:"addr"`
	// Data is the site document path; empty uses the bundled sample.
	Data         string `mapstructure:"data"`
	ImagesDir    string `mapstructure:"images_dir"`
	Locale       string `mapstructure:"locale"`
	PresentLabel string `mapstructure:"present_label"`
	LogLevel     string `mapstructure:"log_level"`
	GinMode      string `mapstructure:"gin_mode"`
	// HashSalt salts hashed client addresses; empty generates one per process.
	HashSalt     string `mapstructure:"hash_salt"`
}

const (
	DefaultAddr      = ":8080"
	DefaultImagesDir = "./images"
)

// Load reads the configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("folio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(configDir())

	_ = v.BindEnv("addr", "FOLIO_ADDR")
	_ = v.BindEnv("data", "FOLIO_DATA")
	_ = v.BindEnv("images_dir", "FOLIO_IMAGES")
	_ = v.BindEnv("locale", "FOLIO_LOCALE")
	_ = v.BindEnv("present_label", "FOLIO_PRESENT_LABEL")
	_ = v.BindEnv("log_level", "FOLIO_LOG_LEVEL")
	_ = v.BindEnv("gin_mode", "GIN_MODE")
	_ = v.BindEnv("hash_salt", "FOLIO_HASH_SALT")

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("images_dir", DefaultImagesDir)
	v.SetDefault("locale", "en")
	v.SetDefault("present_label", "Present")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	// PORT is what most hosting platforms set.
	// It yields to an explicit FOLIO_ADDR or config file entry.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FOLIO_ADDR") == "" && !v.InConfig("addr") {
		cfg.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	return &cfg, nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "folio")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "folio")
}
