// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. All fields are
// optional; nil means "use the built-in default". Flags override config.
type FileConfig struct {
	Dataset DatasetConfig `toml:"dataset"`
	Sabio   SabioConfig   `toml:"sabio"`
	Cache   CacheConfig   `toml:"cache"`
}

// DatasetConfig maps dataset-related settings.
type DatasetConfig struct {
	Path *string `toml:"path"`
}

// SabioConfig maps SABIO-RK client settings.
type SabioConfig struct {
	BaseURL        *string `toml:"base-url"`
	TimeoutSeconds *int    `toml:"timeout-seconds"`
}

// CacheConfig maps fetch-cache settings.
type CacheConfig struct {
	Path        *string `toml:"path"`
	MaxAgeHours *int    `toml:"max-age-hours"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
