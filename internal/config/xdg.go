// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config location.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "bioopti", "config.toml")
}

// DefaultDatasetPath returns the default enzyme dataset location.
func DefaultDatasetPath() string {
	return filepath.Join(XDGDataHome(), "bioopti", "enzyme_data.json")
}

// DefaultCachePath returns the default path for the SABIO-RK fetch cache.
func DefaultCachePath() string {
	return filepath.Join(XDGDataHome(), "bioopti", "sabio_cache.db")
}
