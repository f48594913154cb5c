// Package config handles the pigame configuration file and data paths.
package config

import (
	"os"
	"path/filepath"
)

// BaseDir returns the pigame data directory (~/.pigame).
func BaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".pigame")
}

// DefaultConfigPath returns the default JSON config path.
func DefaultConfigPath() string {
	return filepath.Join(BaseDir(), "config.json")
}

// DefaultStatsPath returns the default path for the session history file.
func DefaultStatsPath() string {
	return filepath.Join(BaseDir(), "stats.json")
}
