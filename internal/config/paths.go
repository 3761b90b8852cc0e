package config

import (
	"os"
	"path/filepath"
)

// Paths contains commonly used file paths.
type Paths struct {
	Cache       string // SQLite cache database
	Credentials string // Active account credentials
	Logs        string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Cache:       filepath.Join(cfg.BaseDir, "drillkit.db"),
		Credentials: filepath.Join(cfg.BaseDir, "credentials.json"),
		Logs:        filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory (~/.drillkit).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".drillkit"
	}
	return filepath.Join(home, ".drillkit")
}
