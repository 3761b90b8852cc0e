// Package config handles application configuration management.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all drillkit data (~/.drillkit)
	BaseDir string

	// Backend API settings
	Backend BackendConfig

	// Debug enables verbose logging, including SQL statements.
	Debug bool
}

// BackendConfig holds remote training-service settings.
type BackendConfig struct {
	BaseURL   string
	Token     string
	RateLimit int // requests per minute
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("DRILLKIT_HOME"); dir != "" {
		cfg.BaseDir = dir
	}

	if apiURL := os.Getenv("DRILLKIT_API_URL"); apiURL != "" {
		cfg.Backend.BaseURL = apiURL
	}

	if token := os.Getenv("DRILLKIT_TOKEN"); token != "" {
		cfg.Backend.Token = token
	}

	if os.Getenv("DRILLKIT_DEBUG") != "" {
		cfg.Debug = true
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		filepath.Join(cfg.BaseDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
