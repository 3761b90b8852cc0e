package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBackendURL, cfg.Backend.BaseURL)
	assert.Equal(t, 60, cfg.Backend.RateLimit)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.BaseDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DRILLKIT_HOME", home)
	t.Setenv("DRILLKIT_API_URL", "http://localhost:9999")
	t.Setenv("DRILLKIT_TOKEN", "test-token")
	t.Setenv("DRILLKIT_DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.BaseDir)
	assert.Equal(t, "http://localhost:9999", cfg.Backend.BaseURL)
	assert.Equal(t, "test-token", cfg.Backend.Token)
	assert.True(t, cfg.Debug)
}

func TestLoadCreatesDirectories(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "drillkit")
	t.Setenv("DRILLKIT_HOME", home)
	t.Setenv("DRILLKIT_API_URL", "")
	t.Setenv("DRILLKIT_TOKEN", "")
	t.Setenv("DRILLKIT_DEBUG", "")

	_, err := Load()
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetPaths(t *testing.T) {
	cfg := &Config{BaseDir: "/tmp/drillkit-test"}
	paths := GetPaths(cfg)

	assert.Equal(t, filepath.Join(cfg.BaseDir, "drillkit.db"), paths.Cache)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "credentials.json"), paths.Credentials)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "logs"), paths.Logs)
}
