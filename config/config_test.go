package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, defaults.CacheDir, cfg.CacheDir)
	require.Equal(t, defaults.BindAddr, cfg.BindAddr)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
cache_dir = "/var/lib/iffserver"
cors_domain = "https://treinplanner.example"
bind_addr = "127.0.0.1:9000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/iffserver", cfg.CacheDir)
	require.Equal(t, "https://treinplanner.example", cfg.CORSDomain)
	require.Equal(t, "127.0.0.1:9000", cfg.BindAddr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`cache_dir = "/from/file"`), 0o644))

	t.Setenv(envCacheDir, "/from/env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/from/env", cfg.CacheDir)
}
