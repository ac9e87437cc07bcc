package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	lvl, err := cfg.slogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
addr: "127.0.0.1:9090"
log_level: debug
cors:
  allowed_origins: ["https://versi.example.org"]
store:
  in_memory: true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, []string{"https://versi.example.org"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Store.InMemory)
	assert.Equal(t, "data/poems", cfg.Store.Path, "unset keys keep their default")
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)

	lvl, err := cfg.slogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "adress: \":80\"\n"},
		{"bad log level", "log_level: loud\n"},
		{"non-positive body limit", "max_body_bytes: 0\n"},
		{"no store location", "store:\n  path: \"\"\n"},
		{"malformed yaml", "addr: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
