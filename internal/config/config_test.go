package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agenthub/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigFile, EnvLogLevel, EnvLogFormat, EnvStrictRegistry} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agenthub.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.StrictRegistry)
	assert.Equal(t, logging.LevelWarn, cfg.Logging().Level)
}

func TestLoadFile_File(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
strict_registry = true

[log]
level = "debug"
format = "JSON"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.StrictRegistry)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "[log]\nlevel = \"debug\"\n")

	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvStrictRegistry, "1")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.StrictRegistry)
}

func TestLoad_ConfigEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigFile, writeFile(t, "strict_registry = true\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StrictRegistry)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "level", env: map[string]string{EnvLogLevel: "loud"}},
		{name: "format", env: map[string]string{EnvLogFormat: "xml"}},
		{name: "strict", env: map[string]string{EnvStrictRegistry: "maybe"}},
		{name: "toml", file: "[log\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
