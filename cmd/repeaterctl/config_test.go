package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surrealdb/repeater.go/pkg/constants"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, "studio", config.Personality)
	assert.Equal(t, "zerolog", config.Log.Backend)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ValidConfig", func(c *Config) {}, ""},
		{"YAMLCatalog", func(c *Config) { c.CatalogPath = "catalog.yml" }, ""},
		{"UnknownCatalogFormat", func(c *Config) { c.CatalogPath = "catalog.toml" }, "catalog"},
		{"BadPersonality", func(c *Config) { c.Personality = "retro" }, "personality"},
		{"BadBackend", func(c *Config) { c.Log.Backend = "syslog" }, "invalid log backend"},
		{"BadLevel", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"BadSlogFormat", func(c *Config) { c.Log.Backend = "slog"; c.Log.Format = "xml" }, "slog format"},
		{"EmptySection", func(c *Config) { c.Sections = []string{"hero", ""} }, "empty section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, constants.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("REPEATER_LOG_LEVEL", "")
	t.Setenv("REPEATER_CATALOG", "")

	path := filepath.Join(t.TempDir(), "repeaterctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog: site.json
personality: classic
sections: [hero, body]
log:
  backend: slog
  format: json
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "site.json", config.CatalogPath)
	assert.Equal(t, "classic", config.Personality)
	assert.Equal(t, []string{"hero", "body"}, config.Sections)
	assert.Equal(t, "slog", config.Log.Backend)
	assert.Equal(t, "json", config.Log.Format)
	// unset keys keep their defaults
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REPEATER_LOG_LEVEL", "debug")
	t.Setenv("REPEATER_CATALOG", "/data/catalog.cbor")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/data/catalog.cbor", config.CatalogPath)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [not, a, map]"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, constants.ErrInvalidConfig)
}
