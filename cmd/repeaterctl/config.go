package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/surrealdb/repeater.go/internal/codec"
	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/logger"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

// LogConfig selects the logging backend.
type LogConfig struct {
	// Backend is one of zerolog, slog, zap or none.
	Backend string `yaml:"backend"`
	Level   string `yaml:"level"`
	// Format is json or text for slog, and prod or dev for zap.
	Format string `yaml:"format"`
	// File receives zerolog output instead of stderr.
	File string `yaml:"file"`
}

// Config holds the options shared by every command.
type Config struct {
	// Catalog file path; empty uses the built-in demo catalog.
	CatalogPath string `yaml:"catalog"`
	// Personality is studio or classic.
	Personality string `yaml:"personality"`
	// Sections overrides the default section ids.
	Sections []string  `yaml:"sections"`
	Log      LogConfig `yaml:"log"`
}

var validBackends = []string{"zerolog", "slog", "zap", "none"}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Personality: "studio",
		Log: LogConfig{
			Backend: "zerolog",
			Level:   "warn",
			Format:  "text",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. Environment
// variables take precedence over the file.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config: %v", constants.ErrInvalidConfig, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.CatalogPath = getEnvOrDefault("REPEATER_CATALOG", c.CatalogPath)
	c.Personality = getEnvOrDefault("REPEATER_PERSONALITY", c.Personality)
	c.Log.Backend = getEnvOrDefault("REPEATER_LOG_BACKEND", c.Log.Backend)
	c.Log.Level = getEnvOrDefault("REPEATER_LOG_LEVEL", c.Log.Level)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CatalogPath != "" {
		if _, err := codec.FormatFromPath(c.CatalogPath); err != nil {
			return fmt.Errorf("%w: catalog: %v", constants.ErrInvalidConfig, err)
		}
	}
	if _, err := selection.ParsePersonality(c.Personality); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidConfig, err)
	}
	if !slices.Contains(validBackends, c.Log.Backend) {
		return fmt.Errorf("%w: invalid log backend: %s (valid: %v)", constants.ErrInvalidConfig, c.Log.Backend, validBackends)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidConfig, err)
	}
	if c.Log.Backend == "slog" && c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("%w: invalid slog format: %s", constants.ErrInvalidConfig, c.Log.Format)
	}
	for _, id := range c.Sections {
		if id == "" {
			return fmt.Errorf("%w: empty section id", constants.ErrInvalidConfig)
		}
	}
	return nil
}
