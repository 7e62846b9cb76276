// Package config resolves agenthub runtime settings from an optional TOML
// file and AGENTHUB_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/agenthub/logging"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile = "agenthub.toml"

	EnvConfigFile     = "AGENTHUB_CONFIG"
	EnvLogLevel       = "AGENTHUB_LOG_LEVEL"
	EnvLogFormat      = "AGENTHUB_LOG_FORMAT"
	EnvStrictRegistry = "AGENTHUB_STRICT_REGISTRY"
)

// Config is the root configuration of the agenthub command.
type Config struct {
	Log LogConfig `toml:"log"`
	// StrictRegistry makes duplicate agent names fail start-up instead of
	// replacing the earlier registration.
	StrictRegistry bool `toml:"strict_registry"`
}

// LogConfig controls the diagnostic logger. Logs always go to stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load reads the config file named by AGENTHUB_CONFIG, falling back to
// agenthub.toml in the working directory when present, then applies
// defaults and environment overrides.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		if _, err := os.Stat(BaseConfigFile); err == nil {
			path = BaseConfigFile
		}
	}

	return LoadFile(path)
}

// LoadFile is Load with an explicit file path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Logging converts the log settings into a logging.Config.
func (c *Config) Logging() *logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)

	return &logging.Config{
		Level:     level,
		Format:    c.Log.Format,
		Output:    os.Stderr,
		Component: "agenthub",
	}
}

func (c *Config) finalize() error {
	c.loadDefaults()

	if err := c.loadEnv(); err != nil {
		return err
	}

	return c.validate()
}

func (c *Config) loadDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvStrictRegistry); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvStrictRegistry, err)
		}
		c.StrictRegistry = strict
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q: expected text or json", c.Log.Format)
	}

	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
