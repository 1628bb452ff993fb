package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LEDGER_"

type Config struct {
	APIURL               string        `koanf:"api_url"`
	RequestTimeout       time.Duration `koanf:"request_timeout"`
	LogLevel             string        `koanf:"log_level"`
	Workers              int           `koanf:"workers"`
	DefaultCategoryColor string        `koanf:"default_category_color"`
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for a backend running locally
	return map[string]interface{}{
		"api_url":                "http://localhost:3000",
		"request_timeout":        "30s",
		"log_level":              "info",
		"workers":                1,
		"default_category_color": "#3B82F6",
	}
}

// Load layers defaults, the optional YAML file at path, and LEDGER_* environment
// variables, later sources winning.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.APIURL) == 0 {
		return errors.New("config: api_url is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}
