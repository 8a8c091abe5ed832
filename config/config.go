package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is read when Load is called without an explicit path.
	DefaultFile = "stmtkit.yaml"

	// EnvPrefix marks environment variables that override configuration keys.
	// STMTKIT_STATEMENT_LIMIT_MAX maps to statement.limit.max.
	EnvPrefix = "STMTKIT_"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. YAML configuration file
// 3. Default values (lowest priority)
//
// An empty path reads DefaultFile when it exists. An explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	return finish(k)
}

// LoadFromBytes loads defaults, then the YAML document in data, then the environment.
func LoadFromBytes(data []byte) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(k)
}

func loadFile(k *koanf.Koanf, path string) error {
	optional := path == ""
	if optional {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// finish applies environment overrides, unmarshals and validates.
func finish(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// Convert STMTKIT_UPPER_CASE to upper.case for koanf
			key = strings.TrimPrefix(key, EnvPrefix)
			return strings.ReplaceAll(strings.ToLower(key), "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Store the Koanf instance for flexible access
	cfg.k = k

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":    "stmtkit",
		"app.version": "dev",
		"app.env":     EnvDevelopment,

		"log.level":  "info",
		"log.pretty": false,

		"statement.vendor":        "generic",
		"statement.limit.default": 0,
		"statement.limit.max":     0,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
