package config

import (
	"github.com/knadh/koanf/v2"
)

// Config represents the overall application configuration structure.
// It includes sections for application settings, logging preferences, and
// statement rendering defaults. The koanf.Koanf instance allows for flexible
// access to additional custom keys not explicitly defined in the struct.
type Config struct {
	App       AppConfig       `koanf:"app" json:"app" yaml:"app"`
	Log       LogConfig       `koanf:"log" json:"log" yaml:"log"`
	Statement StatementConfig `koanf:"statement" json:"statement" yaml:"statement"`

	// k holds the underlying Koanf instance for flexible access to custom configurations
	k *koanf.Koanf `json:"-" yaml:"-"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string `koanf:"name" json:"name" yaml:"name" validate:"required"`
	Version string `koanf:"version" json:"version" yaml:"version" validate:"required"`
	Env     string `koanf:"env" json:"env" yaml:"env" validate:"oneof=development staging production"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty"`
}

// StatementConfig holds defaults applied to statements built from the CLI.
type StatementConfig struct {
	Vendor string      `koanf:"vendor" json:"vendor" yaml:"vendor" validate:"oneof=generic postgresql oracle"`
	Limit  LimitConfig `koanf:"limit" json:"limit" yaml:"limit"`
}

// LimitConfig bounds the row limit. Zero disables either setting.
type LimitConfig struct {
	Default int `koanf:"default" json:"default" yaml:"default" validate:"gte=0"`
	Max     int `koanf:"max" json:"max" yaml:"max" validate:"gte=0"`
}
