// Package config manages environment variables.
//
// It reads variables from the environment (optionally seeded from a `.env`
// file), loads them into structured Go types, and validates that required
// values are present so the app fails fast on bad or missing config.
//
// Env vars use the CATALOG_ prefix and dot-delimited nesting, e.g.
// CATALOG_SERVER.PORT -> server.port -> Config.Server.Port.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the process
	// environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// envPrefix selects which environment variables belong to this app.
const envPrefix = "CATALOG_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags enforce presence via go-playground/validator.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Keys keep their dot nesting after the prefix is trimmed and the name
	// lowercased: CATALOG_DATABASE.HOST -> database.host.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}
