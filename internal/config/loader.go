package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mergington/activities/internal/logging"
)

// Config captures environment driven configuration values for the activities service.
type Config struct {
	HTTPPort        int           `env:"ACTIVITIES_HTTP_PORT" envDefault:"8000"`
	SeedFile        string        `env:"ACTIVITIES_SEED_FILE"`
	LogLevel        string        `env:"ACTIVITIES_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"ACTIVITIES_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"ACTIVITIES_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Load parses configuration values from the current process environment.
//
// Every variable is optional. Values that parse but fall outside their allowed
// range are collected and reported together.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.SeedFile = strings.TrimSpace(cfg.SeedFile)
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	invalid := make([]string, 0, 4)
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		invalid = append(invalid, "ACTIVITIES_HTTP_PORT")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		invalid = append(invalid, "ACTIVITIES_LOG_LEVEL")
	}
	if cfg.LogFormat != logging.FormatJSON && cfg.LogFormat != logging.FormatText {
		invalid = append(invalid, "ACTIVITIES_LOG_FORMAT")
	}
	if cfg.ShutdownTimeout <= 0 {
		invalid = append(invalid, "ACTIVITIES_SHUTDOWN_TIMEOUT")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
