package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP server configuration, read from the environment.
type Config struct {
	// Addr is the HTTP listen address (e.g. :8080, 0.0.0.0:8080).
	Addr string `env:"PIXELSAGA_ADDR" envDefault:":8080"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"PIXELSAGA_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
