package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, parsed from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemoData bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
