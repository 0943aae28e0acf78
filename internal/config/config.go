// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration for the jokersim binary.
type Config struct {
	HTTPAddr string `env:"JOKERSIM_HTTP_ADDR" envDefault:":8787"`
	DBPath   string `env:"JOKERSIM_DB_PATH" envDefault:"jokersim.db"`
	LogLevel string `env:"JOKERSIM_LOG_LEVEL" envDefault:"info"`
	// Seed is the default batch seed when a request omits one.
	Seed string `env:"JOKERSIM_SEED" envDefault:"JOKERSIM"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
