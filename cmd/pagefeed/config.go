package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	Selector  string        `env:"PAGEFEED_SELECTOR" envDefault:"main"`
	Timeout   time.Duration `env:"PAGEFEED_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"PAGEFEED_USER_AGENT"`
}

// loadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
