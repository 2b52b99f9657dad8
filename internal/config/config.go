package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
}

// Database contains database file parameters.
type Database struct {
	Path string `env:"PATH" envDefault:"task_manager.db"`
}

// Session contains session file parameters.
type Session struct {
	Path string `env:"PATH" envDefault:"session.txt"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
