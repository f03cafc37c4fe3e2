// Package config holds server configuration parsed from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration
type Config struct {
	// Server
	Port int `env:"POKERLEDGER_PORT" envDefault:"8080"`

	// Storage backend: "memory" or "redis"
	StorageType string `env:"POKERLEDGER_STORAGE" envDefault:"memory"`

	// Redis
	RedisURL          string `env:"POKERLEDGER_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisPoolSize     int    `env:"POKERLEDGER_REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"POKERLEDGER_REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	// Profile file location; the id itself can be overridden with
	// POKERLEDGER_PROFILE
	ProfileFile string `env:"POKERLEDGER_PROFILE_FILE"`

	// Logging
	LogLevel string `env:"POKERLEDGER_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a Config struct
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
