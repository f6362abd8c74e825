// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the HTTP server needs.
type ServerConfig struct {
	Port             int
	DatabaseURL      string
	ScoreConcurrency int
}

// NewServerConfig builds the server configuration from environment
// variables: DATABASE_URL (required), PORT (default 8080) and
// SCORE_CONCURRENCY (default 0, which lets the discovery service pick).
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	cfg := &ServerConfig{
		Port:        8080,
		DatabaseURL: databaseURL,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if concStr := os.Getenv("SCORE_CONCURRENCY"); concStr != "" {
		conc, err := strconv.Atoi(concStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SCORE_CONCURRENCY: %v", err)
		}
		cfg.ScoreConcurrency = conc
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.ScoreConcurrency < 0 {
		return fmt.Errorf("SCORE_CONCURRENCY must be non-negative, got: %d", c.ScoreConcurrency)
	}
	return nil
}
