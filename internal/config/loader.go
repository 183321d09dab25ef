package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and optionally from a .env file.
// It returns a pointer to the Config struct or an error if parsing or validation fails.
func Load() (*Config, error) {
	// Try to load .env file, but ignore error if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values that env tags cannot express
func (c *Config) Validate() error {
	var errs []error
	if err := c.Mode.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Cache.Backend.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Cache.Key == "" {
		errs = append(errs, errors.New("cache key must not be empty"))
	}
	if c.Board.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.Board.PageSize))
	}
	if c.Board.MaxVisibleButtons < 1 {
		errs = append(errs, fmt.Errorf("max visible buttons must be positive, got %d", c.Board.MaxVisibleButtons))
	}
	if c.Listing.RefreshInterval <= 0 {
		errs = append(errs, errors.New("refresh interval must be greater than 0"))
	}
	return errors.Join(errs...)
}

// MustLoad loads the configuration and exits if it fails.
// This is useful for initialization in main() where we want to fail fast.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
