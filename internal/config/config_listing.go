package config

import "time"

// ListingConfig holds configuration for the remote conference listing service
type ListingConfig struct {
	URL             string        `env:"URL" envDefault:"http://localhost:5002"`
	Path            string        `env:"PATH" envDefault:"/conferences"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"600s"`
}

// Endpoint returns the full URL the conference collection is fetched from
func (c *ListingConfig) Endpoint() string {
	return c.URL + c.Path
}
