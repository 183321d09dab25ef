package config

// Config holds all application configuration loaded from environment variables
type Config struct {
	ApplicationConfig
	ObservabilityConfig

	Http    HttpConfig    `envPrefix:"HTTP_"`
	Listing ListingConfig `envPrefix:"LISTING_"`
	Cache   CacheConfig   `envPrefix:"CACHE_"`
	Board   BoardConfig   `envPrefix:"BOARD_"`
}
