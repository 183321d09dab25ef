package config

// ObservabilityConfig holds logging, error reporting and metrics configuration
type ObservabilityConfig struct {
	LogFile           string `env:"LOG_FILE" envDefault:"conference-board.log"`
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	MetricsEnabled    bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsSentryConfigured returns true if a Sentry DSN is set
func (c *ObservabilityConfig) IsSentryConfigured() bool {
	return c.SentryDSN != ""
}
