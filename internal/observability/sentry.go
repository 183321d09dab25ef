package observability

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/agregator/conference-board/internal/config"
)

// InitSentry initialises the global Sentry client when a DSN is configured.
// The returned flush func is always safe to call.
func InitSentry(cfg config.ObservabilityConfig, release string) (func(), error) {
	if !cfg.IsSentryConfigured() {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     release,
	})
	if err != nil {
		return func() {}, fmt.Errorf("failed to initialize sentry: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}
