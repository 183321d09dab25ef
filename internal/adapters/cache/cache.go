// Package cache opens the CacheStore selected by configuration.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agregator/conference-board/internal/adapters/cache/file"
	"github.com/agregator/conference-board/internal/adapters/cache/memory"
	"github.com/agregator/conference-board/internal/adapters/cache/sqlite"
	"github.com/agregator/conference-board/internal/adapters/elasticsearch"
	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/ports"
)

// Open creates the configured cache backend. The returned close function
// releases any resources held by the backend and is never nil.
func Open(ctx context.Context) (ports.CacheStore, func() error, error) {
	cfg := config.GetConfig(ctx)
	noop := func() error { return nil }

	slog.Default().Info("opening cache", "backend", cfg.Cache.Backend)

	switch cfg.Cache.Backend {
	case config.CacheBackendFile:
		s, err := file.New(cfg.Cache.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.CacheBackendSQLite:
		s, err := sqlite.New(cfg.Cache.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.CacheBackendElasticsearch:
		c, err := elasticsearch.New(ctx)
		if err != nil {
			return nil, noop, err
		}
		if err := c.EnsureIndex(ctx); err != nil {
			return nil, noop, fmt.Errorf("preparing cache index: %w", err)
		}
		return c, noop, nil

	case config.CacheBackendMemory:
		return memory.New(), noop, nil
	}

	return nil, noop, cfg.Cache.Backend.Validate()
}

var (
	_ ports.CacheStore = (*file.Store)(nil)
	_ ports.CacheStore = (*sqlite.Store)(nil)
	_ ports.CacheStore = (*memory.Store)(nil)
	_ ports.CacheStore = (*elasticsearch.Client)(nil)

	_ ports.CacheTimestamps = (*file.Store)(nil)
	_ ports.CacheTimestamps = (*sqlite.Store)(nil)
	_ ports.CacheTimestamps = (*elasticsearch.Client)(nil)
)
