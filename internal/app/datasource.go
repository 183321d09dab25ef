package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/domain"
	"github.com/agregator/conference-board/internal/metrics"
	"github.com/agregator/conference-board/internal/ports"
)

// DataSourceConfig holds the dependencies and settings of a DataSource
type DataSourceConfig struct {
	Provider        ports.ConferenceProvider
	Cache           ports.CacheStore
	Reporter        ports.ErrorReporter
	Logger          *slog.Logger
	Clock           clockwork.Clock
	CacheKey        string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

// Validate checks required fields and fills in defaults
func (cfg *DataSourceConfig) Validate() error {
	if cfg.Provider == nil {
		return errors.New("conference provider is required")
	}
	if cfg.Cache == nil {
		return errors.New("cache store is required")
	}
	if cfg.CacheKey == "" {
		return errors.New("cache key is required")
	}
	if cfg.RefreshInterval <= 0 {
		return errors.New("refresh interval must be greater than 0")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return nil
}

// DataSource owns the conference collection: it reads the cache on first load,
// refreshes from the listing service and writes successful fetches back.
//
// Every refresh takes a generation when it starts. A commit is dropped when a
// refresh that started later has already committed, so overlapping fetches
// resolve to the most recently started one.
type DataSource struct {
	cfg     DataSourceConfig
	log     *slog.Logger
	nextGen atomic.Uint64

	// mu guards snapshot and serialises the cache write with the snapshot swap
	mu       sync.RWMutex
	snapshot domain.Snapshot
}

// NewDataSource creates a DataSource, retrieving configuration from context
func NewDataSource(
	ctx context.Context,
	provider ports.ConferenceProvider,
	cache ports.CacheStore,
	reporter ports.ErrorReporter,
) (*DataSource, error) {
	cfg := config.GetConfig(ctx)
	return NewDataSourceWithConfig(DataSourceConfig{
		Provider:        provider,
		Cache:           cache,
		Reporter:        reporter,
		CacheKey:        cfg.Cache.Key,
		Timeout:         cfg.Listing.Timeout,
		RefreshInterval: cfg.Listing.RefreshInterval,
	})
}

// NewDataSourceWithConfig creates a DataSource with explicit configuration
func NewDataSourceWithConfig(cfg DataSourceConfig) (*DataSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DataSource{
		cfg: cfg,
		log: cfg.Logger.With("component", "datasource"),
		snapshot: domain.Snapshot{
			Conferences: []domain.Conference{},
			Origin:      domain.SnapshotOriginNone,
		},
	}, nil
}

// Snapshot returns the latest committed snapshot
func (d *DataSource) Snapshot() domain.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot
}

// Load commits the cached collection when one is stored and decodes, without
// touching the network. Otherwise it refreshes.
func (d *DataSource) Load(ctx context.Context) domain.Snapshot {
	raw, ok, err := d.cfg.Cache.Get(ctx, d.cfg.CacheKey)
	switch {
	case err != nil:
		metrics.CacheLoadTotal.WithLabelValues(metrics.CacheError).Inc()
		d.report(ctx, fmt.Errorf("failed to read cache: %w", err), "load")
	case !ok:
		metrics.CacheLoadTotal.WithLabelValues(metrics.CacheMiss).Inc()
		d.log.InfoContext(ctx, "cache is empty, fetching conferences", "key", d.cfg.CacheKey)
	default:
		var conferences []domain.Conference
		if err := json.Unmarshal(raw, &conferences); err != nil {
			metrics.CacheLoadTotal.WithLabelValues(metrics.CacheCorrupt).Inc()
			d.report(ctx, fmt.Errorf("failed to decode cached conferences: %w", err), "load")
			break
		}

		metrics.CacheLoadTotal.WithLabelValues(metrics.CacheHit).Inc()
		snap, _ := d.commit(ctx, d.nextGen.Add(1), conferences, domain.SnapshotOriginCache, nil, d.cachedAt(ctx))
		d.log.InfoContext(ctx, "loaded conferences from cache",
			"key", d.cfg.CacheKey,
			"count", len(snap.Conferences),
		)
		return snap
	}

	return d.Refresh(ctx)
}

// Refresh fetches the full collection from the listing service. Errors are
// reported and swallowed: the previous snapshot stays in place and is marked loaded.
func (d *DataSource) Refresh(ctx context.Context) domain.Snapshot {
	gen := d.nextGen.Add(1)
	log := d.log.With("refresh", uuid.NewString(), "generation", gen)

	start := d.cfg.Clock.Now()
	defer func() {
		metrics.RefreshDuration.Observe(d.cfg.Clock.Since(start).Seconds())
	}()

	fetchCtx := ctx
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	log.DebugContext(ctx, "refreshing conferences")
	conferences, err := d.cfg.Provider.GetConferences(fetchCtx)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues(metrics.ResultError).Inc()
		if !errors.Is(err, context.Canceled) {
			d.report(ctx, fmt.Errorf("failed to refresh conferences: %w", err), "refresh")
		}
		return d.markLoaded()
	}
	if conferences == nil {
		conferences = []domain.Conference{}
	}

	payload, err := json.Marshal(conferences)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues(metrics.ResultError).Inc()
		d.report(ctx, fmt.Errorf("failed to encode conferences: %w", err), "refresh")
		return d.markLoaded()
	}

	snap, committed := d.commit(ctx, gen, conferences, domain.SnapshotOriginNetwork, payload, time.Time{})
	if !committed {
		metrics.RefreshTotal.WithLabelValues(metrics.ResultStale).Inc()
		log.InfoContext(ctx, "discarding stale refresh", "committedGeneration", snap.Generation)
		return snap
	}

	metrics.RefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.InfoContext(ctx, "refreshed conferences", "count", len(conferences))
	return snap
}

// Run loads once and then refreshes on every tick until ctx is cancelled
func (d *DataSource) Run(ctx context.Context) error {
	d.log.InfoContext(ctx, "starting refresh loop", "interval", d.cfg.RefreshInterval)

	d.safely(ctx, d.Load)

	ticker := d.cfg.Clock.NewTicker(d.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.log.InfoContext(ctx, "refresh loop stopped")
			return ctx.Err()
		case <-ticker.Chan():
			d.safely(ctx, d.Refresh)
		}
	}
}

// safely runs fn with panic recovery so the refresh loop survives a bad response
func (d *DataSource) safely(ctx context.Context, fn func(context.Context) domain.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RefreshTotal.WithLabelValues(metrics.ResultPanic).Inc()
			d.report(ctx, fmt.Errorf("refresh panicked: %v", r), "run")
			d.markLoaded()
		}
	}()
	fn(ctx)
}

// cachedAt returns when the cache entry was written, or the zero time when
// the store does not track it
func (d *DataSource) cachedAt(ctx context.Context) time.Time {
	ts, ok := d.cfg.Cache.(ports.CacheTimestamps)
	if !ok {
		return time.Time{}
	}
	updatedAt, found, err := ts.UpdatedAt(ctx, d.cfg.CacheKey)
	if err != nil {
		d.log.DebugContext(ctx, "cache timestamp unavailable", "error", err)
		return time.Time{}
	}
	if !found {
		return time.Time{}
	}
	return updatedAt.UTC()
}

// commit swaps the snapshot and, when payload is set, overwrites the cache entry.
// A zero updatedAt stamps the snapshot with the current time.
// It returns the current snapshot and whether gen was committed.
func (d *DataSource) commit(
	ctx context.Context,
	gen uint64,
	conferences []domain.Conference,
	origin domain.SnapshotOrigin,
	payload []byte,
	updatedAt time.Time,
) (domain.Snapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen < d.snapshot.Generation {
		d.snapshot.Loaded = true
		return d.snapshot, false
	}

	// The write stays under mu so the cache never holds an older generation
	// than the snapshot. Snapshot readers wait for it, at most for Timeout.
	if payload != nil {
		if err := d.put(ctx, payload); err != nil {
			metrics.CacheWriteErrorsTotal.Inc()
			d.report(ctx, fmt.Errorf("failed to write cache: %w", err), "commit")
		}
	}

	if updatedAt.IsZero() {
		updatedAt = d.cfg.Clock.Now().UTC()
	}
	d.snapshot = domain.Snapshot{
		Conferences: conferences,
		Generation:  gen,
		Origin:      origin,
		UpdatedAt:   updatedAt,
		Loaded:      true,
	}
	metrics.Conferences.Set(float64(len(conferences)))
	metrics.Generation.Set(float64(gen))

	return d.snapshot, true
}

func (d *DataSource) put(ctx context.Context, payload []byte) error {
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}
	return d.cfg.Cache.Put(ctx, d.cfg.CacheKey, payload)
}

func (d *DataSource) markLoaded() domain.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snapshot.Loaded = true
	return d.snapshot
}

func (d *DataSource) report(ctx context.Context, err error, operation string) {
	if d.cfg.Reporter == nil {
		d.log.ErrorContext(ctx, "recovered error", "error", err, "operation", operation)
		return
	}
	d.cfg.Reporter.ReportError(ctx, err, map[string]string{
		"component": "datasource",
		"operation": operation,
	})
}
