package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/agregator/conference-board/internal/domain"
)

// mockProvider is a mock implementation of ports.ConferenceProvider
type mockProvider struct {
	getConferencesFunc func(ctx context.Context) ([]domain.Conference, error)
}

func (m *mockProvider) GetConferences(ctx context.Context) ([]domain.Conference, error) {
	if m.getConferencesFunc != nil {
		return m.getConferencesFunc(ctx)
	}
	return []domain.Conference{}, nil
}

// mockCache is an in-memory ports.CacheStore whose calls can be overridden
type mockCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	getFunc func(ctx context.Context, key string) ([]byte, bool, error)
	putFunc func(ctx context.Context, key string, value []byte) error
	puts    int
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockCache) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.puts++
	m.mu.Unlock()
	if m.putFunc != nil {
		return m.putFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *mockCache) value(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *mockCache) putCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

// timestampedCache adds ports.CacheTimestamps to mockCache
type timestampedCache struct {
	*mockCache
	updatedAt time.Time
}

func (c *timestampedCache) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	if c.value(key) == nil {
		return time.Time{}, false, nil
	}
	return c.updatedAt, true, nil
}

// recordingReporter collects reported errors
type recordingReporter struct {
	mu     sync.Mutex
	errors []error
	tags   []map[string]string
}

func (r *recordingReporter) ReportError(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
	r.tags = append(r.tags, tags)
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors)
}

func (r *recordingReporter) last() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.errors) == 0 {
		return nil
	}
	return r.errors[len(r.errors)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func conferencesFixture() []domain.Conference {
	return []domain.Conference{
		{Title: "Late", Date: "10.11 - 12.11", Location: "Kazan", Organizers: "KFU", Source: domain.SourceKonferen, Link: "/conf/late"},
		{Title: "Spring", Date: "05.03", Location: "Moscow", Organizers: "MSU", Source: domain.SourceKonferen, Link: "conf/spring"},
		{Title: "Raw", Date: "20.04.2024", Location: "Perm", Organizers: "PSU", Source: domain.SourceKonferencii, Link: "/events/raw"},
		{Title: "Unknown", Date: "01.01", Location: "Omsk", Organizers: "OmSU", Source: "example.org", Link: "/x"},
	}
}
