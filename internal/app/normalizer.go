package app

import (
	"log/slog"
	"sync"

	"github.com/agregator/conference-board/internal/domain"
	"github.com/agregator/conference-board/internal/metrics"
)

// Normalizer turns raw conference records into display entries using the
// origin table. It never fails: unknown sources and malformed dates fall back
// to the raw record.
type Normalizer struct {
	origins     *domain.Origins
	displayYear int
	log         *slog.Logger

	mu     sync.Mutex
	warned map[domain.Source]struct{}
}

// NewNormalizer creates a Normalizer printing day-month dates in displayYear
func NewNormalizer(origins *domain.Origins, displayYear int, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		origins:     origins,
		displayYear: displayYear,
		log:         logger.With("component", "normalizer"),
		warned:      make(map[domain.Source]struct{}),
	}
}

// Normalize builds the display entry for one record
func (n *Normalizer) Normalize(c domain.Conference) domain.Entry {
	entry := domain.Entry{Conference: c, DisplayDate: c.Date}

	origin, err := n.origins.Lookup(c.Source)
	if err != nil {
		metrics.UnknownSourceTotal.WithLabelValues(string(c.Source)).Inc()
		n.warnOnce(c.Source, err)
		return entry
	}

	entry.KnownSource = true
	if c.Link != "" {
		entry.DetailsURL = origin.DetailsURL(c.Link)
	}

	display, err := origin.DisplayDate(c.Date, n.displayYear)
	if err != nil {
		metrics.MalformedDateTotal.WithLabelValues(string(c.Source)).Inc()
		n.log.Debug("date kept as received", "source", c.Source, "date", c.Date, "error", err)
		return entry
	}
	entry.DisplayDate = display

	return entry
}

// NormalizeAll normalizes records in order
func (n *Normalizer) NormalizeAll(cs []domain.Conference) []domain.Entry {
	entries := make([]domain.Entry, len(cs))
	for i, c := range cs {
		entries[i] = n.Normalize(c)
	}
	return entries
}

func (n *Normalizer) warnOnce(source domain.Source, err error) {
	n.mu.Lock()
	_, seen := n.warned[source]
	n.warned[source] = struct{}{}
	n.mu.Unlock()

	if !seen {
		n.log.Warn("no origin registered for source", "source", source, "error", err)
	}
}
