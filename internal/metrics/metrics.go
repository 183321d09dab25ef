// Package metrics holds the prometheus collectors of the conference board.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh results
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultStale   = "stale"
	ResultPanic   = "panic"
)

// Cache load results
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheCorrupt = "corrupt"
	CacheError   = "error"
)

var (
	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conference_board_refresh_total",
		Help: "Network refreshes of the conference collection by result.",
	}, []string{"result"})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "conference_board_refresh_duration_seconds",
		Help:    "Duration of network refreshes.",
		Buckets: prometheus.DefBuckets,
	})

	CacheLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conference_board_cache_load_total",
		Help: "Cache reads on initial load by result.",
	}, []string{"result"})

	CacheWriteErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conference_board_cache_write_errors_total",
		Help: "Failed cache writes after a successful fetch.",
	})

	Conferences = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "conference_board_conferences",
		Help: "Number of conferences in the committed snapshot.",
	})

	Generation = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "conference_board_generation",
		Help: "Generation of the committed snapshot.",
	})

	UnknownSourceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conference_board_unknown_source_total",
		Help: "Records rendered with a source that has no registered origin.",
	}, []string{"source"})

	MalformedDateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conference_board_malformed_date_total",
		Help: "Records whose date fell back to the raw text.",
	}, []string{"source"})
)
