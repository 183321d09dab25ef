// Package observability forwards locally recovered errors to logs and Sentry.
package observability

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/getsentry/sentry-go"

	"github.com/agregator/conference-board/internal/ports"
)

// LogReporter writes recovered errors to a slog logger
type LogReporter struct {
	logger *slog.Logger
}

var _ ports.ErrorReporter = (*LogReporter)(nil)

// NewLogReporter creates a reporter logging through logger
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// ReportError logs err with the tags as attributes
func (r *LogReporter) ReportError(ctx context.Context, err error, tags map[string]string) {
	args := make([]any, 0, 2+len(tags)*2)
	args = append(args, "error", err)
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		args = append(args, k, tags[k])
	}
	r.logger.ErrorContext(ctx, "recovered error", args...)
}

// SentryReporter captures recovered errors as Sentry exceptions
type SentryReporter struct {
	hub *sentry.Hub
}

var _ ports.ErrorReporter = (*SentryReporter)(nil)

// NewSentryReporter creates a reporter using hub, or the current hub when nil
func NewSentryReporter(hub *sentry.Hub) *SentryReporter {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryReporter{hub: hub}
}

// ReportError sends err to Sentry tagged with tags
func (r *SentryReporter) ReportError(ctx context.Context, err error, tags map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = r.hub
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// MultiReporter fans an error out to several reporters
type MultiReporter []ports.ErrorReporter

var _ ports.ErrorReporter = MultiReporter(nil)

// ReportError forwards err to every reporter
func (m MultiReporter) ReportError(ctx context.Context, err error, tags map[string]string) {
	for _, r := range m {
		r.ReportError(ctx, err, tags)
	}
}
