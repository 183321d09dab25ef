package ports

import "context"

// ErrorReporter receives errors that are recovered locally and never reach the user
type ErrorReporter interface {
	ReportError(ctx context.Context, err error, tags map[string]string)
}
