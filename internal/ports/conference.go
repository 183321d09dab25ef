package ports

import (
	"context"

	"github.com/agregator/conference-board/internal/domain"
)

// ConferenceProvider defines the interface for fetching the conference collection
// from the aggregation service. The full collection is returned on every call.
type ConferenceProvider interface {
	// GetConferences retrieves all available conferences
	GetConferences(ctx context.Context) ([]domain.Conference, error)
}
