package ports

import (
	"context"

	"github.com/agregator/conference-board/internal/domain"
)

// ConferenceBoard is the driving port used by the terminal UI and the JSON API
type ConferenceBoard interface {
	// Load returns the cached collection if present, otherwise refreshes
	Load(ctx context.Context) domain.Snapshot

	// Refresh fetches from the network; failures keep the previous snapshot
	Refresh(ctx context.Context) domain.Snapshot

	// Snapshot returns the latest committed snapshot
	Snapshot() domain.Snapshot

	// Render builds one page of the board from a snapshot
	Render(snap domain.Snapshot, page int) domain.BoardPage
}
