// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/agregator/conference-board/internal/domain"
)

// BoardLoaded carries the snapshot produced by a load or refresh.
type BoardLoaded struct {
	Snapshot domain.Snapshot
	Manual   bool
}

// RefreshTick fires when the periodic refresh is due.
type RefreshTick struct{}

// BrowserOpened reports the result of opening a details link.
type BrowserOpened struct {
	URL string
	Err error
}
