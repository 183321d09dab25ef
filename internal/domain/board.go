package domain

import "time"

// SnapshotOrigin tells where the committed collection came from
type SnapshotOrigin string

const (
	SnapshotOriginNone    SnapshotOrigin = "none"
	SnapshotOriginCache   SnapshotOrigin = "cache"
	SnapshotOriginNetwork SnapshotOrigin = "network"
)

// Snapshot is the committed conference collection. Conferences is in arrival
// order and must not be modified by readers.
type Snapshot struct {
	Conferences []Conference
	Generation  uint64
	Origin      SnapshotOrigin
	UpdatedAt   time.Time
	Loaded      bool
}

// PageButton is one numbered pagination button
type PageButton struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// NavButton is the first or last page button
type NavButton struct {
	Page     int  `json:"page"`
	Disabled bool `json:"disabled"`
}

// BoardPage is everything a render surface needs to draw one page of the board
type BoardPage struct {
	Entries    []Entry        `json:"entries"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	TotalCount int            `json:"totalCount"`
	Buttons    []PageButton   `json:"buttons"`
	First      NavButton      `json:"first"`
	Last       NavButton      `json:"last"`
	Loading    bool           `json:"loading"`
	Origin     SnapshotOrigin `json:"origin"`
	Generation uint64         `json:"generation"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
