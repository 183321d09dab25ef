package app

import (
	"context"
	"errors"

	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/domain"
)

// BoardConfig holds the pagination settings of a Board
type BoardConfig struct {
	PageSize          int
	MaxVisibleButtons int
	DisplayYear       int
}

// Validate checks the pagination settings
func (cfg BoardConfig) Validate() error {
	if cfg.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}
	if cfg.MaxVisibleButtons < 1 {
		return errors.New("max visible buttons must be at least 1")
	}
	return nil
}

// Board combines the data source with sorting, pagination and normalization.
// It implements ports.ConferenceBoard.
type Board struct {
	source     *DataSource
	normalizer *Normalizer
	cfg        BoardConfig
}

// NewBoard creates a Board, retrieving configuration from context
func NewBoard(ctx context.Context, source *DataSource, normalizer *Normalizer) (*Board, error) {
	cfg := config.GetConfig(ctx)
	return NewBoardWithConfig(source, normalizer, BoardConfig{
		PageSize:          cfg.Board.PageSize,
		MaxVisibleButtons: cfg.Board.MaxVisibleButtons,
		DisplayYear:       cfg.Board.DisplayYear,
	})
}

// NewBoardWithConfig creates a Board with explicit configuration
func NewBoardWithConfig(source *DataSource, normalizer *Normalizer, cfg BoardConfig) (*Board, error) {
	if source == nil || normalizer == nil {
		return nil, errors.New("data source and normalizer are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Board{source: source, normalizer: normalizer, cfg: cfg}, nil
}

// Load returns the cached collection if present, otherwise refreshes
func (b *Board) Load(ctx context.Context) domain.Snapshot {
	return b.source.Load(ctx)
}

// Refresh fetches the collection from the network
func (b *Board) Refresh(ctx context.Context) domain.Snapshot {
	return b.source.Refresh(ctx)
}

// Snapshot returns the latest committed snapshot
func (b *Board) Snapshot() domain.Snapshot {
	return b.source.Snapshot()
}

// Render builds one page of the board. The page number is clamped into range,
// and only the entries on that page are normalized.
func (b *Board) Render(snap domain.Snapshot, page int) domain.BoardPage {
	sorted := domain.SortConferences(snap.Conferences, b.cfg.DisplayYear)
	visible, current := domain.PageSlice(sorted, page, b.cfg.PageSize)
	total := max(domain.TotalPages(len(sorted), b.cfg.PageSize), 1)

	numbers := domain.VisibleButtons(current, total, b.cfg.MaxVisibleButtons)
	buttons := make([]domain.PageButton, len(numbers))
	for i, n := range numbers {
		buttons[i] = domain.PageButton{Number: n, Active: n == current}
	}

	return domain.BoardPage{
		Entries:    b.normalizer.NormalizeAll(visible),
		Page:       current,
		TotalPages: total,
		TotalCount: len(sorted),
		Buttons:    buttons,
		First:      domain.NavButton{Page: 1, Disabled: current == 1},
		Last:       domain.NavButton{Page: total, Disabled: current == total},
		Loading:    !snap.Loaded,
		Origin:     snap.Origin,
		Generation: snap.Generation,
		UpdatedAt:  snap.UpdatedAt,
	}
}
