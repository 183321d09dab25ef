package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agregator/conference-board/internal/adapters/cache"
	"github.com/agregator/conference-board/internal/adapters/listing"
	"github.com/agregator/conference-board/internal/app"
	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/domain"
	"github.com/agregator/conference-board/internal/observability"
	"github.com/agregator/conference-board/internal/ports"
)

// components are the wired application services shared by every command
type components struct {
	source *app.DataSource
	board  *app.Board
	close  func() error
}

// wire builds the board from configuration in ctx
func wire(ctx context.Context, logger *slog.Logger) (*components, error) {
	cfg := config.GetConfig(ctx)

	store, closeStore, err := cache.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	provider, err := listing.New(ctx)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to create listing client: %w", err)
	}

	reporters := observability.MultiReporter{observability.NewLogReporter(logger)}
	if cfg.IsSentryConfigured() {
		reporters = append(reporters, observability.NewSentryReporter(nil))
	}

	source, err := app.NewDataSource(ctx, provider, store, reporters)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to create data source: %w", err)
	}

	normalizer := app.NewNormalizer(domain.DefaultOrigins(), cfg.Board.DisplayYear, logger)
	board, err := app.NewBoard(ctx, source, normalizer)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	logger.Info("board initialized",
		"listing", cfg.Listing.Endpoint(),
		"cache", cfg.Cache.Backend,
		"refreshInterval", cfg.Listing.RefreshInterval,
	)

	return &components{source: source, board: board, close: closeStore}, nil
}

var _ ports.ConferenceBoard = (*app.Board)(nil)

// setDefaultLogger installs logger for packages that log through slog.Default
func setDefaultLogger(logger *slog.Logger) {
	slog.SetDefault(logger)
}
