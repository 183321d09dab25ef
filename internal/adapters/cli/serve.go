package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agregator/conference-board/internal/adapters/api"
	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/logging"
	"github.com/agregator/conference-board/internal/observability"
)

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board as JSON over HTTP",
		Long: `Serve the board as JSON over HTTP and refresh it in the background.

Routes:
  GET  /health
  GET  /api/conferences?page=N
  POST /api/refresh   (development mode only)
  GET  /metrics       (when METRICS_ENABLED)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, version)
		},
	}
}

func runServe(ctx context.Context, version string) error {
	cfg := config.GetConfig(ctx)

	logger := logging.New(cfg.Mode, os.Stdout)
	setDefaultLogger(logger)

	logger.Info("configuration loaded",
		"mode", cfg.Mode,
		"httpAddr", cfg.Http.Addr(),
		"listingURL", cfg.Listing.Endpoint(),
		"cacheBackend", cfg.Cache.Backend,
	)

	flush, err := observability.InitSentry(cfg.ObservabilityConfig, version)
	if err != nil {
		return err
	}
	defer flush()

	c, err := wire(ctx, logger)
	if err != nil {
		return err
	}
	defer c.close()

	mux := http.NewServeMux()
	api.New(ctx, c.board).RegisterRoutes(mux)

	server := &http.Server{
		Addr:         cfg.Http.Addr(),
		Handler:      mux,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, server, c.source.Run, cfg.Http.ShutdownTimeout, logger)
}

// serve runs the HTTP server next to the refresh loop until ctx is cancelled
// or either of them fails, then shuts the server down gracefully.
func serve(
	ctx context.Context,
	server *http.Server,
	run func(context.Context) error,
	shutdownTimeout time.Duration,
	logger *slog.Logger,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
