package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agregator/conference-board/internal/adapters/tui"
	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/logging"
	"github.com/agregator/conference-board/internal/observability"
)

func newTUICommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal board",
		Long: `Launch the interactive terminal board.

Logs are written to LOG_FILE because the terminal belongs to the UI.

Controls:
  ←/h, →/l     - Previous / next page
  home/g, end/G - First / last page
  1-9          - Jump to a visible page button
  ↑/k, ↓/j     - Select a conference
  enter/o      - Open the details page in the browser
  r            - Refresh now
  ?            - Toggle help
  q            - Quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), version)
		},
	}
}

func runTUI(ctx context.Context, version string) error {
	cfg := config.GetConfig(ctx)

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(cfg.Mode, logFile)
	setDefaultLogger(logger)

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

	// Quitting cancels ctx so an in-flight fetch is aborted.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model, err := tui.NewApp(ctx, tui.Options{
		Board:           c.board,
		RefreshInterval: cfg.Listing.RefreshInterval,
	})
	if err != nil {
		return fmt.Errorf("creating app: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
