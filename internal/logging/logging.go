// Package logging builds the slog logger for the selected mode.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"

	"github.com/agregator/conference-board/internal/config"
)

// New returns a colored debug logger in development mode and a JSON info logger otherwise
func New(mode config.Mode, w io.Writer) *slog.Logger {
	if mode.IsDevelopment() {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// OpenFile opens path for appending, creating parent directories.
// The terminal UI logs here because it owns stdout.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
