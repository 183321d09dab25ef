package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/ports"
)

// refreshEvery bounds how often POST /api/refresh may hit the listing service
const refreshEvery = 10 * time.Second

// Adapter holds the HTTP handler dependencies
type Adapter struct {
	board   ports.ConferenceBoard
	cfg     *config.Config
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a new API adapter, retrieving configuration from context
func New(ctx context.Context, board ports.ConferenceBoard) *Adapter {
	return &Adapter{
		board:   board,
		cfg:     config.GetConfig(ctx),
		limiter: rate.NewLimiter(rate.Every(refreshEvery), 1),
		logger:  slog.Default().With("component", "api"),
	}
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status
func (a *Adapter) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error JSON response
func (a *Adapter) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, ErrorResponse{Status: "error", Message: message})
}
