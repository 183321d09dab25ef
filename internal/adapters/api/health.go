package api

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Loaded      bool   `json:"loaded"`
	Conferences int    `json:"conferences"`
}

// HandleHealth handles the health check endpoint
func (a *Adapter) HandleHealth(w http.ResponseWriter, r *http.Request) {
	snap := a.board.Snapshot()
	a.writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Loaded:      snap.Loaded,
		Conferences: len(snap.Conferences),
	})
}
