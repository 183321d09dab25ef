package api

import (
	"net/http"
	"time"

	"github.com/agregator/conference-board/internal/domain"
)

// RefreshResponse represents the response of a refresh request
type RefreshResponse struct {
	Status      string                `json:"status"`
	Generation  uint64                `json:"generation"`
	Origin      domain.SnapshotOrigin `json:"origin"`
	Conferences int                   `json:"conferences"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// HandleRefresh fetches the collection from the listing service. A failed
// fetch still answers 200 with the snapshot that stayed in place.
func (a *Adapter) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if !a.limiter.Allow() {
		a.writeError(w, http.StatusTooManyRequests, "refresh already requested recently")
		return
	}

	a.logger.InfoContext(r.Context(), "refresh requested")
	snap := a.board.Refresh(r.Context())

	a.writeJSON(w, http.StatusOK, RefreshResponse{
		Status:      "success",
		Generation:  snap.Generation,
		Origin:      snap.Origin,
		Conferences: len(snap.Conferences),
		UpdatedAt:   snap.UpdatedAt,
	})
}
