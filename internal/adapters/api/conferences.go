package api

import (
	"net/http"
	"strconv"
)

// HandleConferences renders one page of the board. The page defaults to 1 and
// out of range values are clamped.
func (a *Adapter) HandleConferences(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = n
	}

	a.writeJSON(w, http.StatusOK, a.board.Render(a.board.Snapshot(), page))
}
