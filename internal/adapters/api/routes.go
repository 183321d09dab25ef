package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API routes with the provided mux.
// Health and the board are always available. Manual refresh is only
// registered in development mode.
func (a *Adapter) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.HandleHealth)
	mux.HandleFunc("GET /api/conferences", a.HandleConferences)

	if a.cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	if a.cfg.Mode.IsDevelopment() {
		mux.HandleFunc("POST /api/refresh", a.HandleRefresh)
		a.logger.Info("refresh route enabled (development mode)")
	} else {
		a.logger.Info("refresh route disabled (production mode)")
	}
}
