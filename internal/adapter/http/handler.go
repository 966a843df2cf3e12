package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campus-ads/internal/core/port"
	"campus-ads/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP used by the page-rendering layer and by client-side
// instrumentation. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.AdUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When m is not
// nil its registry is served on /metrics.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ad/request", h.handleAdRequest)
		r.Post("/ad/feed", h.handleAdFeed)
		r.Post("/ad/view", h.handleAdView)
		r.Post("/ad/click", h.handleAdClick)
		r.Post("/campaigns/{id}/status", h.handleCampaignStatus)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/stats/reconcile", h.handleReconcile)
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
