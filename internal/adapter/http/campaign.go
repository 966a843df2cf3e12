package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// handleCampaignStatus applies an operator status change. Unknown
// campaigns are 404, transitions the lifecycle forbids are 409.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	status := domain.CampaignStatus(req.Status)
	if !status.Valid() {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	err = h.svc.SetCampaignStatus(r.Context(), id, status)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.NotFound(w, r)
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrReactivation):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("set campaign status error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
