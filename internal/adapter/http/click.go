package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-ads/internal/core/port"
)

// handleAdView records a view reported by client-side instrumentation.
// The response is always {success}; only a malformed body is an HTTP
// error.
func (h *Handler) handleAdView(w http.ResponseWriter, r *http.Request) {
	h.handleTrack(w, r, h.svc.TrackView)
}

// handleAdClick records a click reported by client-side instrumentation.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	h.handleTrack(w, r, h.svc.TrackClick)
}

func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request, track func(ctx context.Context, creativeID, campaignID int64) port.TrackResult) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.CreativeID <= 0 || req.CampaignID <= 0 {
		http.Error(w, "creative_id and campaign_id are required", http.StatusBadRequest)
		return
	}
	res := track(r.Context(), req.CreativeID, req.CampaignID)
	h.writeJSON(w, http.StatusOK, trackResponse{Success: res.Success})
}
