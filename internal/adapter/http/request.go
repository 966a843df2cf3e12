package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"campus-ads/internal/core/port"
)

// handleAdRequest runs one auction for the subject in the body. It returns
// the selected ad as JSON, or HTTP 204 No Content when there is nothing to
// show. An empty body is a request without subject.
func (h *Handler) handleAdRequest(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ad, err := h.svc.SelectAd(r.Context(), req.SubjectID)
	if err != nil {
		h.logger.Error("request ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if ad == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, newAdResponse(*ad))
}

// handleAdFeed fills a feed of up to count distinct ads. The list may be
// shorter than requested, or empty. An out of range count is HTTP 400.
func (h *Handler) handleAdFeed(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ads, err := h.svc.SelectFeed(r.Context(), req.Count, req.SubjectID)
	if errors.Is(err, port.ErrInvalidFeedSize) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("request feed error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]adResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, newAdResponse(ad))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// decodeOptional decodes a JSON body into v, accepting an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
