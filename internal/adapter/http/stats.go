package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"campus-ads/internal/core/port"
)

// handleStatsOverview returns aggregated statistics for campaigns over a
// range of days. It accepts optional `from` and `to` (YYYY-MM-DD or
// RFC3339, both inclusive, UTC days) and `campaign_id` query parameters.
// Without a range it reports the current day. Invalid parameters result in
// HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.StatsReq
		err error
	)

	today := time.Now().UTC()
	if req.From, err = parseDay(q.Get("from"), today); err != nil {
		http.Error(w, "invalid 'from' date", http.StatusBadRequest)
		return
	}
	if req.To, err = parseDay(q.Get("to"), today); err != nil {
		http.Error(w, "invalid 'to' date", http.StatusBadRequest)
		return
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		req.CampaignID = &id
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if errors.Is(err, port.ErrInvalidRange) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{Views: stats.Views, Clicks: stats.Clicks, Spend: stats.Spend})
}

// handleReconcile compares a campaign's daily metrics with its event log
// for `date` (default today).
func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, err := strconv.ParseInt(q.Get("campaign_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}
	day, err := parseDay(q.Get("date"), time.Now().UTC())
	if err != nil {
		http.Error(w, "invalid 'date'", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Reconcile(r.Context(), id, day)
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("reconcile error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, reconcileResponse{
		CampaignID:    rec.CampaignID,
		Date:          rec.Date.Format(time.DateOnly),
		Balanced:      rec.Balanced(),
		MetricsSpend:  rec.MetricsSpend,
		EventSpend:    rec.EventSpend,
		MetricsViews:  rec.MetricsViews,
		EventViews:    rec.EventViews,
		MetricsClicks: rec.MetricsClicks,
		EventClicks:   rec.EventClicks,
	})
}

func parseDay(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
