package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// GetStats returns aggregated views, clicks and spend from the campaign
// daily metrics.
func (r *AdRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	query, args, err := statsQuery(req.From, req.To, req.CampaignID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Views, &resp.Clicks, &resp.Spend); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &resp, nil
}

// GetReconciliation compares one day of a campaign's metrics with the sums
// of its event log rows.
func (r *AdRepository) GetReconciliation(ctx context.Context, campaignID int64, day time.Time) (*domain.Reconciliation, error) {
	day = domain.Day(day)
	rec := &domain.Reconciliation{CampaignID: campaignID, Date: day}

	query, args, err := dailyMetricsQuery(campaignID, day).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build metrics query: %w", err)
	}
	err = r.pool.QueryRow(ctx, query, args...).Scan(&rec.MetricsViews, &rec.MetricsClicks, &rec.MetricsSpend)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("read daily metrics: %w", err)
	}

	query, args, err = eventTotalsQuery(campaignID, day).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event totals query: %w", err)
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rec.EventSpend, &rec.EventViews, &rec.EventClicks); err != nil {
		return nil, fmt.Errorf("read event totals: %w", err)
	}
	return rec, nil
}
