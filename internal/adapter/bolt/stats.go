package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// GetStats sums the campaign daily metrics between req.From and req.To
// (inclusive days), for one campaign or all of them.
func (s *Store) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	from := domain.Day(req.From).Format(time.DateOnly)
	to := domain.Day(req.To).Format(time.DateOnly)

	var resp port.StatsResp
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketCampaignMetrics).Cursor()

		var prefix []byte
		k, v := c.First()
		if req.CampaignID != nil {
			prefix = itob(*req.CampaignID)
			k, v = c.Seek(append(prefix, from...))
		}
		for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			date := string(k[8:])
			if date < from || date > to {
				continue
			}
			var m metricsRecord
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			resp.Views += m.Views
			resp.Clicks += m.Clicks
			resp.Spend += m.Spend
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &resp, nil
}

// GetReconciliation compares one day of a campaign's metrics with the sums
// of its event log rows for that day.
func (s *Store) GetReconciliation(ctx context.Context, campaignID int64, day time.Time) (*domain.Reconciliation, error) {
	day = domain.Day(day)
	r := &domain.Reconciliation{CampaignID: campaignID, Date: day}

	err := s.view(ctx, func(tx *bbolt.Tx) error {
		var m metricsRecord
		if _, err := getJSON(tx.Bucket(bucketCampaignMetrics), metricsKey(campaignID, day), &m); err != nil {
			return err
		}
		r.MetricsViews, r.MetricsClicks, r.MetricsSpend = m.Views, m.Clicks, m.Spend

		prefix := itob(campaignID)
		end := day.AddDate(0, 0, 1).UnixNano()
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.Seek(append(prefix, itob(day.UnixNano())...)); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if int64(binary.BigEndian.Uint64(k[8:16])) >= end {
				break
			}
			var ev eventRecord
			if err := json.Unmarshal(v, &ev); err != nil {
				return err
			}
			r.EventSpend += ev.Cost
			switch domain.EventType(ev.Type) {
			case domain.EventView:
				r.EventViews++
			case domain.EventClick:
				r.EventClicks++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile campaign %d: %w", campaignID, err)
	}
	return r, nil
}
