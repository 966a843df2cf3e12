package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// RecordTraffic increments the creative counter and the day's views or
// clicks of the campaign and creative metrics.
func (s *Store) RecordTraffic(ctx context.Context, hit domain.TrafficHit) error {
	if !hit.Type.Valid() {
		return fmt.Errorf("record traffic: unknown event type %q", hit.Type)
	}
	err := s.update(ctx, func(tx *bbolt.Tx) error {
		creatives := tx.Bucket(bucketCreatives)
		var cr creativeRecord
		found, err := getJSON(creatives, itob(hit.CreativeID), &cr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("creative %d not found", hit.CreativeID)
		}
		delta := metricsRecord{}
		if hit.Type == domain.EventClick {
			cr.Clicks++
			delta.Clicks = 1
		} else {
			cr.Views++
			delta.Views = 1
		}
		cr.UpdatedAt = hit.At
		if err := putJSON(creatives, itob(cr.ID), cr); err != nil {
			return err
		}

		day := domain.Day(hit.At)
		if err := addMetrics(tx.Bucket(bucketCampaignMetrics), metricsKey(hit.CampaignID, day), delta); err != nil {
			return err
		}
		return addMetrics(tx.Bucket(bucketCreativeMetrics), metricsKey(hit.CreativeID, day), delta)
	})
	if err != nil {
		return fmt.Errorf("record traffic: %w", err)
	}
	return nil
}

// Charge bills one event. The balance decrement, the ledger row, the spend
// upserts, the event log row and the budget guard commit together. A charge
// against a balance that is already exhausted is refused with
// port.ErrInsufficientBalance, but the guard still runs and commits.
func (s *Store) Charge(ctx context.Context, charge domain.Charge) (*domain.ChargeResult, error) {
	if charge.Amount <= 0 {
		return nil, fmt.Errorf("charge: non-positive amount %d", charge.Amount)
	}

	var (
		res     domain.ChargeResult
		refused bool
	)
	err := s.update(ctx, func(tx *bbolt.Tx) error {
		advertisers := tx.Bucket(bucketAdvertisers)
		var adv advertiserRecord
		found, err := getJSON(advertisers, itob(charge.AdvertiserID), &adv)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("advertiser %d not found", charge.AdvertiserID)
		}

		if adv.Balance <= 0 {
			refused = true
			_, err := suspendCampaigns(tx, charge.AdvertiserID, charge.At)
			return err
		}

		adv.Balance -= charge.Amount
		adv.UpdatedAt = charge.At
		if err := putJSON(advertisers, itob(adv.ID), adv); err != nil {
			return err
		}
		res.BalanceAfter = adv.Balance

		res.TransactionID = uuid.NewString()
		txn := transactionRecord{
			ID:           res.TransactionID,
			AdvertiserID: charge.AdvertiserID,
			Type:         string(domain.TransactionSpend),
			Amount:       charge.Amount,
			Status:       string(domain.TransactionCompleted),
			Metadata: domain.TransactionMetadata{
				Event:      charge.Event,
				CampaignID: charge.CampaignID,
				CreativeID: charge.CreativeID,
			},
			CreatedAt: charge.At,
		}
		if err := putJSON(tx.Bucket(bucketTransactions), transactionKey(txn.AdvertiserID, txn.CreatedAt, txn.ID), txn); err != nil {
			return err
		}

		day := domain.Day(charge.At)
		spend := metricsRecord{Spend: charge.Amount}
		if err := addMetrics(tx.Bucket(bucketCampaignMetrics), metricsKey(charge.CampaignID, day), spend); err != nil {
			return err
		}
		if err := addMetrics(tx.Bucket(bucketCreativeMetrics), metricsKey(charge.CreativeID, day), spend); err != nil {
			return err
		}

		ev := eventRecord{
			ID:         uuid.NewString(),
			CampaignID: charge.CampaignID,
			CreativeID: charge.CreativeID,
			Type:       string(charge.Event),
			Cost:       charge.Amount,
			CreatedAt:  charge.At,
		}
		if err := putJSON(tx.Bucket(bucketEvents), eventKey(ev.CampaignID, ev.CreatedAt, ev.ID), ev); err != nil {
			return err
		}

		if adv.Balance <= 0 {
			res.Exhausted = true
			res.Suspended, err = suspendCampaigns(tx, charge.AdvertiserID, charge.At)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("charge advertiser %d: %w", charge.AdvertiserID, err)
	}
	if refused {
		return nil, port.ErrInsufficientBalance
	}
	return &res, nil
}

// suspendCampaigns moves every ACTIVE campaign of advertiserID to
// OUT_OF_BUDGET and returns how many moved.
func suspendCampaigns(tx *bbolt.Tx, advertiserID int64, at time.Time) (int64, error) {
	b := tx.Bucket(bucketCampaigns)
	var (
		n       int64
		updated []campaignRecord
	)
	err := b.ForEach(func(_, v []byte) error {
		var rec campaignRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		if rec.AdvertiserID == advertiserID && rec.Status == string(domain.StatusActive) {
			rec.Status = string(domain.StatusOutOfBudget)
			rec.UpdatedAt = at
			updated = append(updated, rec)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	// bbolt forbids writes while iterating
	for _, rec := range updated {
		if err := putJSON(b, itob(rec.ID), rec); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// LogEvent appends an event log row that carries no charge.
func (s *Store) LogEvent(ctx context.Context, event domain.EventLog) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	err := s.update(ctx, func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketEvents), eventKey(event.CampaignID, event.CreatedAt, event.ID), eventRecord{
			ID:         event.ID,
			CampaignID: event.CampaignID,
			CreativeID: event.CreativeID,
			Type:       string(event.Type),
			Cost:       event.Cost,
			CreatedAt:  event.CreatedAt,
		})
	})
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// UpdateCampaignStatus moves campaign id from status from to status to. It
// reports false when the campaign is missing or not in status from.
func (s *Store) UpdateCampaignStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) (bool, error) {
	var ok bool
	err := s.update(ctx, func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCampaigns)
		var rec campaignRecord
		found, err := getJSON(b, itob(id), &rec)
		if err != nil || !found || rec.Status != string(from) {
			return err
		}
		rec.Status = string(to)
		rec.UpdatedAt = time.Now().UTC()
		ok = true
		return putJSON(b, itob(id), rec)
	})
	if err != nil {
		return false, fmt.Errorf("update campaign %d status: %w", id, err)
	}
	return ok, nil
}

// addMetrics creates the row at key or adds delta to it.
func addMetrics(b *bbolt.Bucket, key []byte, delta metricsRecord) error {
	var m metricsRecord
	if _, err := getJSON(b, key, &m); err != nil {
		return err
	}
	m.Views += delta.Views
	m.Clicks += delta.Clicks
	m.Spend += delta.Spend
	return putJSON(b, key, m)
}
