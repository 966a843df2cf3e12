package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	bbolt "go.etcd.io/bbolt"

	"campus-ads/internal/core/domain"
)

// FetchCandidateCampaigns scans the catalog and returns every eligible
// campaign with its creatives and advertiser. Rows that fail validation
// are skipped and logged.
func (s *Store) FetchCandidateCampaigns(ctx context.Context, subjectID string, now time.Time) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		creatives, err := creativesByCampaign(tx)
		if err != nil {
			return err
		}
		advertisers := tx.Bucket(bucketAdvertisers)

		return tx.Bucket(bucketCampaigns).ForEach(func(_, v []byte) error {
			var rec campaignRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			c := rec.toDomain()
			if err := c.Validate(); err != nil {
				s.logger.Warn("skipping invalid campaign", slog.Any("error", err))
				return nil
			}
			if c.Status != domain.StatusActive || !c.RunningAt(now) || !c.MatchesSubject(subjectID) {
				return nil
			}

			var adv advertiserRecord
			found, err := getJSON(advertisers, itob(c.AdvertiserID), &adv)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			c.Advertiser = adv.toDomain()
			c.Creatives = creatives[c.ID]

			if c.Eligible(subjectID, now) {
				out = append(out, c)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fetch candidate campaigns: %w", err)
	}
	if out == nil {
		out = []domain.Campaign{}
	}
	return out, nil
}

func creativesByCampaign(tx *bbolt.Tx) (map[int64][]domain.Creative, error) {
	byCampaign := make(map[int64][]domain.Creative)
	err := tx.Bucket(bucketCreatives).ForEach(func(_, v []byte) error {
		var rec creativeRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		byCampaign[rec.CampaignID] = append(byCampaign[rec.CampaignID], rec.toDomain())
		return nil
	})
	return byCampaign, err
}

// GetCampaign returns a campaign with its advertiser, or nil.
func (s *Store) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		var rec campaignRecord
		found, err := getJSON(tx.Bucket(bucketCampaigns), itob(id), &rec)
		if err != nil || !found {
			return err
		}
		c := rec.toDomain()

		var adv advertiserRecord
		if _, err := getJSON(tx.Bucket(bucketAdvertisers), itob(c.AdvertiserID), &adv); err != nil {
			return err
		}
		c.Advertiser = adv.toDomain()
		out = &c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	return out, nil
}

// GetCreative returns a creative by id, or nil.
func (s *Store) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	var out *domain.Creative
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		var rec creativeRecord
		found, err := getJSON(tx.Bucket(bucketCreatives), itob(id), &rec)
		if err != nil || !found {
			return err
		}
		cr := rec.toDomain()
		out = &cr
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get creative %d: %w", id, err)
	}
	return out, nil
}

// GetAdvertiser returns an advertiser by id, or nil.
func (s *Store) GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error) {
	var out *domain.Advertiser
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		var rec advertiserRecord
		found, err := getJSON(tx.Bucket(bucketAdvertisers), itob(id), &rec)
		if err != nil || !found {
			return err
		}
		a := rec.toDomain()
		out = &a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get advertiser %d: %w", id, err)
	}
	return out, nil
}

// SaveAdvertiser inserts or replaces a. A zero ID is assigned from the
// bucket sequence.
func (s *Store) SaveAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketAdvertisers)
		if err := assignID(b, &a.ID); err != nil {
			return err
		}
		touch(&a.CreatedAt, &a.UpdatedAt)
		return putJSON(b, itob(a.ID), advertiserRecord{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Balance:     a.Balance,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	})
}

// SaveCampaign inserts or replaces c. Its creatives and advertiser are not
// written.
func (s *Store) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.update(ctx, func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketAdvertisers).Get(itob(c.AdvertiserID)) == nil {
			return fmt.Errorf("advertiser %d not found", c.AdvertiserID)
		}
		b := tx.Bucket(bucketCampaigns)
		if err := assignID(b, &c.ID); err != nil {
			return err
		}
		touch(&c.CreatedAt, &c.UpdatedAt)
		return putJSON(b, itob(c.ID), newCampaignRecord(c))
	})
}

// SaveCreative inserts cr, or replaces its content when cr.ID is set.
// Counters of an existing creative are never overwritten.
func (s *Store) SaveCreative(ctx context.Context, cr *domain.Creative) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCampaigns).Get(itob(cr.CampaignID)) == nil {
			return fmt.Errorf("campaign %d not found", cr.CampaignID)
		}
		b := tx.Bucket(bucketCreatives)
		if err := assignID(b, &cr.ID); err != nil {
			return err
		}
		var existing creativeRecord
		found, err := getJSON(b, itob(cr.ID), &existing)
		if err != nil {
			return err
		}
		if found {
			cr.Views, cr.Clicks = existing.Views, existing.Clicks
			if cr.CreatedAt.IsZero() {
				cr.CreatedAt = existing.CreatedAt
			}
		}
		touch(&cr.CreatedAt, &cr.UpdatedAt)
		return putJSON(b, itob(cr.ID), creativeRecord{
			ID:         cr.ID,
			CampaignID: cr.CampaignID,
			Title:      cr.Title,
			Body:       cr.Body,
			ImageURL:   cr.ImageURL,
			LinkURL:    cr.LinkURL,
			Views:      cr.Views,
			Clicks:     cr.Clicks,
			CreatedAt:  cr.CreatedAt,
			UpdatedAt:  cr.UpdatedAt,
		})
	})
}

func assignID(b *bbolt.Bucket, id *int64) error {
	if *id != 0 {
		// keep the sequence ahead of explicit ids
		if uint64(*id) > b.Sequence() {
			return b.SetSequence(uint64(*id))
		}
		return nil
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	*id = int64(seq)
	return nil
}

func touch(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}
