// Package bolt implements the ad engine's storage ports on a single bbolt
// file. Every write runs in one bbolt read-write transaction, and bbolt
// allows one writer at a time, so a charge is atomic and charges are
// serialized without row locks. It suits local runs and integration tests;
// production uses the postgres adapter.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	bbolt "go.etcd.io/bbolt"

	"campus-ads/internal/core/port"
)

var (
	bucketAdvertisers     = []byte("advertisers")
	bucketCampaigns       = []byte("campaigns")
	bucketCreatives       = []byte("creatives")
	bucketTransactions    = []byte("transactions")
	bucketCampaignMetrics = []byte("campaign_metrics")
	bucketCreativeMetrics = []byte("creative_metrics")
	bucketEvents          = []byte("events")
)

var allBuckets = [][]byte{
	bucketAdvertisers,
	bucketCampaigns,
	bucketCreatives,
	bucketTransactions,
	bucketCampaignMetrics,
	bucketCreativeMetrics,
	bucketEvents,
}

var (
	_ port.AdRepository  = (*Store)(nil)
	_ port.CatalogWriter = (*Store)(nil)
)

// Store is a bbolt-backed AdRepository and CatalogWriter.
type Store struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped catalog rows.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open opens (creating if needed) the store at path.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	s := &Store{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// update runs fn in a read-write transaction unless ctx is already done.
func (s *Store) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(fn)
}

func (s *Store) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(fn)
}

// itob encodes an id big-endian so keys sort numerically.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// metricsKey is the entity id followed by the ISO date, so one entity's
// days are contiguous and ordered.
func metricsKey(id int64, day time.Time) []byte {
	return append(itob(id), day.Format(time.DateOnly)...)
}

// eventKey orders events by campaign, then time.
func eventKey(campaignID int64, at time.Time, id string) []byte {
	k := append(itob(campaignID), itob(at.UnixNano())...)
	return append(k, id...)
}

// transactionKey orders ledger rows by advertiser, then time.
func transactionKey(advertiserID int64, at time.Time, id string) []byte {
	k := append(itob(advertiserID), itob(at.UnixNano())...)
	return append(k, id...)
}

func getJSON(b *bbolt.Bucket, key []byte, v any) (bool, error) {
	data := b.Get(key)
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal key %x: %w", key, err)
	}
	return true, nil
}

func putJSON(b *bbolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return b.Put(key, data)
}
