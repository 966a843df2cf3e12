package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// RecordTraffic increments the creative counter and the day's views or
// clicks of the campaign and creative metrics in one transaction.
func (r *AdRepository) RecordTraffic(ctx context.Context, hit domain.TrafficHit) error {
	if !hit.Type.Valid() {
		return fmt.Errorf("record traffic: unknown event type %q", hit.Type)
	}
	delta := domain.DailyMetrics{Views: 1}
	if hit.Type == domain.EventClick {
		delta = domain.DailyMetrics{Clicks: 1}
	}
	day := domain.Day(hit.At)

	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		tag, err := execBuilt(ctx, tx, countTrafficQuery(hit))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("creative %d not found", hit.CreativeID)
		}
		if _, err := execBuilt(ctx, tx, upsertMetricsQuery("campaign_daily_metrics", "campaign_id", hit.CampaignID, day, delta)); err != nil {
			return err
		}
		_, err = execBuilt(ctx, tx, upsertMetricsQuery("creative_daily_metrics", "creative_id", hit.CreativeID, day, delta))
		return err
	})
	if err != nil {
		return fmt.Errorf("record traffic: %w", err)
	}
	return nil
}

// Charge bills one event in a single transaction: the balance debit, the
// ledger row, the spend upserts, the event log row and the budget guard.
// The debit locks the advertiser row, so concurrent charges of one
// advertiser apply one after another. A charge against an exhausted
// balance is refused with port.ErrInsufficientBalance after the guard has
// run and committed.
func (r *AdRepository) Charge(ctx context.Context, charge domain.Charge) (*domain.ChargeResult, error) {
	if charge.Amount <= 0 {
		return nil, fmt.Errorf("charge: non-positive amount %d", charge.Amount)
	}

	var (
		res     domain.ChargeResult
		refused bool
	)
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		query, args, err := debitQuery(charge.AdvertiserID, charge.Amount, charge.At).ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, query, args...).Scan(&res.BalanceAfter)
		if errors.Is(err, pgx.ErrNoRows) {
			if err := advertiserExists(ctx, tx, charge.AdvertiserID); err != nil {
				return err
			}
			refused = true
			_, err := r.suspend(ctx, tx, charge.AdvertiserID, charge.At)
			return err
		}
		if err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}

		txn := domain.Transaction{
			ID:           uuid.NewString(),
			AdvertiserID: charge.AdvertiserID,
			Type:         domain.TransactionSpend,
			Amount:       charge.Amount,
			Status:       domain.TransactionCompleted,
			Metadata: domain.TransactionMetadata{
				Event:      charge.Event,
				CampaignID: charge.CampaignID,
				CreativeID: charge.CreativeID,
			},
			CreatedAt: charge.At,
		}
		metadata, err := json.Marshal(txn.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		if _, err := execBuilt(ctx, tx, insertTransactionQuery(txn, metadata)); err != nil {
			return err
		}
		res.TransactionID = txn.ID

		day := domain.Day(charge.At)
		spend := domain.DailyMetrics{Spend: charge.Amount}
		if _, err := execBuilt(ctx, tx, upsertMetricsQuery("campaign_daily_metrics", "campaign_id", charge.CampaignID, day, spend)); err != nil {
			return err
		}
		if _, err := execBuilt(ctx, tx, upsertMetricsQuery("creative_daily_metrics", "creative_id", charge.CreativeID, day, spend)); err != nil {
			return err
		}

		event := domain.EventLog{
			ID:         uuid.NewString(),
			CampaignID: charge.CampaignID,
			CreativeID: charge.CreativeID,
			Type:       charge.Event,
			Cost:       charge.Amount,
			CreatedAt:  charge.At,
		}
		if _, err := execBuilt(ctx, tx, insertEventQuery(event)); err != nil {
			return err
		}

		if res.BalanceAfter <= 0 {
			res.Exhausted = true
			res.Suspended, err = r.suspend(ctx, tx, charge.AdvertiserID, charge.At)
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

func (r *AdRepository) suspend(ctx context.Context, tx pgx.Tx, advertiserID int64, at time.Time) (int64, error) {
	tag, err := execBuilt(ctx, tx, suspendCampaignsQuery(advertiserID, at))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func advertiserExists(ctx context.Context, tx pgx.Tx, id int64) error {
	var one int
	err := tx.QueryRow(ctx, "SELECT 1 FROM advertiser_profiles WHERE id = $1", id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("advertiser %d not found", id)
	}
	return err
}

// LogEvent appends an event log row that carries no charge.
func (r *AdRepository) LogEvent(ctx context.Context, event domain.EventLog) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if _, err := execBuilt(ctx, r.pool, insertEventQuery(event)); err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// UpdateCampaignStatus moves campaign id from status from to status to. It
// reports false when the campaign is missing or not in status from.
func (r *AdRepository) UpdateCampaignStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) (bool, error) {
	tag, err := execBuilt(ctx, r.pool, updateStatusQuery(id, from, to, time.Now().UTC()))
	if err != nil {
		return false, fmt.Errorf("update campaign %d status: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

// execer is satisfied by *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func execBuilt(ctx context.Context, db execer, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return db.Exec(ctx, query, args...)
}
