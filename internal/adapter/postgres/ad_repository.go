package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

var (
	_ port.AdRepository  = (*AdRepository)(nil)
	_ port.CatalogWriter = (*AdRepository)(nil)
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAdRepository returns a new repository instance. A nil logger falls
// back to slog.Default.
func NewAdRepository(pool *pgxpool.Pool, logger *slog.Logger) *AdRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdRepository{pool: pool, logger: logger}
}

// FetchCandidateCampaigns returns the campaigns eligible at now with their
// creatives and advertiser. Rows that fail validation are skipped.
func (r *AdRepository) FetchCandidateCampaigns(ctx context.Context, subjectID string, now time.Time) ([]domain.Campaign, error) {
	query, args, err := candidateCampaignsQuery(subjectID, now).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	scanned, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan candidates: %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(scanned))
	ids := make([]int64, 0, len(scanned))
	for _, c := range scanned {
		if err := c.Validate(); err != nil {
			r.logger.Warn("skipping invalid campaign", slog.Any("error", err))
			continue
		}
		campaigns = append(campaigns, c)
		ids = append(ids, c.ID)
	}
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	byCampaign, err := r.creativesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].Creatives = byCampaign[campaigns[i].ID]
	}
	// a creative may have been deleted between the two reads
	out := campaigns[:0]
	for _, c := range campaigns {
		if len(c.Creatives) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *AdRepository) creativesFor(ctx context.Context, campaignIDs []int64) (map[int64][]domain.Creative, error) {
	query, args, err := creativesForCampaignsQuery(campaignIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build creatives query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query creatives: %w", err)
	}
	creatives, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		return scanCreative(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan creatives: %w", err)
	}
	byCampaign := make(map[int64][]domain.Creative, len(campaignIDs))
	for _, cr := range creatives {
		byCampaign[cr.CampaignID] = append(byCampaign[cr.CampaignID], cr)
	}
	return byCampaign, nil
}

// GetCampaign returns a campaign with its advertiser, or nil.
func (r *AdRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	query, args, err := campaignByIDQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build campaign query: %w", err)
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	return &c, nil
}

// GetCreative returns a creative by id, or nil.
func (r *AdRepository) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	query, args, err := creativeByIDQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build creative query: %w", err)
	}
	cr, err := scanCreative(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get creative %d: %w", id, err)
	}
	return &cr, nil
}

// SaveAdvertiser inserts a, or updates it when a.ID is set.
func (r *AdRepository) SaveAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	explicit := a.ID != 0
	q := psql.Insert("advertiser_profiles")
	if a.ID == 0 {
		q = q.Columns("display_name", "balance").Values(a.DisplayName, a.Balance)
	} else {
		q = q.Columns("id", "display_name", "balance").Values(a.ID, a.DisplayName, a.Balance).
			Suffix("ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, balance = EXCLUDED.balance, updated_at = now()")
	}
	query, args, err := q.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("build advertiser insert: %w", err)
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("save advertiser: %w", err)
	}
	return r.syncSequence(ctx, explicit, "advertiser_profiles")
}

// SaveCampaign inserts c, or updates it when c.ID is set. Creatives are
// saved separately.
func (r *AdRepository) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	cols := []string{"advertiser_id", "name", "status", "billing_type", "cost_value", "daily_budget", "start_date", "end_date", "priority", "target_subjects"}
	vals := []any{c.AdvertiserID, c.Name, string(c.Status), string(c.BillingType), c.CostValue, c.DailyBudget, c.StartDate, c.EndDate, c.Priority, subjects(c.TargetSubjects)}

	explicit := c.ID != 0
	q := psql.Insert("campaigns")
	if c.ID == 0 {
		q = q.Columns(cols...).Values(vals...)
	} else {
		q = q.Columns(append([]string{"id"}, cols...)...).Values(append([]any{c.ID}, vals...)...).
			Suffix(`ON CONFLICT (id) DO UPDATE SET advertiser_id = EXCLUDED.advertiser_id, name = EXCLUDED.name,
status = EXCLUDED.status, billing_type = EXCLUDED.billing_type, cost_value = EXCLUDED.cost_value,
daily_budget = EXCLUDED.daily_budget, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
priority = EXCLUDED.priority, target_subjects = EXCLUDED.target_subjects, updated_at = now()`)
	}
	query, args, err := q.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("build campaign insert: %w", err)
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("save campaign: %w", err)
	}
	return r.syncSequence(ctx, explicit, "campaigns")
}

// SaveCreative inserts cr, or updates its content when cr.ID is set.
// Counters are never overwritten.
func (r *AdRepository) SaveCreative(ctx context.Context, cr *domain.Creative) error {
	cols := []string{"campaign_id", "title", "body", "image_url", "link_url"}
	vals := []any{cr.CampaignID, cr.Title, cr.Body, cr.ImageURL, cr.LinkURL}

	explicit := cr.ID != 0
	q := psql.Insert("creatives")
	if cr.ID == 0 {
		q = q.Columns(cols...).Values(vals...)
	} else {
		q = q.Columns(append([]string{"id"}, cols...)...).Values(append([]any{cr.ID}, vals...)...).
			Suffix(`ON CONFLICT (id) DO UPDATE SET campaign_id = EXCLUDED.campaign_id, title = EXCLUDED.title,
body = EXCLUDED.body, image_url = EXCLUDED.image_url, link_url = EXCLUDED.link_url, updated_at = now()`)
	}
	query, args, err := q.Suffix("RETURNING id, views, clicks, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("build creative insert: %w", err)
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&cr.ID, &cr.Views, &cr.Clicks, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
		return fmt.Errorf("save creative: %w", err)
	}
	return r.syncSequence(ctx, explicit, "creatives")
}

// syncSequence moves the id sequence of table past its largest id after a
// write with an explicit id.
func (r *AdRepository) syncSequence(ctx context.Context, explicit bool, table string) error {
	if !explicit {
		return nil
	}
	query := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT max(id) FROM %[1]s))", table)
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("sync %s id sequence: %w", table, err)
	}
	return nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                   domain.Campaign
		status, billingType string
	)
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.Name,
		&status,
		&billingType,
		&c.CostValue,
		&c.DailyBudget,
		&c.StartDate,
		&c.EndDate,
		&c.Priority,
		&c.TargetSubjects,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Advertiser.ID,
		&c.Advertiser.DisplayName,
		&c.Advertiser.Balance,
		&c.Advertiser.CreatedAt,
		&c.Advertiser.UpdatedAt,
	)
	c.Status = domain.CampaignStatus(status)
	c.BillingType = domain.BillingType(billingType)
	return c, err
}

func scanCreative(row pgx.Row) (domain.Creative, error) {
	var cr domain.Creative
	err := row.Scan(
		&cr.ID,
		&cr.CampaignID,
		&cr.Title,
		&cr.Body,
		&cr.ImageURL,
		&cr.LinkURL,
		&cr.Views,
		&cr.Clicks,
		&cr.CreatedAt,
		&cr.UpdatedAt,
	)
	return cr, err
}

// subjects keeps an untargeted campaign as an empty array rather than NULL.
func subjects(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
