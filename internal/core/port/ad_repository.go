package port

import (
	"context"
	"errors"
	"time"

	"campus-ads/internal/core/domain"
)

// ErrInsufficientBalance is returned by Charge when the advertiser's balance
// was already exhausted before the charge.
var ErrInsufficientBalance = errors.New("insufficient balance")

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; Charge and RecordTraffic must each commit atomically.
type AdRepository interface {
	// FetchCandidateCampaigns returns the campaigns eligible for an auction
	// at now, each with its creatives and advertiser. An empty subjectID
	// restricts the result to untargeted campaigns.
	FetchCandidateCampaigns(ctx context.Context, subjectID string, now time.Time) ([]domain.Campaign, error)
	// GetCampaign returns a campaign with its advertiser, or nil.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetCreative returns a creative by id, or nil.
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)

	// RecordTraffic increments the creative counter and the views/clicks of
	// the campaign and creative daily metrics.
	RecordTraffic(ctx context.Context, hit domain.TrafficHit) error
	// Charge bills one event: balance, transaction, daily spend, event log
	// and budget guard in one unit.
	Charge(ctx context.Context, charge domain.Charge) (*domain.ChargeResult, error)
	// LogEvent appends an event log row that carries no charge.
	LogEvent(ctx context.Context, event domain.EventLog) error

	// UpdateCampaignStatus moves a campaign from one status to another. It
	// reports false when the campaign was not in status from.
	UpdateCampaignStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) (bool, error)

	// GetStats returns aggregated statistics for campaigns in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
	// GetReconciliation compares a campaign's daily metrics with its event
	// log for one day.
	GetReconciliation(ctx context.Context, campaignID int64, day time.Time) (*domain.Reconciliation, error)
}

// CatalogWriter stores catalog records. The campaign management flows own
// these writes; the service only uses it to seed local environments.
type CatalogWriter interface {
	SaveAdvertiser(ctx context.Context, a *domain.Advertiser) error
	SaveCampaign(ctx context.Context, c *domain.Campaign) error
	SaveCreative(ctx context.Context, cr *domain.Creative) error
}

// RandomSource yields uniform values in [0,1). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	Float64() float64
}

// ViewLimiter throttles view tracking per creative.
type ViewLimiter interface {
	Allow(ctx context.Context, creativeID int64) (bool, error)
}
