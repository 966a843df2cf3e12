package port

import (
	"context"
	"errors"
	"time"

	"campus-ads/internal/core/domain"
)

var (
	ErrInvalidFeedSize  = errors.New("invalid feed size")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidRange     = errors.New("invalid date range")
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// SelectAd runs one auction for the optional subject. It returns nil when
	// nothing is eligible or the catalog could not be read in time.
	SelectAd(ctx context.Context, subjectID string) (*domain.Ad, error)

	// SelectFeed fills up to count slots without repeating a creative. It
	// fails only for a count outside the configured bounds.
	SelectFeed(ctx context.Context, count int, subjectID string) ([]domain.Ad, error)

	// TrackView and TrackClick count an event and bill it when its campaign's
	// billing type calls for it. They never fail; billing problems are
	// logged and the event stays unbilled.
	TrackView(ctx context.Context, creativeID, campaignID int64) TrackResult
	TrackClick(ctx context.Context, creativeID, campaignID int64) TrackResult

	// SetCampaignStatus applies an operator status change.
	SetCampaignStatus(ctx context.Context, campaignID int64, status domain.CampaignStatus) error

	// GetStats returns aggregated views, clicks and spend for the specified
	// campaign (optional) and day range. When CampaignID is nil the stats
	// across all campaigns are returned.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// Reconcile compares a campaign's daily metrics with its event log.
	Reconcile(ctx context.Context, campaignID int64, day time.Time) (*domain.Reconciliation, error)
}

// TrackResult reports whether a tracked event was accepted and how much it
// was billed.
type TrackResult struct {
	Success bool
	Charged int64
}

// StatsResp contains aggregated counters and spend for campaigns. Spend is
// in integer minor currency units.
type StatsResp struct {
	Views  int64
	Clicks int64
	Spend  int64
}

// StatsReq selects the days (inclusive, UTC) and optionally one campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
