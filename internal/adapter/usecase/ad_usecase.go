package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"campus-ads/internal/core/auction"
	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
	"campus-ads/internal/metrics"
)

const (
	defaultMaxFeedSlots  = 10
	defaultSelectTimeout = 300 * time.Millisecond
	defaultChargeTimeout = 2 * time.Second
)

// AdUseCase provides business logic for ad selection and event processing.
// It orchestrates the auction, the billing rules and the repositories to
// implement the port.AdUseCase interface.
type AdUseCase struct {
	repo     port.AdRepository
	limiter  port.ViewLimiter
	selector *auction.Selector
	rnd      port.RandomSource
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Metrics

	maxFeedSlots  int
	selectTimeout time.Duration
	chargeTimeout time.Duration
}

// Option configures an AdUseCase.
type Option func(*AdUseCase)

func WithLogger(l *slog.Logger) Option {
	return func(u *AdUseCase) { u.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *AdUseCase) { u.metrics = m }
}

// WithAuctionParams replaces auction.DefaultParams.
func WithAuctionParams(p auction.Params) Option {
	return func(u *AdUseCase) { u.selector = auction.NewSelector(p) }
}

// WithRandom replaces the process-wide random source. Access to rnd is
// serialized, so sources that are not safe for concurrent use are fine.
func WithRandom(rnd port.RandomSource) Option {
	return func(u *AdUseCase) { u.rnd = &lockedSource{src: rnd} }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(u *AdUseCase) { u.now = now }
}

// WithMaxFeedSlots bounds the count accepted by SelectFeed.
func WithMaxFeedSlots(n int) Option {
	return func(u *AdUseCase) { u.maxFeedSlots = n }
}

// WithTimeouts sets the deadline of one catalog read and of one charge.
// Zero values keep the defaults.
func WithTimeouts(selectTimeout, chargeTimeout time.Duration) Option {
	return func(u *AdUseCase) {
		if selectTimeout > 0 {
			u.selectTimeout = selectTimeout
		}
		if chargeTimeout > 0 {
			u.chargeTimeout = chargeTimeout
		}
	}
}

// NewAdUseCase creates a new usecase with the provided repository and view
// limiter. A nil limiter accepts every view.
func NewAdUseCase(repo port.AdRepository, limiter port.ViewLimiter, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		repo:          repo,
		limiter:       limiter,
		selector:      auction.NewSelector(auction.DefaultParams()),
		rnd:           globalSource{},
		now:           time.Now,
		logger:        slog.Default(),
		maxFeedSlots:  defaultMaxFeedSlots,
		selectTimeout: defaultSelectTimeout,
		chargeTimeout: defaultChargeTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SelectAd runs a single auction for subjectID. A nil ad with a nil error
// means there is nothing to show.
func (u *AdUseCase) SelectAd(ctx context.Context, subjectID string) (*domain.Ad, error) {
	start := time.Now()
	campaigns, ok := u.loadCatalog(ctx, subjectID)
	if !ok {
		u.metrics.ObserveSelection("single", time.Since(start).Seconds(), 0)
		return nil, nil
	}

	pick, ok := u.selector.Select(u.rnd, campaigns, subjectID, nil)
	if !ok {
		u.metrics.IncNoFill("no_candidate")
		u.metrics.ObserveSelection("single", time.Since(start).Seconds(), 0)
		return nil, nil
	}

	ad := pick.Ad()
	u.metrics.ObserveSelection("single", time.Since(start).Seconds(), 1)
	return &ad, nil
}

// SelectFeed fills up to count slots with distinct creatives. The result may
// be shorter than count, or empty, when the eligible pool runs out.
func (u *AdUseCase) SelectFeed(ctx context.Context, count int, subjectID string) ([]domain.Ad, error) {
	if count < 1 || count > u.maxFeedSlots {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", port.ErrInvalidFeedSize, count, u.maxFeedSlots)
	}

	start := time.Now()
	ads := make([]domain.Ad, 0, count)
	campaigns, ok := u.loadCatalog(ctx, subjectID)
	if !ok {
		u.metrics.ObserveSelection("feed", time.Since(start).Seconds(), 0)
		return ads, nil
	}

	for _, p := range u.selector.Fill(u.rnd, campaigns, subjectID, count) {
		ads = append(ads, p.Ad())
	}
	if len(ads) == 0 {
		u.metrics.IncNoFill("no_candidate")
	}
	u.metrics.ObserveSelection("feed", time.Since(start).Seconds(), len(ads))
	return ads, nil
}

// loadCatalog reads the candidate campaigns under the select timeout. It
// reports false when there is nothing to run an auction on; read failures
// are logged and count as an empty catalog.
func (u *AdUseCase) loadCatalog(ctx context.Context, subjectID string) ([]domain.Campaign, bool) {
	ctx, cancel := context.WithTimeout(ctx, u.selectTimeout)
	defer cancel()

	campaigns, err := u.repo.FetchCandidateCampaigns(ctx, subjectID, u.now())
	if err != nil {
		reason := "catalog_error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		u.logger.Warn("catalog read failed, serving no ad",
			slog.String("subject_id", subjectID),
			slog.String("reason", reason),
			slog.Any("error", err),
		)
		u.metrics.IncNoFill(reason)
		return nil, false
	}
	if len(campaigns) == 0 {
		u.metrics.IncNoFill("empty")
		return nil, false
	}
	return campaigns, true
}

// SetCampaignStatus applies an operator status change. Moving to the
// current status is a no-op. Activation requires a positive advertiser
// balance and, when a daily budget is set, a per-event cost within it.
func (u *AdUseCase) SetCampaignStatus(ctx context.Context, campaignID int64, status domain.CampaignStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign %d: %w", campaignID, err)
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}
	if c.Status == status {
		return nil
	}
	if !c.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, status)
	}
	if status == domain.StatusActive {
		if c.Advertiser.Balance <= 0 || (c.DailyBudget > 0 && c.CostPerEvent() > c.DailyBudget) {
			return domain.ErrReactivation
		}
	}

	ok, err := u.repo.UpdateCampaignStatus(ctx, campaignID, c.Status, status)
	if err != nil {
		return fmt.Errorf("update campaign %d status: %w", campaignID, err)
	}
	if !ok {
		return fmt.Errorf("%w: campaign %d left %s concurrently", domain.ErrInvalidTransition, campaignID, c.Status)
	}
	u.logger.Info("campaign status changed",
		slog.Int64("campaign_id", campaignID),
		slog.String("from", string(c.Status)),
		slog.String("to", string(status)),
	)
	return nil
}

// GetStats returns aggregated stats for campaigns in a period. Bounds are
// truncated to UTC days.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	req.From, req.To = domain.Day(req.From), domain.Day(req.To)
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: %s after %s", port.ErrInvalidRange, req.From.Format(time.DateOnly), req.To.Format(time.DateOnly))
	}
	return u.repo.GetStats(ctx, req)
}

// Reconcile compares a campaign's daily metrics with its event log for one
// day. A mismatch is logged; it is returned either way.
func (u *AdUseCase) Reconcile(ctx context.Context, campaignID int64, day time.Time) (*domain.Reconciliation, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", campaignID, err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	r, err := u.repo.GetReconciliation(ctx, campaignID, domain.Day(day))
	if err != nil {
		return nil, fmt.Errorf("reconcile campaign %d: %w", campaignID, err)
	}
	if !r.Balanced() {
		u.logger.Warn("daily metrics drifted from event log",
			slog.Int64("campaign_id", campaignID),
			slog.String("date", r.Date.Format(time.DateOnly)),
			slog.Int64("metrics_spend", r.MetricsSpend),
			slog.Int64("event_spend", r.EventSpend),
		)
	}
	return r, nil
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

type lockedSource struct {
	mu  sync.Mutex
	src port.RandomSource
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
