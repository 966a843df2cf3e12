package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"campus-ads/internal/core/billing"
	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// TrackView counts a view of creativeID and bills it for CPM campaigns.
// Views over the per-creative limit are dropped before anything else
// happens.
func (u *AdUseCase) TrackView(ctx context.Context, creativeID, campaignID int64) port.TrackResult {
	if !u.allowView(ctx, creativeID) {
		u.metrics.IncRateLimited()
		u.metrics.IncEvent(string(domain.EventView), "rate_limited")
		return port.TrackResult{}
	}
	return u.track(ctx, domain.EventView, creativeID, campaignID)
}

// TrackClick counts a click on creativeID and bills it for CPC campaigns.
func (u *AdUseCase) TrackClick(ctx context.Context, creativeID, campaignID int64) port.TrackResult {
	return u.track(ctx, domain.EventClick, creativeID, campaignID)
}

func (u *AdUseCase) allowView(ctx context.Context, creativeID int64) bool {
	if u.limiter == nil {
		return true
	}
	ok, err := u.limiter.Allow(ctx, creativeID)
	if err != nil {
		u.logger.Warn("view limiter unavailable, allowing view",
			slog.Int64("creative_id", creativeID),
			slog.Any("error", err),
		)
		return true
	}
	return ok
}

// track runs the shared event pipeline: lookup, traffic counters, then
// either a charge or a zero-cost event log row. Writes outlive a cancelled
// request so a counted event is not half recorded.
func (u *AdUseCase) track(ctx context.Context, event domain.EventType, creativeID, campaignID int64) port.TrackResult {
	log := u.logger.With(
		slog.String("event", string(event)),
		slog.Int64("creative_id", creativeID),
		slog.Int64("campaign_id", campaignID),
	)

	cr, err := u.repo.GetCreative(ctx, creativeID)
	if err != nil {
		log.Error("lookup creative", slog.Any("error", err))
		u.metrics.IncEvent(string(event), "error")
		return port.TrackResult{}
	}
	if cr == nil || cr.CampaignID != campaignID {
		u.metrics.IncEvent(string(event), "unknown")
		return port.TrackResult{}
	}
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		log.Error("lookup campaign", slog.Any("error", err))
		u.metrics.IncEvent(string(event), "error")
		return port.TrackResult{}
	}
	if c == nil {
		u.metrics.IncEvent(string(event), "unknown")
		return port.TrackResult{}
	}

	ctx = context.WithoutCancel(ctx)
	at := u.now()

	hit := domain.TrafficHit{CampaignID: campaignID, CreativeID: creativeID, Type: event, At: at}
	if err := u.repo.RecordTraffic(ctx, hit); err != nil {
		log.Error("record traffic", slog.Any("error", err))
	}

	var amount int64
	if c.Status == domain.StatusActive {
		amount = billing.EventAmount(u.rnd, c, event)
	}

	var charged int64
	if amount > 0 {
		charged = u.charge(ctx, log, c, creativeID, event, amount, hit)
	}
	if charged == 0 {
		u.logUnbilled(ctx, log, hit)
	}

	u.metrics.IncEvent(string(event), "ok")
	return port.TrackResult{Success: true, Charged: charged}
}

// charge bills one event and returns the amount taken. Every failure is
// logged and reported as zero: the event stays seen but unbilled.
func (u *AdUseCase) charge(ctx context.Context, log *slog.Logger, c *domain.Campaign, creativeID int64, event domain.EventType, amount int64, hit domain.TrafficHit) int64 {
	ctx, cancel := context.WithTimeout(ctx, u.chargeTimeout)
	defer cancel()

	billingType := string(c.BillingType)
	res, err := u.repo.Charge(ctx, domain.Charge{
		AdvertiserID: c.AdvertiserID,
		CampaignID:   c.ID,
		CreativeID:   creativeID,
		Amount:       amount,
		Event:        event,
		At:           hit.At,
	})
	switch {
	case errors.Is(err, port.ErrInsufficientBalance):
		log.Info("charge refused, balance exhausted", slog.Int64("advertiser_id", c.AdvertiserID))
		u.metrics.ObserveCharge(billingType, "refused", amount)
		return 0
	case err != nil:
		log.Error("charge failed, event left unbilled",
			slog.Int64("advertiser_id", c.AdvertiserID),
			slog.Int64("amount", amount),
			slog.Any("error", err),
		)
		u.metrics.ObserveCharge(billingType, "failed", amount)
		return 0
	}

	u.metrics.ObserveCharge(billingType, "ok", amount)
	if res.Exhausted {
		log.Info("advertiser balance exhausted",
			slog.Int64("advertiser_id", c.AdvertiserID),
			slog.Int64("balance", res.BalanceAfter),
			slog.Int64("suspended_campaigns", res.Suspended),
		)
		u.metrics.AddSuspended(res.Suspended)
	}
	return amount
}

func (u *AdUseCase) logUnbilled(ctx context.Context, log *slog.Logger, hit domain.TrafficHit) {
	err := u.repo.LogEvent(ctx, domain.EventLog{
		ID:         uuid.NewString(),
		CampaignID: hit.CampaignID,
		CreativeID: hit.CreativeID,
		Type:       hit.Type,
		Cost:       0,
		CreatedAt:  hit.At,
	})
	if err != nil {
		log.Error("append event log", slog.Any("error", err))
	}
}
