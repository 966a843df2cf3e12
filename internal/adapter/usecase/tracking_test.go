package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
	"campus-ads/internal/core/port/mocks"
)

func unbilled(event domain.EventType, campaignID, creativeID int64) any {
	return mock.MatchedBy(func(e domain.EventLog) bool {
		return e.ID != "" && e.Cost == 0 && e.Type == event &&
			e.CampaignID == campaignID && e.CreativeID == creativeID && e.CreatedAt.Equal(testNow)
	})
}

func expectLookup(repo *mocks.MockAdRepository, c *domain.Campaign, creativeID int64) {
	cr := domain.Creative{ID: creativeID, CampaignID: c.ID}
	repo.EXPECT().GetCreative(mock.Anything, creativeID).Return(&cr, nil)
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
}

func TestTrackViewRateLimited(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	limiter := mocks.NewMockViewLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(7)).Return(false, nil)

	res := newTestUseCase(repo, limiter).TrackView(context.Background(), 7, 1)

	assert.False(t, res.Success)
	assert.Zero(t, res.Charged)
}

func TestTrackViewLimiterFailureAllows(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	limiter := mocks.NewMockViewLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(7)).Return(false, errors.New("redis: connection refused"))

	c := campaign(1, domain.BillingCPC, 10, 0)
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, domain.TrafficHit{CampaignID: 1, CreativeID: 7, Type: domain.EventView, At: testNow}).Return(nil)
	repo.EXPECT().LogEvent(mock.Anything, unbilled(domain.EventView, 1, 7)).Return(nil)

	res := newTestUseCase(repo, limiter).TrackView(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Zero(t, res.Charged)
}

func TestTrackUnknownCreative(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetCreative(mock.Anything, int64(7)).Return(nil, nil)

	res := newTestUseCase(repo, nil).TrackClick(context.Background(), 7, 1)

	assert.False(t, res.Success)
}

func TestTrackCreativeOfAnotherCampaign(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetCreative(mock.Anything, int64(7)).Return(&domain.Creative{ID: 7, CampaignID: 2}, nil)

	res := newTestUseCase(repo, nil).TrackClick(context.Background(), 7, 1)

	assert.False(t, res.Success)
}

func TestTrackLookupFailure(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetCreative(mock.Anything, int64(7)).Return(nil, errors.New("timeout"))

	res := newTestUseCase(repo, nil).TrackView(context.Background(), 7, 1)

	assert.False(t, res.Success)
}

func TestTrackClickChargesCPC(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPC, 120, 0)
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, domain.TrafficHit{CampaignID: 1, CreativeID: 7, Type: domain.EventClick, At: testNow}).Return(nil)
	repo.EXPECT().Charge(mock.Anything, domain.Charge{
		AdvertiserID: c.AdvertiserID,
		CampaignID:   1,
		CreativeID:   7,
		Amount:       120,
		Event:        domain.EventClick,
		At:           testNow,
	}).Return(&domain.ChargeResult{TransactionID: "t1", BalanceAfter: 9880}, nil)

	res := newTestUseCase(repo, nil).TrackClick(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Equal(t, int64(120), res.Charged)
}

func TestTrackViewChargesCPM(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPM, 2500, 0)
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
	// a 0.5 draw against a 0.5 remainder rounds down
	repo.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(ch domain.Charge) bool {
		return ch.Amount == 2 && ch.Event == domain.EventView
	})).Return(&domain.ChargeResult{BalanceAfter: 9998}, nil)

	res := newTestUseCase(repo, nil).TrackView(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Equal(t, int64(2), res.Charged)
}

func TestTrackViewOnCPCIsNotBilled(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPC, 120, 0)
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
	repo.EXPECT().LogEvent(mock.Anything, unbilled(domain.EventView, 1, 7)).Return(nil)

	res := newTestUseCase(repo, nil).TrackView(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Zero(t, res.Charged)
}

func TestTrackCheapCPMViewRoundsToZero(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPM, 400, 0)
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
	repo.EXPECT().LogEvent(mock.Anything, unbilled(domain.EventView, 1, 7)).Return(nil)

	res := newTestUseCase(repo, nil).TrackView(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Zero(t, res.Charged)
}

func TestTrackPausedCampaignCountsWithoutBilling(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPC, 120, 0)
	c.Status = domain.StatusPaused
	expectLookup(repo, &c, 7)
	repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
	repo.EXPECT().LogEvent(mock.Anything, unbilled(domain.EventClick, 1, 7)).Return(nil)

	res := newTestUseCase(repo, nil).TrackClick(context.Background(), 7, 1)

	assert.True(t, res.Success)
	assert.Zero(t, res.Charged)
}

func TestTrackChargeFailureLeavesEventUnbilled(t *testing.T) {
	for name, chargeErr := range map[string]error{
		"refused": port.ErrInsufficientBalance,
		"failed":  errors.New("deadlock detected"),
	} {
		t.Run(name, func(t *testing.T) {
			repo := mocks.NewMockAdRepository(t)
			c := campaign(1, domain.BillingCPC, 120, 0)
			expectLookup(repo, &c, 7)
			repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
			repo.EXPECT().Charge(mock.Anything, mock.AnythingOfType("domain.Charge")).Return(nil, chargeErr)
			repo.EXPECT().LogEvent(mock.Anything, unbilled(domain.EventClick, 1, 7)).Return(nil)

			res := newTestUseCase(repo, nil).TrackClick(context.Background(), 7, 1)

			assert.True(t, res.Success)
			assert.Zero(t, res.Charged)
		})
	}
}

func TestTrackSurvivesCancelledRequest(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPC, 120, 0)
	expectLookup(repo, &c, 7)

	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().
		RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).
		RunAndReturn(func(ctx context.Context, _ domain.TrafficHit) error {
			cancel()
			return ctx.Err()
		})
	repo.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("domain.Charge")).
		RunAndReturn(func(ctx context.Context, ch domain.Charge) (*domain.ChargeResult, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &domain.ChargeResult{BalanceAfter: 1}, nil
		})

	res := newTestUseCase(repo, nil).TrackClick(ctx, 7, 1)

	assert.True(t, res.Success)
	assert.Equal(t, int64(120), res.Charged)
}
