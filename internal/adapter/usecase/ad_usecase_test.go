package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
	"campus-ads/internal/core/port/mocks"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

// constant always returns the same draw.
type constant float64

func (c constant) Float64() float64 { return float64(c) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUseCase(repo port.AdRepository, limiter port.ViewLimiter, opts ...Option) *AdUseCase {
	base := []Option{
		WithLogger(quietLogger()),
		WithRandom(constant(0.5)),
		WithClock(func() time.Time { return testNow }),
	}
	return NewAdUseCase(repo, limiter, append(base, opts...)...)
}

func campaign(id int64, billing domain.BillingType, cost int64, priority int, creativeIDs ...int64) domain.Campaign {
	c := domain.Campaign{
		ID:           id,
		AdvertiserID: 100 + id,
		Status:       domain.StatusActive,
		BillingType:  billing,
		CostValue:    cost,
		Priority:     priority,
		StartDate:    testNow.AddDate(0, 0, -1),
		Advertiser:   domain.Advertiser{ID: 100 + id, DisplayName: "Adv", Balance: 10_000},
	}
	for _, crID := range creativeIDs {
		c.Creatives = append(c.Creatives, domain.Creative{ID: crID, CampaignID: id})
	}
	return c
}

// TestAdSelection ensures the usecase only draws from the top priority tier.
func TestAdSelection(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	candidates := []domain.Campaign{
		campaign(1, domain.BillingCPM, 50_000, 0, 10),
		campaign(2, domain.BillingCPC, 10, 3, 20),
	}
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "math", testNow).Return(candidates, nil)

	svc := newTestUseCase(repo, nil)

	ad, err := svc.SelectAd(context.Background(), "math")
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.Equal(t, int64(20), ad.CreativeID)
	assert.Equal(t, int64(2), ad.CampaignID)
}

func TestSelectAdNoCandidates(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "", testNow).Return([]domain.Campaign{}, nil)

	ad, err := newTestUseCase(repo, nil).SelectAd(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ad)
}

func TestSelectAdCatalogFailureIsNoAd(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "", testNow).Return(nil, errors.New("connection refused"))

	ad, err := newTestUseCase(repo, nil).SelectAd(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ad)
}

func TestSelectAdSlowCatalogIsNoAd(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		FetchCandidateCampaigns(mock.Anything, "", testNow).
		RunAndReturn(func(ctx context.Context, _ string, _ time.Time) ([]domain.Campaign, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	svc := newTestUseCase(repo, nil, WithTimeouts(20*time.Millisecond, 0))

	start := time.Now()
	ad, err := svc.SelectAd(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ad)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSelectAdSkipsUnaffordableTier(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	broke := campaign(1, domain.BillingCPC, 500, 5, 10)
	broke.Advertiser.Balance = 499
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "", testNow).Return([]domain.Campaign{broke, campaign(2, domain.BillingCPC, 10, 0, 20)}, nil)

	ad, err := newTestUseCase(repo, nil).SelectAd(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ad, "a lower tier never stands in for an unaffordable top tier")
}

func TestSelectFeedInvalidCount(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	svc := newTestUseCase(repo, nil, WithMaxFeedSlots(10))

	for _, n := range []int{0, -1, 11} {
		_, err := svc.SelectFeed(context.Background(), n, "")
		assert.ErrorIs(t, err, port.ErrInvalidFeedSize, "count %d", n)
	}
}

func TestSelectFeedShortPool(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "bio", testNow).Return([]domain.Campaign{
		campaign(1, domain.BillingCPM, 2000, 0, 10, 11),
		campaign(2, domain.BillingCPC, 30, 0, 20),
	}, nil)

	ads, err := newTestUseCase(repo, nil).SelectFeed(context.Background(), 5, "bio")
	require.NoError(t, err)
	require.Len(t, ads, 3)

	seen := map[int64]bool{}
	for _, ad := range ads {
		assert.False(t, seen[ad.CreativeID], "creative %d repeated", ad.CreativeID)
		seen[ad.CreativeID] = true
	}
}

func TestSelectFeedCatalogFailureIsEmpty(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FetchCandidateCampaigns(mock.Anything, "", testNow).Return(nil, errors.New("down"))

	ads, err := newTestUseCase(repo, nil).SelectFeed(context.Background(), 3, "")
	require.NoError(t, err)
	assert.NotNil(t, ads)
	assert.Empty(t, ads)
}

func TestSetCampaignStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pause", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 10, 0)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)
		repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusActive, domain.StatusPaused).Return(true, nil)

		assert.NoError(t, newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusPaused))
	})

	t.Run("unknown campaign", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, nil)

		err := newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusPaused)
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("operator cannot suspend", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 10, 0)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)

		err := newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusOutOfBudget)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("reactivation needs balance", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 10, 0)
		c.Status = domain.StatusOutOfBudget
		c.Advertiser.Balance = 0
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)

		err := newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusActive)
		assert.ErrorIs(t, err, domain.ErrReactivation)
	})

	t.Run("reactivation needs cost within daily budget", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 500, 0)
		c.Status = domain.StatusPaused
		c.DailyBudget = 400
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)

		err := newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusActive)
		assert.ErrorIs(t, err, domain.ErrReactivation)
	})

	t.Run("lost race", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 10, 0)
		c.Status = domain.StatusPaused
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)
		repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusPaused, domain.StatusActive).Return(false, nil)

		err := newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusActive)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		c := campaign(1, domain.BillingCPC, 10, 0)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)

		assert.NoError(t, newTestUseCase(repo, nil).SetCampaignStatus(ctx, 1, domain.StatusActive))
	})
}

func TestGetStatsRejectsInvertedRange(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	_, err := newTestUseCase(repo, nil).GetStats(context.Background(), port.StatsReq{From: testNow, To: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, port.ErrInvalidRange)
}

func TestGetStatsTruncatesToDays(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetStats(mock.Anything, port.StatsReq{From: domain.Day(testNow), To: domain.Day(testNow)}).
		Return(&port.StatsResp{Views: 3}, nil)

	stats, err := newTestUseCase(repo, nil).GetStats(context.Background(), port.StatsReq{From: testNow, To: testNow.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Views)
}

func TestReconcileUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(nil, nil)

	_, err := newTestUseCase(repo, nil).Reconcile(context.Background(), 4, testNow)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestReconcile(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(4, domain.BillingCPM, 1000, 0)
	repo.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(&c, nil)
	repo.EXPECT().GetReconciliation(mock.Anything, int64(4), domain.Day(testNow)).
		Return(&domain.Reconciliation{CampaignID: 4, MetricsSpend: 5, EventSpend: 4}, nil)

	r, err := newTestUseCase(repo, nil).Reconcile(context.Background(), 4, testNow)
	require.NoError(t, err)
	assert.False(t, r.Balanced())
}

// TestConcurrentBudget ensures concurrent clicks never spend more than the
// balance: the store refuses charges once the balance is gone.
func TestConcurrentBudget(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := campaign(1, domain.BillingCPC, 10, 0, 7)
	cr := c.Creatives[0]

	var (
		mu      sync.Mutex
		balance int64 = 100
	)

	repo.EXPECT().GetCreative(mock.Anything, int64(7)).Return(&cr, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c, nil)
	repo.EXPECT().RecordTraffic(mock.Anything, mock.AnythingOfType("domain.TrafficHit")).Return(nil)
	repo.EXPECT().LogEvent(mock.Anything, mock.AnythingOfType("domain.EventLog")).Return(nil)
	repo.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("domain.Charge")).
		RunAndReturn(func(_ context.Context, ch domain.Charge) (*domain.ChargeResult, error) {
			mu.Lock()
			defer mu.Unlock()
			if balance <= 0 {
				return nil, port.ErrInsufficientBalance
			}
			balance -= ch.Amount
			return &domain.ChargeResult{BalanceAfter: balance, Exhausted: balance <= 0}, nil
		})

	svc := newTestUseCase(repo, nil)

	var (
		wg      sync.WaitGroup
		charged int64
		cmu     sync.Mutex
	)
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := svc.TrackClick(context.Background(), 7, 1)
			assert.True(t, res.Success)
			cmu.Lock()
			charged += res.Charged
			cmu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), balance)
	assert.Equal(t, int64(100), charged)
}
