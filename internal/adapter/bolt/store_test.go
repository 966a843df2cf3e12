package bolt

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fixture struct {
	advertiser domain.Advertiser
	campaign   domain.Campaign
	creative   domain.Creative
}

func seedCampaign(t *testing.T, s *Store, balance int64, c domain.Campaign) fixture {
	t.Helper()
	ctx := context.Background()

	adv := domain.Advertiser{DisplayName: "Quizlet", Balance: balance}
	require.NoError(t, s.SaveAdvertiser(ctx, &adv))

	c.AdvertiserID = adv.ID
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if c.BillingType == "" {
		c.BillingType = domain.BillingCPC
	}
	if c.StartDate.IsZero() {
		c.StartDate = testNow.AddDate(0, 0, -1)
	}
	require.NoError(t, s.SaveCampaign(ctx, &c))

	cr := domain.Creative{CampaignID: c.ID, Title: "Flashcards", LinkURL: "https://example.com"}
	require.NoError(t, s.SaveCreative(ctx, &cr))
	return fixture{advertiser: adv, campaign: c, creative: cr}
}

func TestFetchCandidateCampaigns(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	end := testNow.AddDate(0, 0, -1)

	open := seedCampaign(t, s, 1000, domain.Campaign{Name: "open", CostValue: 10})
	targeted := seedCampaign(t, s, 1000, domain.Campaign{Name: "math", CostValue: 10, TargetSubjects: []string{"math"}})
	seedCampaign(t, s, 1000, domain.Campaign{Name: "paused", CostValue: 10, Status: domain.StatusPaused})
	seedCampaign(t, s, 0, domain.Campaign{Name: "broke", CostValue: 10})
	seedCampaign(t, s, 1000, domain.Campaign{Name: "ended", CostValue: 10, StartDate: end.AddDate(0, 0, -5), EndDate: &end})
	seedCampaign(t, s, 1000, domain.Campaign{Name: "future", CostValue: 10, StartDate: testNow.Add(time.Hour)})

	names := func(cs []domain.Campaign) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	got, err := s.FetchCandidateCampaigns(ctx, "", testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, names(got))
	require.Len(t, got[0].Creatives, 1)
	assert.Equal(t, open.creative.ID, got[0].Creatives[0].ID)
	assert.Equal(t, int64(1000), got[0].Advertiser.Balance)
	assert.Equal(t, "Quizlet", got[0].Advertiser.DisplayName)

	got, err = s.FetchCandidateCampaigns(ctx, "math", testNow)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"open", "math"}, names(got))

	got, err = s.FetchCandidateCampaigns(ctx, "history", testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, names(got))
	assert.NotEqual(t, targeted.campaign.ID, got[0].ID)
}

func TestFetchCandidateCampaignsWithoutCreatives(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	adv := domain.Advertiser{DisplayName: "Empty", Balance: 10}
	require.NoError(t, s.SaveAdvertiser(ctx, &adv))
	c := domain.Campaign{AdvertiserID: adv.ID, Status: domain.StatusActive, BillingType: domain.BillingCPM, CostValue: 10, StartDate: testNow}
	require.NoError(t, s.SaveCampaign(ctx, &c))

	got, err := s.FetchCandidateCampaigns(ctx, "", testNow)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestChargeWritesEveryRecord(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	f := seedCampaign(t, s, 500, domain.Campaign{CostValue: 120})

	res, err := s.Charge(ctx, domain.Charge{
		AdvertiserID: f.advertiser.ID,
		CampaignID:   f.campaign.ID,
		CreativeID:   f.creative.ID,
		Amount:       120,
		Event:        domain.EventClick,
		At:           testNow,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.TransactionID)
	assert.Equal(t, int64(380), res.BalanceAfter)
	assert.False(t, res.Exhausted)

	adv, err := s.GetAdvertiser(ctx, f.advertiser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(380), adv.Balance)

	stats, err := s.GetStats(ctx, port.StatsReq{From: testNow, To: testNow, CampaignID: &f.campaign.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.Spend)

	r, err := s.GetReconciliation(ctx, f.campaign.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(120), r.EventSpend)
	assert.Equal(t, int64(1), r.EventClicks)
}

func TestChargeExhaustsBalance(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	f := seedCampaign(t, s, 100, domain.Campaign{CostValue: 100})

	// a second active campaign of the same advertiser, and a paused one
	other := domain.Campaign{AdvertiserID: f.advertiser.ID, Status: domain.StatusActive, BillingType: domain.BillingCPM, CostValue: 1000, StartDate: testNow}
	require.NoError(t, s.SaveCampaign(ctx, &other))
	paused := domain.Campaign{AdvertiserID: f.advertiser.ID, Status: domain.StatusPaused, BillingType: domain.BillingCPM, CostValue: 1000, StartDate: testNow}
	require.NoError(t, s.SaveCampaign(ctx, &paused))

	charge := domain.Charge{
		AdvertiserID: f.advertiser.ID,
		CampaignID:   f.campaign.ID,
		CreativeID:   f.creative.ID,
		Amount:       100,
		Event:        domain.EventClick,
		At:           testNow,
	}
	res, err := s.Charge(ctx, charge)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.BalanceAfter)
	assert.True(t, res.Exhausted)
	assert.Equal(t, int64(2), res.Suspended)

	for id, want := range map[int64]domain.CampaignStatus{
		f.campaign.ID: domain.StatusOutOfBudget,
		other.ID:      domain.StatusOutOfBudget,
		paused.ID:     domain.StatusPaused,
	} {
		c, err := s.GetCampaign(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, c.Status, "campaign %d", id)
	}

	_, err = s.Charge(ctx, charge)
	assert.ErrorIs(t, err, port.ErrInsufficientBalance)

	adv, err := s.GetAdvertiser(ctx, f.advertiser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), adv.Balance, "refused charge leaves the balance alone")
}

func TestRefusedChargeHealsGuard(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	// balance already exhausted but the campaign is still ACTIVE, as after
	// a lost race
	f := seedCampaign(t, s, 0, domain.Campaign{CostValue: 10})

	_, err := s.Charge(ctx, domain.Charge{
		AdvertiserID: f.advertiser.ID,
		CampaignID:   f.campaign.ID,
		CreativeID:   f.creative.ID,
		Amount:       10,
		Event:        domain.EventClick,
		At:           testNow,
	})
	require.ErrorIs(t, err, port.ErrInsufficientBalance)

	c, err := s.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutOfBudget, c.Status)
}

func TestConcurrentChargesAreSerialized(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	f := seedCampaign(t, s, 10_000, domain.Campaign{CostValue: 7})

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				_, err := s.Charge(ctx, domain.Charge{
					AdvertiserID: f.advertiser.ID,
					CampaignID:   f.campaign.ID,
					CreativeID:   f.creative.ID,
					Amount:       7,
					Event:        domain.EventClick,
					At:           testNow,
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	adv, err := s.GetAdvertiser(ctx, f.advertiser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000-workers*perWorker*7), adv.Balance)

	r, err := s.GetReconciliation(ctx, f.campaign.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker*7), r.MetricsSpend)
	assert.Equal(t, r.MetricsSpend, r.EventSpend)
}

func TestRecordTrafficAndReconcile(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	f := seedCampaign(t, s, 1000, domain.Campaign{BillingType: domain.BillingCPM, CostValue: 2500})

	for i := range 3 {
		at := testNow.Add(time.Duration(i) * time.Minute)
		hit := domain.TrafficHit{CampaignID: f.campaign.ID, CreativeID: f.creative.ID, Type: domain.EventView, At: at}
		require.NoError(t, s.RecordTraffic(ctx, hit))
		_, err := s.Charge(ctx, domain.Charge{
			AdvertiserID: f.advertiser.ID,
			CampaignID:   f.campaign.ID,
			CreativeID:   f.creative.ID,
			Amount:       2,
			Event:        domain.EventView,
			At:           at,
		})
		require.NoError(t, err)
	}
	click := domain.TrafficHit{CampaignID: f.campaign.ID, CreativeID: f.creative.ID, Type: domain.EventClick, At: testNow}
	require.NoError(t, s.RecordTraffic(ctx, click))
	require.NoError(t, s.LogEvent(ctx, domain.EventLog{CampaignID: f.campaign.ID, CreativeID: f.creative.ID, Type: domain.EventClick, CreatedAt: testNow}))

	// an event on the next day must not leak into today's sums
	tomorrow := testNow.AddDate(0, 0, 1)
	require.NoError(t, s.LogEvent(ctx, domain.EventLog{CampaignID: f.campaign.ID, CreativeID: f.creative.ID, Type: domain.EventView, Cost: 3, CreatedAt: tomorrow}))

	cr, err := s.GetCreative(ctx, f.creative.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cr.Views)
	assert.Equal(t, int64(1), cr.Clicks)

	r, err := s.GetReconciliation(ctx, f.campaign.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.Reconciliation{
		CampaignID:    f.campaign.ID,
		Date:          domain.Day(testNow),
		MetricsSpend:  6,
		EventSpend:    6,
		MetricsViews:  3,
		EventViews:    3,
		MetricsClicks: 1,
		EventClicks:   1,
	}, *r)
	assert.True(t, r.Balanced())
}

func TestGetStatsRange(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	a := seedCampaign(t, s, 1000, domain.Campaign{CostValue: 5})
	b := seedCampaign(t, s, 1000, domain.Campaign{CostValue: 5})

	for _, d := range []int{-2, -1, 0} {
		at := testNow.AddDate(0, 0, d)
		for _, f := range []fixture{a, b} {
			require.NoError(t, s.RecordTraffic(ctx, domain.TrafficHit{CampaignID: f.campaign.ID, CreativeID: f.creative.ID, Type: domain.EventView, At: at}))
		}
	}

	all, err := s.GetStats(ctx, port.StatsReq{From: testNow.AddDate(0, 0, -1), To: testNow})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Views)

	one, err := s.GetStats(ctx, port.StatsReq{From: testNow.AddDate(0, 0, -7), To: testNow, CampaignID: &a.campaign.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), one.Views)
}

func TestUpdateCampaignStatus(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	f := seedCampaign(t, s, 1000, domain.Campaign{CostValue: 5})

	ok, err := s.UpdateCampaignStatus(ctx, f.campaign.ID, domain.StatusActive, domain.StatusPaused)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.UpdateCampaignStatus(ctx, f.campaign.ID, domain.StatusActive, domain.StatusPaused)
	require.NoError(t, err)
	assert.False(t, ok, "stale from status")

	ok, err = s.UpdateCampaignStatus(ctx, 9999, domain.StatusActive, domain.StatusPaused)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetMissingRecords(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	c, err := s.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, c)

	cr, err := s.GetCreative(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cr)
}
