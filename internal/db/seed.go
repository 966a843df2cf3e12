package db

import (
	"context"
	"fmt"
	"time"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

type seedCampaign struct {
	advertiser int
	name       string
	billing    domain.BillingType
	cost       int64
	daily      int64
	priority   int
	subjects   []string
	status     domain.CampaignStatus
}

var (
	seedAdvertisers = []domain.Advertiser{
		{ID: 1, DisplayName: "Brainly", Balance: 500_000},
		{ID: 2, DisplayName: "Quizlet", Balance: 250_000},
		{ID: 3, DisplayName: "Tutor Hub", Balance: 1_000},
	}

	seedCampaigns = []seedCampaign{
		{advertiser: 1, name: "Homework help", billing: domain.BillingCPM, cost: 2500, daily: 20_000},
		{advertiser: 1, name: "Calculus sprint", billing: domain.BillingCPC, cost: 45, priority: 1, subjects: []string{"math"}},
		{advertiser: 2, name: "Flashcards", billing: domain.BillingCPM, cost: 1800, subjects: []string{"biology", "chemistry"}},
		{advertiser: 2, name: "Exam season", billing: domain.BillingCPC, cost: 60, status: domain.StatusPaused},
		{advertiser: 3, name: "Physics tutors", billing: domain.BillingCPC, cost: 120, subjects: []string{"physics"}},
	}
)

// Seed writes a small demo catalog through w. Records carry fixed ids, so
// seeding twice overwrites rather than duplicates; creative counters are
// kept.
func Seed(ctx context.Context, w port.CatalogWriter, now time.Time) error {
	for i := range seedAdvertisers {
		a := seedAdvertisers[i]
		if err := w.SaveAdvertiser(ctx, &a); err != nil {
			return fmt.Errorf("seed advertiser %q: %w", a.DisplayName, err)
		}
	}

	start := domain.Day(now).AddDate(0, 0, -1)
	end := domain.Day(now).AddDate(0, 3, 0)
	for i, sc := range seedCampaigns {
		c := domain.Campaign{
			ID:             int64(i + 1),
			AdvertiserID:   int64(sc.advertiser),
			Name:           sc.name,
			Status:         sc.status,
			BillingType:    sc.billing,
			CostValue:      sc.cost,
			DailyBudget:    sc.daily,
			StartDate:      start,
			EndDate:        &end,
			Priority:       sc.priority,
			TargetSubjects: sc.subjects,
		}
		if c.Status == "" {
			c.Status = domain.StatusActive
		}
		if err := w.SaveCampaign(ctx, &c); err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.Name, err)
		}

		for j := 1; j <= 2; j++ {
			id := int64(i*2 + j)
			cr := domain.Creative{
				ID:         id,
				CampaignID: c.ID,
				Title:      fmt.Sprintf("%s #%d", sc.name, j),
				Body:       fmt.Sprintf("Study smarter with %s.", seedAdvertisers[sc.advertiser-1].DisplayName),
				ImageURL:   fmt.Sprintf("https://cdn.example.com/creatives/%d.png", id),
				LinkURL:    fmt.Sprintf("https://example.com/landing/%d", id),
			}
			if err := w.SaveCreative(ctx, &cr); err != nil {
				return fmt.Errorf("seed creative %d: %w", id, err)
			}
		}
	}
	return nil
}
