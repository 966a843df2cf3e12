package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCostPerEvent(t *testing.T) {
	cases := []struct {
		name string
		c    Campaign
		want int64
	}{
		{"cpc is the click price", Campaign{BillingType: BillingCPC, CostValue: 150}, 150},
		{"cpm rounds up", Campaign{BillingType: BillingCPM, CostValue: 2500}, 3},
		{"cpm exact", Campaign{BillingType: BillingCPM, CostValue: 3000}, 3},
		{"cpm below one unit", Campaign{BillingType: BillingCPM, CostValue: 1}, 1},
		{"free", Campaign{BillingType: BillingCPM}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.CostPerEvent())
		})
	}
}

func TestEligible(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	base := func() Campaign {
		return Campaign{
			Status:     StatusActive,
			StartDate:  now.Add(-24 * time.Hour),
			Creatives:  []Creative{{ID: 1}},
			Advertiser: Advertiser{Balance: 10},
		}
	}

	c := base()
	assert.True(t, c.Eligible("", now), "untargeted campaign without subject")
	assert.True(t, c.Eligible("math", now), "untargeted campaign with subject")

	c = base()
	c.TargetSubjects = []string{"math"}
	assert.True(t, c.Eligible("math", now))
	assert.False(t, c.Eligible("history", now))
	assert.False(t, c.Eligible("", now), "targeted campaigns need a subject")

	c = base()
	c.Status = StatusPaused
	assert.False(t, c.Eligible("", now))

	c = base()
	c.Advertiser.Balance = 0
	assert.False(t, c.Eligible("", now))

	c = base()
	c.EndDate = &past
	assert.False(t, c.Eligible("", now))

	c = base()
	c.EndDate = &now
	assert.True(t, c.Eligible("", now), "end date is inclusive")

	c = base()
	c.StartDate = now.Add(time.Minute)
	assert.False(t, c.Eligible("", now))

	c = base()
	c.Creatives = nil
	assert.False(t, c.Eligible("", now))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPendingReview.CanTransitionTo(StatusActive))
	assert.True(t, StatusActive.CanTransitionTo(StatusPaused))
	assert.True(t, StatusPaused.CanTransitionTo(StatusActive))
	assert.True(t, StatusOutOfBudget.CanTransitionTo(StatusPaused))
	assert.True(t, StatusOutOfBudget.CanTransitionTo(StatusActive))
	assert.True(t, StatusRejected.CanTransitionTo(StatusPendingReview))

	assert.False(t, StatusActive.CanTransitionTo(StatusOutOfBudget), "only the budget guard exhausts campaigns")
	assert.False(t, StatusRejected.CanTransitionTo(StatusActive))
	assert.False(t, StatusDraft.CanTransitionTo(StatusActive))
	assert.False(t, CampaignStatus("BOGUS").CanTransitionTo(StatusActive))
}

func TestValidate(t *testing.T) {
	ok := Campaign{Status: StatusActive, BillingType: BillingCPC, CostValue: 10}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.BillingType = "CPA"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.Status = "archived"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.CostValue = -1
	assert.Error(t, bad.Validate())
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	got := Day(time.Date(2026, 1, 2, 1, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got)
}
