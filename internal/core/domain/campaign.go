package domain

import (
	"fmt"
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft         CampaignStatus = "DRAFT"
	StatusPendingReview CampaignStatus = "PENDING_REVIEW"
	StatusActive        CampaignStatus = "ACTIVE"
	StatusPaused        CampaignStatus = "PAUSED"
	StatusOutOfBudget   CampaignStatus = "OUT_OF_BUDGET"
	StatusRejected      CampaignStatus = "REJECTED"
)

// transitions lists the statuses reachable from each status. OUT_OF_BUDGET
// is only ever entered by the budget guard, never by an operator.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:         {StatusPendingReview},
	StatusPendingReview: {StatusActive, StatusRejected},
	StatusActive:        {StatusPaused},
	StatusPaused:        {StatusActive},
	StatusOutOfBudget:   {StatusPaused, StatusActive},
	StatusRejected:      {StatusPendingReview},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether an operator may move a campaign from s to
// next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	return slices.Contains(transitions[s], next)
}

// BillingType selects what a campaign pays for.
type BillingType string

const (
	BillingCPC BillingType = "CPC" // per click
	BillingCPM BillingType = "CPM" // per 1000 views
)

// Valid reports whether b is a known billing type.
func (b BillingType) Valid() bool {
	return b == BillingCPC || b == BillingCPM
}

// Campaign represents an advertising campaign together with the data the
// auction needs: its creatives and a snapshot of its advertiser.
// Money is stored in integer minor units (e.g. cents).
type Campaign struct {
	ID             int64
	AdvertiserID   int64
	Name           string
	Status         CampaignStatus
	BillingType    BillingType
	CostValue      int64 // per click (CPC) or per 1000 views (CPM)
	DailyBudget    int64
	StartDate      time.Time
	EndDate        *time.Time
	Priority       int
	TargetSubjects []string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Creatives  []Creative
	Advertiser Advertiser
}

// Validate checks the invariants a campaign row must satisfy before the
// core accepts it.
func (c *Campaign) Validate() error {
	if !c.Status.Valid() {
		return fmt.Errorf("campaign %d: unknown status %q", c.ID, c.Status)
	}
	if !c.BillingType.Valid() {
		return fmt.Errorf("campaign %d: unknown billing type %q", c.ID, c.BillingType)
	}
	if c.CostValue < 0 || c.DailyBudget < 0 {
		return fmt.Errorf("campaign %d: negative money value", c.ID)
	}
	return nil
}

// CostPerEvent is the smallest whole amount a single billable event can
// cost: the click price for CPC and the per-view price rounded up for CPM.
func (c *Campaign) CostPerEvent() int64 {
	if c.BillingType == BillingCPM {
		return (c.CostValue + 999) / 1000
	}
	return c.CostValue
}

// Untargeted reports whether the campaign applies to every subject.
func (c *Campaign) Untargeted() bool {
	return len(c.TargetSubjects) == 0
}

// Targets reports whether subjectID is one of the campaign's target
// subjects. An empty subjectID never matches.
func (c *Campaign) Targets(subjectID string) bool {
	return subjectID != "" && slices.Contains(c.TargetSubjects, subjectID)
}

// MatchesSubject applies the catalog targeting rule: untargeted campaigns
// match any context, targeted ones only a supplied subject in their set.
func (c *Campaign) MatchesSubject(subjectID string) bool {
	return c.Untargeted() || c.Targets(subjectID)
}

// RunningAt reports whether now falls inside the campaign's flight dates.
func (c *Campaign) RunningAt(now time.Time) bool {
	if c.StartDate.After(now) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(now)
}

// Eligible applies the full catalog rule to a loaded campaign.
func (c *Campaign) Eligible(subjectID string, now time.Time) bool {
	return c.Status == StatusActive &&
		c.Advertiser.Balance > 0 &&
		c.RunningAt(now) &&
		c.MatchesSubject(subjectID) &&
		len(c.Creatives) > 0
}
