package bolt

import (
	"time"

	"campus-ads/internal/core/domain"
)

// Stored shapes. They are kept apart from the domain types so the file
// format does not change when a domain struct grows a field.

type advertiserRecord struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"display_name"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r advertiserRecord) toDomain() domain.Advertiser {
	return domain.Advertiser{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Balance:     r.Balance,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type campaignRecord struct {
	ID             int64      `json:"id"`
	AdvertiserID   int64      `json:"advertiser_id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	BillingType    string     `json:"billing_type"`
	CostValue      int64      `json:"cost_value"`
	DailyBudget    int64      `json:"daily_budget"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Priority       int        `json:"priority"`
	TargetSubjects []string   `json:"target_subjects,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func newCampaignRecord(c *domain.Campaign) campaignRecord {
	return campaignRecord{
		ID:             c.ID,
		AdvertiserID:   c.AdvertiserID,
		Name:           c.Name,
		Status:         string(c.Status),
		BillingType:    string(c.BillingType),
		CostValue:      c.CostValue,
		DailyBudget:    c.DailyBudget,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Priority:       c.Priority,
		TargetSubjects: c.TargetSubjects,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r campaignRecord) toDomain() domain.Campaign {
	return domain.Campaign{
		ID:             r.ID,
		AdvertiserID:   r.AdvertiserID,
		Name:           r.Name,
		Status:         domain.CampaignStatus(r.Status),
		BillingType:    domain.BillingType(r.BillingType),
		CostValue:      r.CostValue,
		DailyBudget:    r.DailyBudget,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Priority:       r.Priority,
		TargetSubjects: r.TargetSubjects,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type creativeRecord struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ImageURL   string    `json:"image_url"`
	LinkURL    string    `json:"link_url"`
	Views      int64     `json:"views"`
	Clicks     int64     `json:"clicks"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r creativeRecord) toDomain() domain.Creative {
	return domain.Creative{
		ID:         r.ID,
		CampaignID: r.CampaignID,
		Title:      r.Title,
		Body:       r.Body,
		ImageURL:   r.ImageURL,
		LinkURL:    r.LinkURL,
		Views:      r.Views,
		Clicks:     r.Clicks,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type metricsRecord struct {
	Views  int64 `json:"views"`
	Clicks int64 `json:"clicks"`
	Spend  int64 `json:"spend"`
}

type transactionRecord struct {
	ID           string                     `json:"id"`
	AdvertiserID int64                      `json:"advertiser_id"`
	Type         string                     `json:"type"`
	Amount       int64                      `json:"amount"`
	Status       string                     `json:"status"`
	Metadata     domain.TransactionMetadata `json:"metadata"`
	CreatedAt    time.Time                  `json:"created_at"`
}

type eventRecord struct {
	ID         string    `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	CreativeID int64     `json:"creative_id"`
	Type       string    `json:"type"`
	Cost       int64     `json:"cost"`
	CreatedAt  time.Time `json:"created_at"`
}
