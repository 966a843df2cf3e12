package domain

import "time"

// Creative represents the rendered ad unit of a campaign. Views and Clicks
// only ever grow.
type Creative struct {
	ID         int64
	CampaignID int64
	Title      string
	Body       string
	ImageURL   string
	LinkURL    string
	Views      int64
	Clicks     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Advertiser is the owner of campaigns and of the prepaid balance they draw
// from.
type Advertiser struct {
	ID          int64
	DisplayName string
	Balance     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ad is what the page-rendering layer receives for a selected creative.
type Ad struct {
	CreativeID     int64
	Title          string
	Body           string
	ImageURL       string
	LinkURL        string
	CampaignID     int64
	AdvertiserName string
	CostValue      int64
	BillingType    BillingType
}

// NewAd builds the Ad for creative cr of campaign c.
func NewAd(c *Campaign, cr Creative) Ad {
	return Ad{
		CreativeID:     cr.ID,
		Title:          cr.Title,
		Body:           cr.Body,
		ImageURL:       cr.ImageURL,
		LinkURL:        cr.LinkURL,
		CampaignID:     c.ID,
		AdvertiserName: c.Advertiser.DisplayName,
		CostValue:      c.CostValue,
		BillingType:    c.BillingType,
	}
}
