package httpadapter

import "campus-ads/internal/core/domain"

type adRequest struct {
	SubjectID string `json:"subject_id"`
}

type feedRequest struct {
	SubjectID string `json:"subject_id"`
	Count     int    `json:"count"`
}

type adResponse struct {
	CreativeID     int64  `json:"creative_id"`
	CampaignID     int64  `json:"campaign_id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	ImageURL       string `json:"image_url"`
	LinkURL        string `json:"link_url"`
	AdvertiserName string `json:"advertiser_name"`
	BillingType    string `json:"billing_type"`
	CostValue      int64  `json:"cost_value"`
}

func newAdResponse(ad domain.Ad) adResponse {
	return adResponse{
		CreativeID:     ad.CreativeID,
		CampaignID:     ad.CampaignID,
		Title:          ad.Title,
		Body:           ad.Body,
		ImageURL:       ad.ImageURL,
		LinkURL:        ad.LinkURL,
		AdvertiserName: ad.AdvertiserName,
		BillingType:    string(ad.BillingType),
		CostValue:      ad.CostValue,
	}
}

type trackRequest struct {
	CreativeID int64 `json:"creative_id"`
	CampaignID int64 `json:"campaign_id"`
}

type trackResponse struct {
	Success bool `json:"success"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type statsResponse struct {
	Views  int64 `json:"views"`
	Clicks int64 `json:"clicks"`
	Spend  int64 `json:"spend"`
}

type reconcileResponse struct {
	CampaignID    int64  `json:"campaign_id"`
	Date          string `json:"date"`
	Balanced      bool   `json:"balanced"`
	MetricsSpend  int64  `json:"metrics_spend"`
	EventSpend    int64  `json:"event_spend"`
	MetricsViews  int64  `json:"metrics_views"`
	EventViews    int64  `json:"event_views"`
	MetricsClicks int64  `json:"metrics_clicks"`
	EventClicks   int64  `json:"event_clicks"`
}
