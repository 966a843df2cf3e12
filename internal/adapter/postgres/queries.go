package postgres

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"campus-ads/internal/core/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var campaignColumns = []string{
	"c.id",
	"c.advertiser_id",
	"c.name",
	"c.status",
	"c.billing_type",
	"c.cost_value",
	"c.daily_budget",
	"c.start_date",
	"c.end_date",
	"c.priority",
	"c.target_subjects",
	"c.created_at",
	"c.updated_at",
	"a.id",
	"a.display_name",
	"a.balance",
	"a.created_at",
	"a.updated_at",
}

var creativeColumns = []string{
	"id",
	"campaign_id",
	"title",
	"body",
	"image_url",
	"link_url",
	"views",
	"clicks",
	"created_at",
	"updated_at",
}

func campaignsWithAdvertiser() squirrel.SelectBuilder {
	return psql.Select(campaignColumns...).
		From("campaigns c").
		Join("advertiser_profiles a ON a.id = c.advertiser_id")
}

// candidateCampaignsQuery selects the campaigns that may enter an auction
// at now. Without a subject only untargeted campaigns qualify.
func candidateCampaignsQuery(subjectID string, now time.Time) squirrel.Sqlizer {
	q := campaignsWithAdvertiser().
		Where(squirrel.Eq{"c.status": string(domain.StatusActive)}).
		Where(squirrel.Gt{"a.balance": 0}).
		Where(squirrel.LtOrEq{"c.start_date": now}).
		Where(squirrel.Or{
			squirrel.Eq{"c.end_date": nil},
			squirrel.GtOrEq{"c.end_date": now},
		}).
		Where("EXISTS (SELECT 1 FROM creatives cr WHERE cr.campaign_id = c.id)")

	if subjectID == "" {
		q = q.Where("cardinality(c.target_subjects) = 0")
	} else {
		q = q.Where("(cardinality(c.target_subjects) = 0 OR ? = ANY(c.target_subjects))", subjectID)
	}
	return q.OrderBy("c.id")
}

func campaignByIDQuery(id int64) squirrel.Sqlizer {
	return campaignsWithAdvertiser().Where(squirrel.Eq{"c.id": id})
}

func creativesForCampaignsQuery(campaignIDs []int64) squirrel.Sqlizer {
	return psql.Select(creativeColumns...).
		From("creatives").
		Where("campaign_id = ANY(?)", campaignIDs).
		OrderBy("campaign_id", "id")
}

func creativeByIDQuery(id int64) squirrel.Sqlizer {
	return psql.Select(creativeColumns...).
		From("creatives").
		Where(squirrel.Eq{"id": id})
}

// debitQuery takes amount from a balance that is still positive and
// returns what is left. The row lock it takes serializes concurrent charges
// of one advertiser.
func debitQuery(advertiserID, amount int64, at time.Time) squirrel.Sqlizer {
	return psql.Update("advertiser_profiles").
		Set("balance", squirrel.Expr("balance - ?", amount)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": advertiserID}).
		Where(squirrel.Gt{"balance": 0}).
		Suffix("RETURNING balance")
}

func insertTransactionQuery(t domain.Transaction, metadata []byte) squirrel.Sqlizer {
	return psql.Insert("transactions").
		Columns("id", "advertiser_id", "type", "amount", "status", "metadata", "created_at").
		Values(t.ID, t.AdvertiserID, string(t.Type), t.Amount, string(t.Status), string(metadata), t.CreatedAt)
}

// upsertMetricsQuery adds delta to the day's row of table, creating it when
// missing. key is the entity column of the table.
func upsertMetricsQuery(table, key string, id int64, day time.Time, delta domain.DailyMetrics) squirrel.Sqlizer {
	return psql.Insert(table).
		Columns(key, "date", "views", "clicks", "spend").
		Values(id, day, delta.Views, delta.Clicks, delta.Spend).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%[2]s, date) DO UPDATE SET views = %[1]s.views + EXCLUDED.views, clicks = %[1]s.clicks + EXCLUDED.clicks, spend = %[1]s.spend + EXCLUDED.spend",
			table, key,
		))
}

func insertEventQuery(e domain.EventLog) squirrel.Sqlizer {
	return psql.Insert("ad_events").
		Columns("id", "campaign_id", "creative_id", "type", "cost", "event_date", "created_at").
		Values(e.ID, e.CampaignID, e.CreativeID, string(e.Type), e.Cost, domain.Day(e.CreatedAt), e.CreatedAt)
}

// suspendCampaignsQuery moves every ACTIVE campaign of an advertiser to
// OUT_OF_BUDGET.
func suspendCampaignsQuery(advertiserID int64, at time.Time) squirrel.Sqlizer {
	return psql.Update("campaigns").
		Set("status", string(domain.StatusOutOfBudget)).
		Set("updated_at", at).
		Where(squirrel.Eq{"advertiser_id": advertiserID, "status": string(domain.StatusActive)})
}

func countTrafficQuery(hit domain.TrafficHit) squirrel.Sqlizer {
	column := "views"
	if hit.Type == domain.EventClick {
		column = "clicks"
	}
	return psql.Update("creatives").
		Set(column, squirrel.Expr(column+" + 1")).
		Set("updated_at", hit.At).
		Where(squirrel.Eq{"id": hit.CreativeID})
}

func updateStatusQuery(id int64, from, to domain.CampaignStatus, at time.Time) squirrel.Sqlizer {
	return psql.Update("campaigns").
		Set("status", string(to)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "status": string(from)})
}

func statsQuery(from, to time.Time, campaignID *int64) squirrel.Sqlizer {
	q := psql.Select("COALESCE(sum(views), 0)", "COALESCE(sum(clicks), 0)", "COALESCE(sum(spend), 0)").
		From("campaign_daily_metrics").
		Where(squirrel.GtOrEq{"date": domain.Day(from)}).
		Where(squirrel.LtOrEq{"date": domain.Day(to)})
	if campaignID != nil {
		q = q.Where(squirrel.Eq{"campaign_id": *campaignID})
	}
	return q
}

func dailyMetricsQuery(campaignID int64, day time.Time) squirrel.Sqlizer {
	return psql.Select("views", "clicks", "spend").
		From("campaign_daily_metrics").
		Where(squirrel.Eq{"campaign_id": campaignID, "date": day})
}

func eventTotalsQuery(campaignID int64, day time.Time) squirrel.Sqlizer {
	return psql.Select(
		"COALESCE(sum(cost), 0)",
		"count(*) FILTER (WHERE type = 'VIEW')",
		"count(*) FILTER (WHERE type = 'CLICK')",
	).
		From("ad_events").
		Where(squirrel.Eq{"campaign_id": campaignID, "event_date": day})
}
