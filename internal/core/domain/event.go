package domain

import (
	"time"
)

// EventType is a tracked user interaction with a creative.
type EventType string

const (
	EventView  EventType = "VIEW"
	EventClick EventType = "CLICK"
)

// Valid reports whether e is a known event type.
func (e EventType) Valid() bool {
	return e == EventView || e == EventClick
}

// EventLog is the append-only audit row written once per tracked event.
// Cost may be zero.
type EventLog struct {
	ID         string
	CampaignID int64
	CreativeID int64
	Type       EventType
	Cost       int64
	CreatedAt  time.Time
}

// TrafficHit is one counted view or click, applied to the creative counters
// and to the views/clicks of the day's metrics rows.
type TrafficHit struct {
	CampaignID int64
	CreativeID int64
	Type       EventType
	At         time.Time
}

// DailyMetrics aggregates the counters of one campaign or creative for one
// calendar day (UTC).
type DailyMetrics struct {
	EntityID int64
	Date     time.Time
	Views    int64
	Clicks   int64
	Spend    int64
}

// Day truncates t to the start of its UTC calendar day, the key of every
// DailyMetrics row.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reconciliation compares the day's aggregate metrics of a campaign with the
// event log rows they must be derivable from.
type Reconciliation struct {
	CampaignID    int64
	Date          time.Time
	MetricsSpend  int64
	EventSpend    int64
	MetricsViews  int64
	EventViews    int64
	MetricsClicks int64
	EventClicks   int64
}

// Balanced reports whether spend and traffic agree.
func (r Reconciliation) Balanced() bool {
	return r.MetricsSpend == r.EventSpend &&
		r.MetricsViews == r.EventViews &&
		r.MetricsClicks == r.EventClicks
}
