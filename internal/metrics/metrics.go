package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors of the ad engine. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	AdsServedTotal        *prometheus.CounterVec
	NoFillTotal           *prometheus.CounterVec
	SelectionDuration     *prometheus.HistogramVec
	EventsTotal           *prometheus.CounterVec
	ChargesTotal          *prometheus.CounterVec
	SpendTotal            *prometheus.CounterVec
	ViewsRateLimitedTotal prometheus.Counter
	CampaignsSuspended    prometheus.Counter

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		AdsServedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ads_served_total",
				Help: "Total number of creatives returned to the rendering layer",
			},
			[]string{"mode"},
		),
		NoFillTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ads_no_fill_total",
				Help: "Requests that returned no ad, by reason",
			},
			[]string{"reason"},
		),
		SelectionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_ads_selection_duration_seconds",
				Help:    "Time spent reading the catalog and running the auction",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"mode"},
		),
		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ads_events_total",
				Help: "Tracked views and clicks, by outcome",
			},
			[]string{"event", "outcome"},
		),
		ChargesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ads_charges_total",
				Help: "Charge attempts against advertiser balances, by outcome",
			},
			[]string{"billing_type", "outcome"},
		),
		SpendTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ads_spend_minor_units_total",
				Help: "Money charged to advertisers in minor currency units",
			},
			[]string{"billing_type"},
		),
		ViewsRateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "campus_ads_views_rate_limited_total",
				Help: "Views rejected by the per-creative limiter",
			},
		),
		CampaignsSuspended: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "campus_ads_campaigns_out_of_budget_total",
				Help: "Campaigns moved to OUT_OF_BUDGET by the budget guard",
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.AdsServedTotal,
		m.NoFillTotal,
		m.SelectionDuration,
		m.EventsTotal,
		m.ChargesTotal,
		m.SpendTotal,
		m.ViewsRateLimitedTotal,
		m.CampaignsSuspended,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveSelection(mode string, seconds float64, served int) {
	if m == nil {
		return
	}
	m.SelectionDuration.WithLabelValues(mode).Observe(seconds)
	if served > 0 {
		m.AdsServedTotal.WithLabelValues(mode).Add(float64(served))
	}
}

func (m *Metrics) IncNoFill(reason string) {
	if m == nil {
		return
	}
	m.NoFillTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.ViewsRateLimitedTotal.Inc()
}

// ObserveCharge records one charge attempt; amount is only added to spend
// when the outcome is "ok".
func (m *Metrics) ObserveCharge(billingType, outcome string, amount int64) {
	if m == nil {
		return
	}
	m.ChargesTotal.WithLabelValues(billingType, outcome).Inc()
	if outcome == "ok" && amount > 0 {
		m.SpendTotal.WithLabelValues(billingType).Add(float64(amount))
	}
}

func (m *Metrics) AddSuspended(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.CampaignsSuspended.Add(float64(n))
}
