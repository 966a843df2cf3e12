package configs

import "time"

// RateLimit configures the per-creative view limiter.
type RateLimit struct {
	// Backend is "memory" (per process) or "redis" (shared between
	// instances).
	Backend string `env:"BACKEND" envDefault:"memory"`
	// Limit is the number of views accepted per creative per Window.
	Limit int `env:"LIMIT" envDefault:"60"`
	// Window is the length of the rolling window.
	Window time.Duration `env:"WINDOW" envDefault:"60s"`
	// SweepInterval is how often idle creatives are evicted from the memory
	// backend.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

// Auction tunes ad selection.
type Auction struct {
	EstimatedCTR float64 `env:"ESTIMATED_CTR" envDefault:"0.015"`
	ContextBoost float64 `env:"CONTEXT_BOOST" envDefault:"5"`
	JitterMin    float64 `env:"JITTER_MIN" envDefault:"0.8"`
	JitterMax    float64 `env:"JITTER_MAX" envDefault:"1.2"`
	// MaxFeedSlots bounds the count accepted by a feed request.
	MaxFeedSlots int `env:"MAX_FEED_SLOTS" envDefault:"10"`
	// SelectTimeout bounds the catalog read of one request; when it expires
	// the request gets no ad.
	SelectTimeout time.Duration `env:"SELECT_TIMEOUT" envDefault:"300ms"`
}

// Billing tunes the charge step of event tracking.
type Billing struct {
	// Timeout bounds one charge; a charge that does not commit in time is
	// abandoned and the event stays unbilled.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"2s"`
}
