package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"campus-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Storage   configs.Storage   `envPrefix:"STORAGE_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	RateLimit configs.RateLimit `envPrefix:"RATELIMIT_"`
	Auction   configs.Auction   `envPrefix:"AUCTION_"`
	Billing   configs.Billing   `envPrefix:"BILLING_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects combinations the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case "postgres", "bolt":
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown rate limit backend %q", c.RateLimit.Backend))
	}
	if c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate limit and window must be positive"))
	}
	if c.Auction.JitterMin < 0 || c.Auction.JitterMin > c.Auction.JitterMax {
		errs = append(errs, fmt.Errorf("invalid jitter range [%v, %v]", c.Auction.JitterMin, c.Auction.JitterMax))
	}
	if c.Auction.EstimatedCTR < 0 || c.Auction.ContextBoost < 0 {
		errs = append(errs, errors.New("auction ctr and boost must not be negative"))
	}
	if c.Auction.MaxFeedSlots <= 0 {
		errs = append(errs, errors.New("max feed slots must be positive"))
	}
	return errors.Join(errs...)
}
