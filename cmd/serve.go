package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "campus-ads/internal/adapter/http"
	"campus-ads/internal/adapter/usecase"
	"campus-ads/internal/config"
	"campus-ads/internal/core/auction"
	"campus-ads/internal/core/port"
	"campus-ads/internal/db"
	"campus-ads/internal/metrics"
	"campus-ads/internal/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

// runServe loads configuration, optionally runs database migrations,
// connects storage and the view limiter, then serves HTTP until SIGINT or
// SIGTERM and shuts down gracefully.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)
	slog.SetDefault(logger)

	if cfg.Storage.Driver == "postgres" && cfg.Psql.RunMigrations {
		if _, err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	limiter, closeLimiter, err := newViewLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	m := metrics.New()
	svc := usecase.NewAdUseCase(repo, limiter,
		usecase.WithLogger(logger),
		usecase.WithMetrics(m),
		usecase.WithAuctionParams(auction.Params{
			EstimatedCTR: cfg.Auction.EstimatedCTR,
			ContextBoost: cfg.Auction.ContextBoost,
			JitterMin:    cfg.Auction.JitterMin,
			JitterMax:    cfg.Auction.JitterMax,
		}),
		usecase.WithMaxFeedSlots(cfg.Auction.MaxFeedSlots),
		usecase.WithTimeouts(cfg.Auction.SelectTimeout, cfg.Billing.Timeout),
	)

	handler := httpadapter.NewHandler(svc, logger, m)
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// newViewLimiter builds the configured view limiter. The memory backend is
// swept until ctx is done. The returned function releases the backend.
func newViewLimiter(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ViewLimiter, func(), error) {
	rl := cfg.RateLimit
	if rl.Backend == "redis" {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis view limiter", slog.Int("limit", rl.Limit), slog.Duration("window", rl.Window))
		return ratelimit.NewRedis(client, rl.Limit, rl.Window), func() {
			if err := client.Close(); err != nil {
				logger.Error("close redis client", slog.Any("error", err))
			}
		}, nil
	}

	w := ratelimit.NewWindow(rl.Limit, rl.Window)
	sched, err := ratelimit.ScheduleSweep(ctx, w, rl.SweepInterval, logger)
	if err != nil {
		return nil, nil, err
	}
	return w, sched.Stop, nil
}
