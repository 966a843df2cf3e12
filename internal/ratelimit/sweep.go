package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// ScheduleSweep evicts idle creatives from w every interval until ctx is
// done. The first sweep runs immediately.
func ScheduleSweep(ctx context.Context, w *Window, interval time.Duration, logger *slog.Logger) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	_, err := s.Every(interval).Do(func() {
		if n := w.Sweep(); n > 0 {
			logger.Debug("view limiter sweep", slog.Int("evicted", n), slog.Int("tracked", w.Len()))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule limiter sweep: %w", err)
	}
	s.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return s, nil
}
