package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis is a sliding-log limiter shared between service instances. Every
// hit is a member of a per-creative sorted set scored by its timestamp.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedis creates a shared limiter allowing limit hits per window for each
// creative.
func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ads:views",
		now:    time.Now,
	}
}

// Allow records a hit for creativeID and reports whether it is within the
// limit. Rejected hits are removed again so they do not extend the block.
func (r *Redis) Allow(ctx context.Context, creativeID int64) (bool, error) {
	key := r.prefix + ":" + strconv.FormatInt(creativeID, 10)
	now := r.now()
	cutoff := strconv.FormatInt(now.Add(-r.window).UnixMicro(), 10)
	member := uuid.NewString()

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, key, "-inf", cutoff)
		p.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMicro()), Member: member})
		card = p.ZCard(ctx, key)
		p.Expire(ctx, key, r.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("view limiter: %w", err)
	}

	if card.Val() > int64(r.limit) {
		if err = r.client.ZRem(ctx, key, member).Err(); err != nil {
			return false, fmt.Errorf("view limiter: %w", err)
		}
		return false, nil
	}
	return true, nil
}
