package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter on a shared Redis counter, safe
// across process instances. INCR and EXPIRE NX run in one pipeline so the
// first request of a window atomically starts its TTL.
type RedisLimiter struct {
	cfg    Config
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{cfg: cfg, client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, sessionId string) (Decision, error) {
	key := fmt.Sprintf("chat:ratelimit:%s", sessionId)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := incr.Val()
	if count <= int64(l.cfg.MaxRequests) {
		return Decision{Allowed: true}, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = l.cfg.Window
	}
	retryAfter := int((ttl + time.Second - 1) / time.Second)

	return Decision{Allowed: false, RetryAfterSeconds: retryAfter}, nil
}
