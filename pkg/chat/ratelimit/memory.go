package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window limiter backed by go-cache,
// which evicts expired windows for us. Best effort only: counters are lost on
// restart and each process instance counts independently, so a horizontally
// scaled deployment should use the Redis limiter instead.
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	windows *cache.Cache
	now     func() time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		windows: cache.New(cfg.Window, 10*time.Minute),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, sessionId string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if x, found := l.windows.Get(sessionId); found {
		entry := x.(*windowEntry)
		if now.Before(entry.resetAt) {
			if entry.count >= l.cfg.MaxRequests {
				remaining := entry.resetAt.Sub(now)
				retryAfter := int((remaining + time.Second - 1) / time.Second)
				return Decision{Allowed: false, RetryAfterSeconds: retryAfter}, nil
			}
			entry.count++
			return Decision{Allowed: true}, nil
		}
		// Window elapsed but not yet evicted; fall through and start fresh.
	}

	l.windows.Set(sessionId, &windowEntry{
		count:   1,
		resetAt: now.Add(l.cfg.Window),
	}, l.cfg.Window)

	return Decision{Allowed: true}, nil
}
