package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one rate-limit check. RetryAfterSeconds is only
// meaningful when Allowed is false.
type Decision struct {
	Allowed           bool
	RetryAfterSeconds int
}

// Limiter gates chat requests per session with a fixed-window counter.
type Limiter interface {
	Allow(ctx context.Context, sessionId string) (Decision, error)
}

// Config holds the fixed-window parameters shared by all backends.
type Config struct {
	Window      time.Duration
	MaxRequests int
}
