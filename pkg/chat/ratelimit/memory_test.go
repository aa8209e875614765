package ratelimit

import (
	"context"
	"testing"
	"time"
)

func newTestLimiter(maxRequests int) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(Config{
		Window:      60 * time.Second,
		MaxRequests: maxRequests,
	})
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestMemoryLimiterAllowsUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(20)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		d, err := l.Allow(ctx, "s1")
		if err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
		if !d.Allowed {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}

	d, err := l.Allow(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if d.Allowed {
		t.Fatal("21st request allowed, want rejected")
	}
	if d.RetryAfterSeconds <= 0 || d.RetryAfterSeconds > 60 {
		t.Errorf("retryAfter = %d, want in (0, 60]", d.RetryAfterSeconds)
	}
}

func TestMemoryLimiterRetryAfterShrinks(t *testing.T) {
	l, clock := newTestLimiter(1)
	ctx := context.Background()

	if d, _ := l.Allow(ctx, "s1"); !d.Allowed {
		t.Fatal("first request rejected")
	}

	*clock = clock.Add(45 * time.Second)
	d, _ := l.Allow(ctx, "s1")
	if d.Allowed {
		t.Fatal("second request inside window allowed")
	}
	if d.RetryAfterSeconds != 15 {
		t.Errorf("retryAfter = %d, want 15", d.RetryAfterSeconds)
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	l, clock := newTestLimiter(1)
	ctx := context.Background()

	if d, _ := l.Allow(ctx, "s1"); !d.Allowed {
		t.Fatal("first request rejected")
	}
	if d, _ := l.Allow(ctx, "s1"); d.Allowed {
		t.Fatal("second request allowed inside window")
	}

	*clock = clock.Add(61 * time.Second)
	d, _ := l.Allow(ctx, "s1")
	if !d.Allowed {
		t.Fatal("request after window elapsed should be allowed")
	}
}

func TestMemoryLimiterSessionsIndependent(t *testing.T) {
	l, _ := newTestLimiter(1)
	ctx := context.Background()

	if d, _ := l.Allow(ctx, "s1"); !d.Allowed {
		t.Fatal("s1 first request rejected")
	}
	if d, _ := l.Allow(ctx, "s2"); !d.Allowed {
		t.Fatal("s2 should have its own window")
	}
	if d, _ := l.Allow(ctx, "s1"); d.Allowed {
		t.Fatal("s1 over limit should be rejected")
	}
}
