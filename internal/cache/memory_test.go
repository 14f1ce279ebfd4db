package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTTLCacheHitWithinWindow(t *testing.T) {
	calls := 0
	c := NewTTLCache("test", time.Minute, -1, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	first := c.Get(context.Background())
	second := c.Get(context.Background())

	if first != 42 || second != 42 {
		t.Errorf("Get() = %d, %d, want 42, 42", first, second)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times within TTL window, want 1", calls)
	}
}

func TestTTLCacheRefreshAfterExpiry(t *testing.T) {
	calls := 0
	c := NewTTLCache("test", time.Nanosecond, -1, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	c.Get(context.Background())
	time.Sleep(time.Millisecond)
	got := c.Get(context.Background())

	if calls != 2 {
		t.Errorf("fetch called %d times across expiry, want 2", calls)
	}
	if got != 2 {
		t.Errorf("Get() after expiry = %d, want refreshed value 2", got)
	}
}

func TestTTLCacheFallbackOnTotalFailure(t *testing.T) {
	c := NewTTLCache("test", time.Minute, "sentinel", func(ctx context.Context) (string, error) {
		return "", errors.New("upstream down")
	})

	if got := c.Get(context.Background()); got != "sentinel" {
		t.Errorf("Get() with no prior value = %q, want fallback sentinel", got)
	}
}

func TestTTLCacheServesStaleOnFailure(t *testing.T) {
	healthy := true
	c := NewTTLCache("test", time.Nanosecond, "sentinel", func(ctx context.Context) (string, error) {
		if healthy {
			return "real", nil
		}
		return "", errors.New("upstream down")
	})

	c.Get(context.Background())
	healthy = false
	time.Sleep(time.Millisecond)

	if got := c.Get(context.Background()); got != "real" {
		t.Errorf("Get() after upstream failure = %q, want last good value", got)
	}
}

func TestTTLCacheInvalidate(t *testing.T) {
	calls := 0
	c := NewTTLCache("test", time.Hour, 0, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	c.Get(context.Background())
	c.Invalidate()
	c.Get(context.Background())

	if calls != 2 {
		t.Errorf("fetch called %d times around Invalidate, want 2", calls)
	}

	if _, ok := c.Age(); !ok {
		t.Error("Age() should report a value after refresh")
	}
}
