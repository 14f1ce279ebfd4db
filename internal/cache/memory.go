package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

// FetchFunc loads a fresh value from an upstream source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// TTLCache serves the last fetched value while it is younger than the TTL
// and otherwise attempts exactly one refresh. On total upstream failure it
// degrades to the last good value, then to the static fallback sentinel.
// Get never returns an error; failures are logged.
//
// Concurrent callers past the TTL may each trigger their own refresh. The
// refresh is an idempotent whole-value replacement, so the duplication is
// harmless, only wasteful.
type TTLCache[T any] struct {
	name     string
	ttl      time.Duration
	fallback T
	fetch    FetchFunc[T]
	logger   *zap.Logger

	mu        sync.Mutex
	value     T
	hasValue  bool
	fetchedAt time.Time
}

// NewTTLCache creates a cache around fetch with the given TTL and
// fallback sentinel. The composition root owns the instance and injects
// it into whatever consumes it.
func NewTTLCache[T any](name string, ttl time.Duration, fallback T, fetch FetchFunc[T]) *TTLCache[T] {
	return &TTLCache[T]{
		name:     name,
		ttl:      ttl,
		fallback: fallback,
		fetch:    fetch,
		logger:   logging.GetLogger().With(zap.String("component", "ttl-cache"), zap.String("cache", name)),
	}
}

// Get returns the cached value if its age is below the TTL, otherwise
// refreshes once. Never blocks longer than one upstream round trip.
func (c *TTLCache[T]) Get(ctx context.Context) T {
	c.mu.Lock()
	if c.hasValue && time.Since(c.fetchedAt) < c.ttl {
		v := c.value
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	fresh, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("Refresh failed, serving cached or fallback value", zap.Error(err))
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.hasValue {
			return c.value
		}
		return c.fallback
	}

	c.mu.Lock()
	c.value = fresh
	c.hasValue = true
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return fresh
}

// Age returns how long ago the cached value was fetched, and whether a
// real value has ever been cached.
func (c *TTLCache[T]) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasValue {
		return 0, false
	}
	return time.Since(c.fetchedAt), true
}

// Invalidate drops the cached value so the next Get refreshes.
func (c *TTLCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.hasValue = false
	c.fetchedAt = time.Time{}
}
