package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, clock
}

var cfg = ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{"zero rate", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	assert.NoError(t, cfg.Validate())
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then deny then refill", func(t *testing.T) {
		t.Parallel()
		b, _, clock := newBucket(t, cfg)

		for i := range 2 {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed(), "request %d", i)
			assert.Equal(t, 2, res.Limit)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		clock.Advance(time.Minute)
		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("denied requests consume nothing", func(t *testing.T) {
		t.Parallel()
		b, _, clock := newBucket(t, cfg)
		_, _ = b.AllowN(ctx, "k", 2)
		for range 5 {
			res, _ := b.Allow(ctx, "k")
			assert.False(t, res.Allowed())
		}

		clock.Advance(time.Minute)
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("refill is capped", func(t *testing.T) {
		t.Parallel()
		b, _, clock := newBucket(t, cfg)
		_, _ = b.Allow(ctx, "k")
		clock.Advance(24 * time.Hour)

		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, _, _ := newBucket(t, cfg)
		_, _ = b.AllowN(ctx, "a", 2)

		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, _, _ := newBucket(t, cfg)
		_, err := b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b, store, _ := newBucket(t, cfg)
		_, _ = b.AllowN(ctx, "k", 2)
		require.NoError(t, b.Reset(ctx, "k"))
		assert.Equal(t, 0, store.Len())

		res, _ := b.Allow(ctx, "k")
		assert.True(t, res.Allowed())
	})

	t.Run("stale buckets are removed", func(t *testing.T) {
		t.Parallel()
		b, store, clock := newBucket(t, cfg)
		_, _ = b.Allow(ctx, "old")
		clock.Advance(2 * time.Hour)
		_, _ = b.Allow(ctx, "new")

		store.RemoveStale()
		assert.Equal(t, 1, store.Len())
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.RemoteAddr = "203.0.113.7:5123"

	assert.Equal(t, "203.0.113.7", ratelimiter.RemoteIP(r))
	assert.Equal(t, "203.0.113.7:s1", ratelimiter.Composite(ratelimiter.RemoteIP, func(*http.Request) string { return "s1" })(r))
	assert.Equal(t, "203.0.113.7", ratelimiter.Composite(ratelimiter.RemoteIP, func(*http.Request) string { return "" })(r))
	assert.Empty(t, ratelimiter.Composite()(r))

	long := ratelimiter.Composite(func(*http.Request) string { return strings.Repeat("x", 100) })(r)
	assert.LessOrEqual(t, len(long), 64)
	assert.NotEmpty(t, long)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	request := func() *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = "198.51.100.1:1000"
		return r
	}

	t.Run("headers and default 429", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		t.Cleanup(store.Close)
		b, err := ratelimiter.NewBucket(store, cfg)
		require.NoError(t, err)
		h := ratelimiter.Middleware(b, ratelimiter.RemoteIP)(ok)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, request())
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

		h.ServeHTTP(httptest.NewRecorder(), request())

		w = httptest.NewRecorder()
		h.ServeHTTP(w, request())
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("custom limit handler", func(t *testing.T) {
		t.Parallel()
		b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
		var limited *ratelimiter.Result
		h := ratelimiter.Middleware(b, ratelimiter.RemoteIP,
			ratelimiter.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
				limited = res
				w.WriteHeader(http.StatusOK)
			}),
		)(ok)

		h.ServeHTTP(httptest.NewRecorder(), request())
		w := httptest.NewRecorder()
		h.ServeHTTP(w, request())

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, limited)
		assert.False(t, limited.Allowed())
	})

	t.Run("empty key passes", func(t *testing.T) {
		t.Parallel()
		b, store, _ := newBucket(t, cfg)
		h := ratelimiter.Middleware(b, func(*http.Request) string { return "" })(ok)

		for range 5 {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, request())
			assert.Equal(t, http.StatusNoContent, w.Code)
		}
		assert.Equal(t, 0, store.Len())
	})
}
