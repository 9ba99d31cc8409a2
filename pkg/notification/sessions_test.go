package notification_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/status"
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

func TestSessions_Get(t *testing.T) {
	t.Parallel()

	s := notification.NewSessions(brand)
	defer s.Close()

	a := s.Get("a")
	assert.Same(t, a, s.Get("a"))
	assert.NotSame(t, a, s.Get("b"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "a", a.ID())

	a.Emit(context.Background(), status.PaymentInProgress, notification.Message{})
	assert.Equal(t, brand, s.Get("a").Current().AccentColor)
	assert.False(t, s.Get("b").IsOpen())
}

func TestSessions_Sweep(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	obs := &recordingObserver{}
	s := notification.NewSessions(brand,
		notification.WithClock(clock.Now),
		notification.WithObserver(obs),
	)
	defer s.Close()

	s.Get("old")
	clock.Advance(20 * time.Minute)
	s.Get("fresh")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Get("streaming").Subscribe(ctx)
	clock.Advance(20 * time.Minute)

	evicted := s.Sweep(30 * time.Minute)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 2, s.Len())

	obs.mu.Lock()
	last := obs.sessions[len(obs.sessions)-1]
	obs.mu.Unlock()
	assert.Equal(t, 2, last)
}

func TestSessions_RunSweeper(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	s := notification.NewSessions(brand, notification.WithClock(clock.Now))
	defer s.Close()

	s.Get("a")
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunSweeper(ctx, 5*time.Millisecond, time.Minute)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestSessions_Close(t *testing.T) {
	t.Parallel()

	s := notification.NewSessions(brand)
	ch := s.Get("a")
	sub := ch.Subscribe(context.Background())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.Len())

	_, ok := <-sub.Receive(context.Background())
	assert.False(t, ok)

	detached := s.Get("a")
	assert.NotSame(t, ch, detached)
	assert.Equal(t, 0, s.Len())
}
