package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/landing/pkg/logger"
)

// Sessions owns one Channel per browser session.
type Sessions struct {
	accent string
	opts   options

	mu       sync.Mutex
	channels map[string]*Channel
	closed   bool
}

// NewSessions creates an empty registry. accent is passed to every channel.
func NewSessions(accent string, opts ...Option) *Sessions {
	return &Sessions{
		accent:   accent,
		opts:     applyOptions(opts),
		channels: make(map[string]*Channel),
	}
}

// Get returns the channel of session id, creating it on first use.
// After Close, Get returns a detached channel that is not tracked.
func (s *Sessions) Get(id string) *Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.channels[id]; ok {
		ch.touch()
		return ch
	}

	ch := NewChannel(id, s.accent,
		WithObserver(s.opts.observer),
		WithLogger(s.opts.logger),
		WithClock(s.opts.now),
	)
	if s.closed {
		return ch
	}
	s.channels[id] = ch
	s.opts.observer.OnSessions(len(s.channels))
	return ch
}

// Len returns the number of tracked sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.channels)
}

// Sweep drops sessions idle for longer than idle and without subscribers.
// It returns the number of evicted sessions.
func (s *Sessions) Sweep(idle time.Duration) int {
	cutoff := s.opts.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, ch := range s.channels {
		if ch.idleSince(cutoff) {
			ch.shutdown()
			delete(s.channels, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.opts.observer.OnSessions(len(s.channels))
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Sessions) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				s.opts.logger.LogAttrs(ctx, slog.LevelDebug, "idle sessions evicted",
					slog.Int("evicted", n),
					logger.Component("notification"),
				)
			}
		}
	}
}

// Close shuts every channel down. It is safe to call more than once.
func (s *Sessions) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for id, ch := range s.channels {
		ch.shutdown()
		delete(s.channels, id)
	}
	s.opts.observer.OnSessions(0)
	return nil
}
