package notification

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/landing/pkg/status"
)

// Observer is notified about channel transitions.
// Implementations must be safe for concurrent use.
type Observer interface {
	OnEmit(kind status.Kind)
	OnClose()
	OnSessions(active int)
}

type noopObserver struct{}

func (noopObserver) OnEmit(status.Kind) {}
func (noopObserver) OnClose()           {}
func (noopObserver) OnSessions(int)     {}

type options struct {
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		observer: noopObserver{},
		logger:   slog.Default(),
		now:      time.Now,
	}
}

// Option configures channels and session registries.
type Option func(*options)

// WithObserver registers an observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		if now != nil {
			opts.now = now
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
