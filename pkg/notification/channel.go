package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/landing/pkg/broadcast"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/status"
)

// State is a snapshot of a channel.
type State struct {
	IsOpen  bool `json:"isOpen"`
	Current Data `json:"current"`
}

// Channel holds the modal state of one session.
// Emit and Close are single atomic transitions: readers never observe the
// modal open with stale data.
type Channel struct {
	id      string
	accent  string
	opts    options
	changes *broadcast.MemoryBroadcaster[State]

	mu       sync.RWMutex
	state    State
	lastSeen time.Time
}

// NewChannel creates a closed channel. accent is the brand color handed to
// Resolve for statuses without a fixed accent.
func NewChannel(id, accent string, opts ...Option) *Channel {
	o := applyOptions(opts)
	return &Channel{
		id:       id,
		accent:   accent,
		opts:     o,
		changes:  broadcast.NewMemoryBroadcaster[State](),
		lastSeen: o.now(),
	}
}

// ID returns the session id the channel belongs to.
func (c *Channel) ID() string { return c.id }

// Emit opens the modal with the data resolved for code and msg.
// Emitting on an open channel keeps it open and replaces the data.
func (c *Channel) Emit(ctx context.Context, code status.Code, msg Message) Data {
	kind := status.KindOf(code)

	c.mu.Lock()
	data := Resolve(code, msg, c.accent)
	c.state = State{IsOpen: true, Current: data}
	c.lastSeen = c.opts.now()
	c.publish(ctx)
	c.mu.Unlock()

	c.opts.observer.OnEmit(kind)
	c.opts.logger.LogAttrs(ctx, slog.LevelDebug, "notification emitted",
		logger.SessionID(c.id),
		logger.StatusCode(string(code)),
		slog.String("kind", kind.String()),
		logger.Component("notification"),
	)
	return data
}

// Close hides the modal. The last resolved data stays readable.
func (c *Channel) Close(ctx context.Context) {
	c.mu.Lock()
	c.state.IsOpen = false
	c.lastSeen = c.opts.now()
	c.publish(ctx)
	c.mu.Unlock()

	c.opts.observer.OnClose()
	c.opts.logger.LogAttrs(ctx, slog.LevelDebug, "notification closed",
		logger.SessionID(c.id),
		logger.Component("notification"),
	)
}

// IsOpen reports whether the modal is shown.
func (c *Channel) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.IsOpen
}

// Current returns the last resolved data, also after Close.
func (c *Channel) Current() Data {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Current
}

// State returns a consistent snapshot of the open flag and data.
func (c *Channel) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Subscribe streams every subsequent state until ctx is done.
// A slow subscriber only receives the most recent state.
func (c *Channel) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	c.touch()
	return c.changes.Subscribe(ctx)
}

// publish must be called with c.mu held so subscribers see states in order.
func (c *Channel) publish(ctx context.Context) {
	_ = c.changes.Broadcast(ctx, broadcast.Message[State]{Data: c.state})
}

func (c *Channel) touch() {
	c.mu.Lock()
	c.lastSeen = c.opts.now()
	c.mu.Unlock()
}

// idleSince reports whether the channel was untouched since t and nobody
// is subscribed to it.
func (c *Channel) idleSince(t time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSeen.Before(t) && c.changes.Len() == 0
}

func (c *Channel) shutdown() {
	_ = c.changes.Close()
}
