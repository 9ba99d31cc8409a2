package notification

import (
	"context"
	"net/http"
)

type contextKey struct{}

// WithChannel stores ch in ctx.
func WithChannel(ctx context.Context, ch *Channel) context.Context {
	return context.WithValue(ctx, contextKey{}, ch)
}

// FromContext returns the channel stored in ctx.
func FromContext(ctx context.Context) (*Channel, bool) {
	if ctx == nil {
		return nil, false
	}
	ch, ok := ctx.Value(contextKey{}).(*Channel)
	return ch, ok && ch != nil
}

// MustFromContext returns the channel stored in ctx and panics when ctx
// carries none.
func MustFromContext(ctx context.Context) *Channel {
	ch, ok := FromContext(ctx)
	if !ok {
		panic("notification: channel must be used within a session scope")
	}
	return ch
}

// Middleware puts the channel of the session returned by sessionID into the
// request context.
func Middleware(sessions *Sessions, sessionID func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ch := sessions.Get(sessionID(r))
			next.ServeHTTP(w, r.WithContext(WithChannel(r.Context(), ch)))
		})
	}
}
