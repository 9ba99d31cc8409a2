package landing

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/landing/pkg/cookie"
	"github.com/dmitrymomot/landing/pkg/logger"
)

// SessionCookie is the name of the signed cookie carrying the session id.
const SessionCookie = "landing_session"

type sessionKey struct{}

// WithSessionID stores the session id in ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionIDFromContext returns the session id, or "" outside a session.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// SessionID returns the session id of r. It matches the signature
// notification.Middleware expects.
func SessionID(r *http.Request) string {
	return SessionIDFromContext(r.Context())
}

// SessionMiddleware reads the session id from the signed session cookie.
// Requests without a valid cookie get a fresh UUID, written back as a new
// cookie.
func SessionMiddleware(cookies *cookie.Manager, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.GetSigned(r, SessionCookie)
			if err == nil {
				if _, perr := uuid.Parse(id); perr != nil {
					err = perr
				}
			}
			if err != nil {
				id = uuid.NewString()
				cookies.SetSigned(w, SessionCookie, id)
				log.DebugContext(r.Context(), "session started",
					logger.SessionID(id),
					logger.Error(err),
					logger.Component("session"),
				)
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}
