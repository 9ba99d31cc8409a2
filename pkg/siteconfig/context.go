package siteconfig

import (
	"context"
	"net/http"
)

type contextKey struct{}

// WithContext stores cfg in ctx.
func WithContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the config stored in ctx.
func FromContext(ctx context.Context) (Config, bool) {
	if ctx == nil {
		return Config{}, false
	}
	cfg, ok := ctx.Value(contextKey{}).(Config)
	return cfg, ok
}

// MustFromContext returns the config stored in ctx and panics without one.
func MustFromContext(ctx context.Context) Config {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("siteconfig: config must be used within a config provider")
	}
	return cfg
}

// Middleware provides cfg to every request below it.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), cfg)))
		})
	}
}
