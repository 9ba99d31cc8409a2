package landing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/pkg/cookie"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the landing router. Config, Sessions and Cookies
// are required. Each service is optional and only mounted if provided.
type RouterOptions struct {
	Config   siteconfig.Config
	Sessions *notification.Sessions
	Cookies  *cookie.Manager
	Logger   *slog.Logger

	Page          Mountable
	Notifications Mountable
	Contact       Mountable
	Contract      Mountable
}

// Router creates the landing router. Static files are served without a
// session; every other route runs inside the session scope with the site
// config and the session notification channel in the request context.
//
//	errorHandler := landing.NewErrorHandler(log)
//	r.Mount("/", landing.Router(landing.RouterOptions{
//		Config:        cfg,
//		Sessions:      sessions,
//		Cookies:       cookies,
//		Page:          landing.NewPageService(c, errorHandler),
//		Notifications: landing.NewNotificationService(log, errorHandler),
//	}))
func Router(opts RouterOptions) chi.Router {
	if opts.Sessions == nil || opts.Cookies == nil {
		panic("landing: router requires sessions and cookies")
	}

	r := chi.NewRouter()
	r.Handle("/static/*", http.StripPrefix("/static/", StaticHandler()))

	r.Group(func(r chi.Router) {
		r.Use(
			siteconfig.Middleware(opts.Config),
			SessionMiddleware(opts.Cookies, opts.Logger),
			notification.Middleware(opts.Sessions, SessionID),
		)

		if opts.Notifications != nil {
			r.Mount("/notifications", opts.Notifications.Handle())
		}
		if opts.Contact != nil {
			r.Mount("/contact", opts.Contact.Handle())
		}
		if opts.Contract != nil {
			r.Mount("/contract", opts.Contract.Handle())
		}
		if opts.Page != nil {
			r.Mount("/", opts.Page.Handle())
		}
	})

	return r
}
