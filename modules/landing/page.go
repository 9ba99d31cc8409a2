package landing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/modules/landing/content"
	"github.com/dmitrymomot/landing/modules/landing/views"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
)

// PageService renders the landing page and publishes the public site config.
type PageService struct {
	content      *content.Content
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewPageService(c *content.Content, errorHandler handler.ErrorHandler[handler.Context]) *PageService {
	return &PageService{content: c, errorHandler: errorHandler}
}

func (s *PageService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/config", handler.Wrap(s.config,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *PageService) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(views.Page(views.PageParams{
		Config:  siteconfig.MustFromContext(ctx),
		Content: s.content,
		Modal:   notification.MustFromContext(ctx).State(),
	}))
}

func (s *PageService) config(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(siteconfig.MustFromContext(ctx))
}
