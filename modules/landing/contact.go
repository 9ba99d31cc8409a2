package landing

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/modules/landing/content"
	"github.com/dmitrymomot/landing/modules/landing/views"
	"github.com/dmitrymomot/landing/pkg/binder"
	"github.com/dmitrymomot/landing/pkg/email"
	"github.com/dmitrymomot/landing/pkg/email/templates"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
	"github.com/dmitrymomot/landing/pkg/status"
)

const maxContactMessage = 4000

// ContactService forwards contact form submissions to the support inbox and
// reports the outcome through the notification modal. Datastar submissions
// get the modal patch; plain form posts get the whole page with the modal
// open.
type ContactService struct {
	content      *content.Content
	mailer       email.EmailSender
	supportEmail string
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.RateLimiter
}

// ContactOption configures ContactService.
type ContactOption func(*ContactService)

// WithContactLimiter limits submissions per client address and session.
// Denied submissions open the error modal without sending anything.
func WithContactLimiter(rl ratelimiter.RateLimiter) ContactOption {
	return func(s *ContactService) {
		s.limiter = rl
	}
}

func NewContactService(
	c *content.Content,
	mailer email.EmailSender,
	supportEmail string,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ContactOption,
) *ContactService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &ContactService{
		content:      c,
		mailer:       mailer,
		supportEmail: supportEmail,
		log:          log,
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ContactRequest is the contact form.
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (s *ContactService) Handle() http.Handler {
	r := chi.NewRouter()
	if s.limiter != nil {
		r.Use(ratelimiter.Middleware(s.limiter,
			ratelimiter.Composite(ratelimiter.RemoteIP, SessionID),
			ratelimiter.WithLimitHandler(s.limited),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				s.errorHandler(handler.NewContext(w, r), err)
			}),
		))
	}
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, ContactRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, ContactRequest](s.errorHandler),
	))
	return r
}

func (s *ContactService) limited(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
	s.log.WarnContext(r.Context(), "contact rate limited",
		logger.SessionID(SessionID(r)),
		slog.Duration("retry_after", res.RetryAfter()),
		logger.Component("contact"),
	)
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *ContactService) submit(ctx handler.Context, req ContactRequest) handler.Response {
	cfg := siteconfig.MustFromContext(ctx)
	ch := notification.MustFromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !email.IsValidAddress(req.Email) {
		ch.Emit(ctx, StatusRequestFailed, notification.Message{
			PrimaryText:   "Confira os dados do formulário",
			SecondaryText: "Informe seu nome e um e-mail válido",
		})
		return s.modal(cfg, ch)
	}
	req.Message = truncate(req.Message, maxContactMessage)

	msg := templates.ContactMessage{
		Name:    req.Name,
		Email:   strings.TrimSpace(req.Email),
		Message: req.Message,
		Site:    cfg.Title,
	}
	body, err := templates.Render(ctx, templates.ContactEmail(msg))
	if err == nil {
		err = s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   s.supportEmail,
			Subject:  msg.Subject(),
			BodyHTML: body,
			Tag:      "contact",
		})
	}

	if err != nil {
		s.log.ErrorContext(ctx, "contact e-mail not sent",
			logger.SessionID(ch.ID()),
			logger.Error(err),
			logger.Component("contact"),
		)
		ch.Emit(ctx, StatusRequestFailed, notification.Message{})
		return s.modal(cfg, ch)
	}

	ch.Emit(ctx, status.EmailSendSuccess, notification.Message{SecondaryText: "Sua mensagem foi enviada"})
	return s.modal(cfg, ch)
}

func (s *ContactService) modal(cfg siteconfig.Config, ch *notification.Channel) handler.Response {
	state := ch.State()
	return handler.TemplPartial(
		views.NotificationModal(state, cfg.AccentColor()),
		views.Page(views.PageParams{Config: cfg, Content: s.content, Modal: state}),
		handler.WithTarget(views.ModalSelector),
	)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
