package landing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/modules/landing/views"
	"github.com/dmitrymomot/landing/pkg/binder"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
	"github.com/dmitrymomot/landing/pkg/status"
)

// NotificationService exposes the session notification channel over HTTP.
// It expects the channel and site config in the request context.
type NotificationService struct {
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewNotificationService(log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *NotificationService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &NotificationService{log: log, errorHandler: errorHandler}
}

// EmitRequest is the body of POST /notifications, as JSON or form data.
type EmitRequest struct {
	Type          string `json:"type" form:"type"`
	PrimaryText   string `json:"primaryText" form:"primaryText"`
	SecondaryText string `json:"secondaryText" form:"secondaryText"`
}

func (s *NotificationService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.state,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/", handler.Wrap(s.emit,
		handler.WithBinders[handler.Context, EmitRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, EmitRequest](s.errorHandler),
	))
	r.Post("/close", handler.Wrap(s.close,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/stream", handler.Wrap(s.stream,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *NotificationService) modal(ctx handler.Context, state notification.State) handler.Response {
	accent := siteconfig.MustFromContext(ctx).AccentColor()
	return handler.Templ(views.NotificationModal(state, accent), handler.WithTarget(views.ModalSelector))
}

func (s *NotificationService) state(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(notification.MustFromContext(ctx).State())
}

func (s *NotificationService) emit(ctx handler.Context, req EmitRequest) handler.Response {
	code := status.Code(req.Type)
	if !code.Valid() {
		verr := handler.NewValidationError()
		verr.Add("type", "is required")
		return handler.JSONError(verr)
	}

	ch := notification.MustFromContext(ctx)
	ch.Emit(ctx, code, notification.Message{
		PrimaryText:   req.PrimaryText,
		SecondaryText: req.SecondaryText,
	})
	return s.modal(ctx, ch.State())
}

func (s *NotificationService) close(ctx handler.Context, _ struct{}) handler.Response {
	ch := notification.MustFromContext(ctx)
	ch.Close(ctx)
	return s.modal(ctx, ch.State())
}

// stream patches the modal with the current state and then with every
// change until the client disconnects.
func (s *NotificationService) stream(ctx handler.Context, _ struct{}) handler.Response {
	ch := notification.MustFromContext(ctx)
	accent := siteconfig.MustFromContext(ctx).AccentColor()

	return handler.SSE(func(stream handler.StreamContext) error {
		sub := ch.Subscribe(stream)
		defer sub.Close()

		s.log.DebugContext(stream, "notification stream opened",
			logger.SessionID(ch.ID()),
			logger.Component("notification_stream"),
		)

		opts := []handler.TemplOption{handler.WithTarget(views.ModalSelector)}
		if err := stream.SendComponent(views.NotificationModal(ch.State(), accent), opts...); err != nil {
			return err
		}
		for msg := range sub.Receive(stream) {
			if err := stream.SendComponent(views.NotificationModal(msg.Data, accent), opts...); err != nil {
				return err
			}
		}

		s.log.DebugContext(stream, "notification stream closed",
			logger.SessionID(ch.ID()),
			logger.Component("notification_stream"),
		)
		return nil
	})
}
