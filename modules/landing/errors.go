package landing

import (
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/modules/landing/views"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
	"github.com/dmitrymomot/landing/pkg/status"
)

// StatusRequestFailed is emitted when a request of the page fails. It is not
// registered, so it resolves to the generic error modal.
const StatusRequestFailed status.Code = "request.failed"

// NewErrorHandler answers failed Datastar requests by opening the generic
// error modal on the session channel and regular requests with an error page.
func NewErrorHandler(log *slog.Logger) handler.ErrorHandler[handler.Context] {
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:   views.ErrorPage,
		ErrorPatch:  errorModal,
		PatchTarget: views.ModalSelector,
	})
}

func errorModal(ctx handler.Context, _ handler.ErrorPatchParams) templ.Component {
	accent := siteconfig.DefaultAccent
	if cfg, ok := siteconfig.FromContext(ctx); ok {
		accent = cfg.AccentColor()
	}

	ch, ok := notification.FromContext(ctx)
	if !ok {
		data := notification.Resolve(StatusRequestFailed, notification.Message{}, accent)
		return views.NotificationModal(notification.State{IsOpen: true, Current: data}, accent)
	}

	ch.Emit(ctx, StatusRequestFailed, notification.Message{})
	return views.NotificationModal(ch.State(), accent)
}
