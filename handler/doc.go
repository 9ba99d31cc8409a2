// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response that knows how to render
// itself:
//
//	type emitRequest struct {
//		Type        string `json:"type" form:"type"`
//		PrimaryText string `json:"primaryText" form:"primaryText"`
//	}
//
//	func emit(ctx handler.Context, req emitRequest) handler.Response {
//		ch := notification.MustFromContext(ctx)
//		ch.Emit(ctx, status.Code(req.Type), notification.Message{PrimaryText: req.PrimaryText})
//		return handler.Templ(views.NotificationModal(ch.State(), accent))
//	}
//
//	r.Post("/notifications", handler.Wrap(emit,
//		handler.WithBinders[handler.Context, emitRequest](binder.JSON(), binder.Form()),
//	))
//
// Binders run in order. A binder that does not recognise the request content
// type returns binder.ErrBinderNotApplicable and the next one runs; any
// other binder error is reported to the error handler joined with
// ErrBadRequest.
//
// # Responses
//
//	handler.JSON(data)                  // 200 with {"data": ...}
//	handler.JSONError(err)              // status derived from err
//	handler.Templ(component)            // HTML, or an element patch for Datastar
//	handler.TemplPartial(partial, full) // partial for Datastar, full page otherwise
//	handler.SSE(fn)                     // long lived event stream
//
// # Datastar
//
// IsDataStar recognises requests made by the Datastar client. Templ
// responses answer those with a patch-elements event instead of a page, so
// the same route serves both a plain form post and an in-page update:
//
//	return handler.Templ(views.NotificationModal(state, accent),
//		handler.WithTarget("#notification-modal"),
//		handler.WithPatchMode(handler.PatchOuter))
//
// # Errors
//
// NewErrorHandler classifies errors into HTTPError and ValidationError
// statuses, logs client errors at warn and the rest at error, and renders
// either an error page or, for Datastar requests, an element patched over
// PatchTarget.
package handler
