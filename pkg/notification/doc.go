// Package notification resolves status codes into renderable modal data and
// keeps the per-session modal state.
//
// Resolve is a pure, total function: every status code, registered or not,
// yields a fully populated Data. A Channel wraps the open/closed flag and the
// last resolved Data of one browser session; Sessions owns one Channel per
// session id.
//
//	sessions := notification.NewSessions("#FDC921",
//		notification.WithObserver(metrics),
//		notification.WithLogger(log),
//	)
//	defer sessions.Close()
//
//	ch := sessions.Get(sessionID)
//	data := ch.Emit(ctx, status.PaymentSuccess, notification.Message{
//		PrimaryText: "Pedido #42 confirmado",
//	})
//	// data.Heading == "Aee!", data.SecondaryText == "Compra realizada com sucesso"
//
//	ch.Close(ctx) // ch.IsOpen() == false, ch.Current() == data
//
// Handlers reach the session channel through the request context, see
// WithChannel and MustFromContext.
package notification
