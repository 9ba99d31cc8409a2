package handler

import (
	"net/http"
	"time"
)

// SSEHandler runs for the lifetime of an SSE connection. The stream ends
// when it returns or the client disconnects.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		sub := ch.Subscribe(stream)
//		defer sub.Close()
//		for msg := range sub.Receive(stream) {
//			if err := stream.SendComponent(views.NotificationModal(msg.Data, accent)); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-Datastar requests with 400 and runs the handler otherwise.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming response that runs handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
