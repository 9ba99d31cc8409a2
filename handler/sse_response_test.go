package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func datastarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set(handler.DataStarRequestHeader, "true")
	return r
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("rejects regular requests", func(t *testing.T) {
		t.Parallel()
		called := false
		resp := handler.SSE(func(handler.StreamContext) error {
			called = true
			return nil
		})

		err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notifications/stream", nil))
		var httpErr handler.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("streams components and signals", func(t *testing.T) {
		t.Parallel()
		resp := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendComponent(text(`<div id="notification-modal">one</div>`)); err != nil {
				return err
			}
			if err := stream.SendComponent(text(`<li>two</li>`),
				handler.WithTarget("#list"),
				handler.WithPatchMode(handler.PatchAppend),
			); err != nil {
				return err
			}
			return stream.SendSignal("isOpen", true)
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest(http.MethodGet, "/notifications/stream")))

		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "one")
		assert.Contains(t, body, "#list")
		assert.Contains(t, body, "append")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"isOpen":true`)
	})

	t.Run("handler error is returned", func(t *testing.T) {
		t.Parallel()
		want := errors.New("stream failed")
		resp := handler.SSE(func(handler.StreamContext) error { return want })

		err := resp.Render(httptest.NewRecorder(), datastarRequest(http.MethodGet, "/"))
		assert.ErrorIs(t, err, want)
	})

	t.Run("stream sees request context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		r := datastarRequest(http.MethodGet, "/").WithContext(ctx)

		resp := handler.SSE(func(stream handler.StreamContext) error {
			cancel()
			<-stream.Done()
			return stream.Err()
		})

		assert.ErrorIs(t, resp.Render(httptest.NewRecorder(), r), context.Canceled)
	})

	t.Run("through Wrap", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.SSE(func(stream handler.StreamContext) error {
				return stream.SendSignals(map[string]any{"a": 1, "b": "x"})
			})
		})

		w := httptest.NewRecorder()
		handler.Wrap(h)(w, datastarRequest(http.MethodGet, "/"))

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"b":"x"`)
	})
}
