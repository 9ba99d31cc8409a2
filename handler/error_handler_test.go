package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/pkg/requestid"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Error: "+p.Error+"</h1>")
		return err
	})
}

func errorPatch(_ handler.Context, p handler.ErrorPatchParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="notification-modal">`+p.Type+": "+p.Message+"</div>")
		return err
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	validation := handler.NewValidationError()
	validation.Add("email", "is required")
	validation.Add("code", "is unknown")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		typ     string
		level   slog.Level
	}{
		{
			name:    "generic error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "An error occurred processing your request",
			typ:     "error",
			level:   slog.LevelError,
		},
		{
			name:    "http error",
			err:     handler.ErrNotFound,
			status:  http.StatusNotFound,
			message: "not_found",
			typ:     "warning",
			level:   slog.LevelWarn,
		},
		{
			name:    "joined bad request",
			err:     errors.Join(handler.ErrBadRequest, errors.New("bad json")),
			status:  http.StatusBadRequest,
			message: "bad_request",
			typ:     "warning",
			level:   slog.LevelWarn,
		},
		{
			name:    "validation error sorted by field",
			err:     validation,
			status:  http.StatusUnprocessableEntity,
			message: "code: is unknown; email: is required",
			typ:     "warning",
			level:   slog.LevelWarn,
		},
		{
			name:    "empty validation error",
			err:     handler.NewValidationError(),
			status:  http.StatusUnprocessableEntity,
			message: "Validation failed",
			typ:     "warning",
			level:   slog.LevelWarn,
		},
		{
			name:    "upstream failure",
			err:     handler.ErrBadGateway,
			status:  http.StatusBadGateway,
			message: "bad_gateway",
			typ:     "error",
			level:   slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.message, info.Message)
			assert.Equal(t, tt.typ, info.Type)
			assert.Equal(t, tt.level, info.LogLevel)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders error page with status", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{ErrorPage: errorPage})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/missing", nil)
		eh(handler.NewContext(w, r), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Error: not_found")
	})

	t.Run("falls back to plain text without a page", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		eh(handler.NewContext(w, r), errors.New("smtp down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred processing your request")
		assert.NotContains(t, w.Body.String(), "smtp down")
	})

	t.Run("patches the modal for datastar requests", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{ErrorPatch: errorPatch})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/notifications", nil)
		r.Header.Set(handler.DataStarRequestHeader, "true")
		eh(handler.NewContext(w, r), handler.ErrBadRequest)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#notification-modal")
		assert.Contains(t, body, "warning: bad_request")
	})

	t.Run("custom patch target", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{
			ErrorPatch:  errorPatch,
			PatchTarget: "#contact-form",
			PatchMode:   handler.PatchInner,
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.Header.Set(handler.DataStarRequestHeader, "true")
		eh(handler.NewContext(w, r), errors.New("boom"))

		body := w.Body.String()
		assert.Contains(t, body, "#contact-form")
		assert.Contains(t, body, "inner")
	})

	t.Run("datastar request without patch writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/notifications", nil)
		r.Header.Set(handler.DataStarRequestHeader, "true")
		eh(handler.NewContext(w, r), errors.New("boom"))

		assert.Empty(t, w.Body.String())
		assert.Contains(t, buf.String(), "no error patch component configured")
	})

	t.Run("logs with request id and level by status", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})

		r := httptest.NewRequest(http.MethodGet, "/x", nil)
		r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))
		eh(handler.NewContext(httptest.NewRecorder(), r), handler.ErrNotFound)

		out := buf.String()
		require.NotEmpty(t, out)
		assert.Contains(t, out, `"level":"WARN"`)
		assert.Contains(t, out, `"request_id":"req-42"`)
		assert.Contains(t, out, `"http_status":404`)
		assert.Contains(t, out, `"path":"/x"`)
	})
}
