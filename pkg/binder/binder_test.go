package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/binder"
)

type emitRequest struct {
	Type          string   `json:"type" form:"type"`
	PrimaryText   string   `json:"primaryText" form:"primaryText"`
	SecondaryText string   `json:"secondaryText" form:"secondaryText"`
	Retries       int      `json:"retries" form:"retries"`
	Sticky        *bool    `json:"sticky" form:"sticky"`
	Tags          []string `json:"tags" form:"tags"`
	Internal      string   `json:"-" form:"-"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes and trims", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		err := bind(jsonRequest(`{"type":" payment.success ","primaryText":"Pronto","tags":["a"]}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "payment.success", req.Type)
		assert.Equal(t, "Pronto", req.PrimaryText)
		assert.Equal(t, []string{"a"}, req.Tags)
	})

	t.Run("not applicable to forms", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		err := bind(formRequest(url.Values{"type": {"x"}}), &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("not applicable without content type", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		assert.ErrorIs(t, bind(r, &req), binder.ErrBinderNotApplicable)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"malformed", `{"type":`},
		{"unknown field", `{"kind":"x"}`},
		{"type mismatch", `{"retries":"many"}`},
		{"trailing data", `{"type":"a"}{"type":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req emitRequest
			assert.ErrorIs(t, bind(jsonRequest(tt.body), &req), binder.ErrFailedToParseJSON)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		body := `{"primaryText":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		err := bind(jsonRequest(body), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		err := bind(formRequest(url.Values{
			"type":        {"email.send.success"},
			"primaryText": {"  Obrigado  "},
			"retries":     {"3"},
			"sticky":      {"on"},
			"tags":        {"a,b", "c"},
			"Internal":    {"ignored"},
		}), &req)
		require.NoError(t, err)
		assert.Equal(t, "email.send.success", req.Type)
		assert.Equal(t, "Obrigado", req.PrimaryText)
		assert.Empty(t, req.SecondaryText)
		assert.Equal(t, 3, req.Retries)
		require.NotNil(t, req.Sticky)
		assert.True(t, *req.Sticky)
		assert.Equal(t, []string{"a", "b", "c"}, req.Tags)
		assert.Empty(t, req.Internal)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("type", "payment.inProgress"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var req emitRequest
		require.NoError(t, bind(r, &req))
		assert.Equal(t, "payment.inProgress", req.Type)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		err := bind(formRequest(url.Values{"retries": {"many"}}), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("not applicable to json", func(t *testing.T) {
		t.Parallel()
		var req emitRequest
		assert.ErrorIs(t, bind(jsonRequest(`{}`), &req), binder.ErrBinderNotApplicable)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, bind(formRequest(url.Values{"a": {"b"}}), &s), binder.ErrInvalidForm)
	})
}
