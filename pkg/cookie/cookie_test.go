package cookie_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

// roundTrip copies Set-Cookie headers of w into a new request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"no secrets", nil, cookie.ErrNoSecret},
		{"empty secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"secret too short", []string{"short"}, cookie.ErrSecretTooShort},
		{"valid secret", []string{secret}, nil},
		{"rotation", []string{secret, oldSecret}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "plain", "value")
	got, err := m.Get(roundTrip(w), "plain")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "3f1c9a")
		got, err := m.GetSigned(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "3f1c9a", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "3f1c9a")
		c := w.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, "|")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: base64.URLEncoding.EncodeToString([]byte("other")) + "|" + sig})
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"no-separator", "!!!|sig"} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "sid", Value: v})
			_, err := m.GetSigned(r, "sid")
			assert.ErrorIs(t, err, cookie.ErrInvalidFormat, v)
		}
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		_, err := m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "sid")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	before, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)
	after, err := cookie.New([]string{secret, oldSecret})
	require.NoError(t, err)
	other, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	before.SetSigned(w, "sid", "abc")

	got, err := after.GetSigned(roundTrip(w), "sid")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = other.GetSigned(roundTrip(w), "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestManager_Options(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret}, cookie.WithSecure(true), cookie.WithMaxAge(3600))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "a", "1", cookie.WithPath("/notifications"), cookie.WithSameSite(http.SameSiteStrictMode))
	c := w.Result().Cookies()[0]
	assert.Equal(t, "/notifications", c.Path)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	w = httptest.NewRecorder()
	m.Set(w, "b", "2")
	assert.Equal(t, "/", w.Result().Cookies()[0].Path, "per-call options do not leak into defaults")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Secrets:  " " + secret + " , ," + oldSecret,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	assert.Equal(t, []string{secret, oldSecret}, cfg.SecretList())

	m, err := cookie.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.NotNil(t, m)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
