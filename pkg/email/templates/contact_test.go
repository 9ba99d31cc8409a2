package templates_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/email/templates"
)

func TestContactEmail(t *testing.T) {
	t.Parallel()

	t.Run("renders all fields", func(t *testing.T) {
		t.Parallel()
		html, err := templates.Render(context.Background(), templates.ContactEmail(templates.ContactMessage{
			Name:    "Ana",
			Email:   "ana@example.com",
			Message: "Olá!\nQuero saber mais.",
			Site:    "NFT Drop",
		}))
		require.NoError(t, err)
		assert.Contains(t, html, "NFT Drop: novo contato")
		assert.Contains(t, html, "Ana")
		assert.Contains(t, html, "ana@example.com")
		assert.Contains(t, html, "Quero saber mais.")
		assert.Contains(t, html, "<p><strong>Nome:</strong> Ana</p>")
	})

	t.Run("escapes user input", func(t *testing.T) {
		t.Parallel()
		html, err := templates.Render(context.Background(), templates.ContactEmail(templates.ContactMessage{
			Name:  `<script>alert(1)</script>`,
			Email: "x@example.com",
		}))
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("subject without site", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "novo contato", templates.ContactMessage{}.Subject())
		assert.Equal(t, "Aurora: novo contato", templates.ContactMessage{Site: "Aurora"}.Subject())
	})

	t.Run("empty message omits paragraph", func(t *testing.T) {
		t.Parallel()
		html, err := templates.Render(context.Background(), templates.ContactEmail(templates.ContactMessage{
			Name:  "Ana",
			Email: "ana@example.com",
		}))
		require.NoError(t, err)
		assert.NotContains(t, html, "pre-line")
	})
}
