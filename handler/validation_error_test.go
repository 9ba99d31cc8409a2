package handler_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/handler"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields [][2]string
		want   string
	}{
		{"no fields", nil, "Validation failed"},
		{"one field", [][2]string{{"type", "is required"}}, "validation error: type: is required"},
		{
			"fields sorted, first message each",
			[][2]string{
				{"type", "is required"},
				{"primaryText", "is too long"},
				{"type", "is unknown"},
			},
			"validation error: primaryText: is too long, type: is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := handler.NewValidationError()
			for _, f := range tt.fields {
				verr.Add(f[0], f[1])
			}
			assert.Equal(t, tt.want, verr.Error())
			assert.Equal(t, len(tt.fields) == 0, verr.IsEmpty())
		})
	}
}

func TestValidationError_Accessors(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	verr.Add("email", "is invalid")
	verr.Add("email", "is required")

	assert.True(t, verr.Has("email"))
	assert.False(t, verr.Has("name"))
	assert.Equal(t, "is invalid", verr.Get("email"))
	assert.Empty(t, verr.Get("name"))
	assert.Equal(t, []string{"is invalid", "is required"}, verr["email"])
}

func TestValidationError_Unwraps(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	verr.Add("type", "is required")
	wrapped := fmt.Errorf("emit: %w", verr)

	var got handler.ValidationError
	require.True(t, errors.As(wrapped, &got))
	assert.True(t, got.Has("type"))
}
