package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/qrcode"
)

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func decodeSize(t *testing.T, data []byte) int {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "result should be a valid PNG image")
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy(), "image should be square")
	return img.Bounds().Dx()
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "   \t\n"} {
			result, err := qrcode.Generate(content, 256)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, result)
		}
	})

	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"requested size", 400, 400},
		{"zero falls back to default", 0, 256},
		{"negative falls back to default", -10, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := qrcode.Generate("https://example.com", tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decodeSize(t, result))
		})
	}
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.GenerateBase64Image(" ", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Empty(t, result)
	})

	t.Run("decodes to a png", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.GenerateBase64Image("https://example.com", 256)
		require.NoError(t, err)

		const prefix = "data:image/png;base64,"
		require.True(t, strings.HasPrefix(result, prefix))
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result, prefix))
		require.NoError(t, err)
		assert.Equal(t, 256, decodeSize(t, raw))
	})
}

func TestContractURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{"checksummed address", contract, "ethereum:" + contract, false},
		{"surrounding spaces", "  " + contract + " ", "ethereum:" + contract, false},
		{"lowercase", strings.ToLower(contract), "ethereum:" + strings.ToLower(contract), false},
		{"missing prefix", contract[2:], "", true},
		{"too short", contract[:20], "", true},
		{"non hex", "0x" + strings.Repeat("z", 40), "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := qrcode.ContractURI(tt.address)
			if tt.wantErr {
				assert.ErrorIs(t, err, qrcode.ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContract(t *testing.T) {
	t.Parallel()

	data, err := qrcode.Contract(contract, 320)
	require.NoError(t, err)
	assert.Equal(t, 320, decodeSize(t, data))

	_, err = qrcode.Contract("nope", 320)
	assert.ErrorIs(t, err, qrcode.ErrInvalidAddress)
}
