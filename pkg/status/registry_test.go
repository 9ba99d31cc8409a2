package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/status"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     status.Code
		expected status.Kind
	}{
		{status.WrongNetwork, status.KindNetworkError},
		{status.MetamaskInstallation, status.KindInstallationError},
		{status.MetamaskConnection, status.KindConnectionError},
		{status.WalletConnectModalClosed, status.KindModalClosed},
		{status.TorusModalClosed, status.KindModalClosed},
		{status.PaymentInProgress, status.KindPaymentInProgress},
		{status.PaymentSuccess, status.KindPaymentSuccess},
		{status.EmailSendSuccess, status.KindEmailSuccess},
		{"unknown.code", status.KindUnknown},
		{"", status.KindUnknown},
		{"PAYMENT.SUCCESS", status.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, status.KindOf(tt.code))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("every entry is reachable by code", func(t *testing.T) {
		t.Parallel()
		for _, e := range status.Entries() {
			got, ok := status.Lookup(e.Code)
			require.True(t, ok, e.Code)
			assert.Equal(t, e, got)
		}
	})

	t.Run("error codes from the wallet table", func(t *testing.T) {
		t.Parallel()
		e, ok := status.Lookup(status.WrongNetwork)
		require.True(t, ok)
		assert.Equal(t, 1001, e.ErrorCode)
		assert.Equal(t, "A sua carteira não está conectada à rede correta", e.Message)

		e, ok = status.Lookup(status.TorusModalClosed)
		require.True(t, ok)
		assert.Equal(t, 1005, e.ErrorCode)
		assert.Empty(t, e.Message)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, ok := status.Lookup("nope")
		assert.False(t, ok)
	})
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	entries := status.Entries()
	require.Len(t, entries, 8)
	entries[0].Kind = status.KindUnknown

	assert.Equal(t, status.KindInstallationError, status.KindOf(status.MetamaskInstallation))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "payment_success", status.KindPaymentSuccess.String())
	assert.Equal(t, "unknown", status.KindUnknown.String())
	assert.Equal(t, "unknown", status.Kind(99).String())
	assert.Equal(t, "unknown", status.Kind(-1).String())
}

func TestCodeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, status.PaymentSuccess.Valid())
	assert.False(t, status.Code("").Valid())
	assert.Equal(t, "payment.success", status.PaymentSuccess.String())
}
