package notification_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/status"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := notification.NewMetrics(reg)
	require.NoError(t, err)

	s := notification.NewSessions(brand, notification.WithObserver(m))
	defer s.Close()

	ctx := context.Background()
	ch := s.Get("a")
	ch.Emit(ctx, status.PaymentSuccess, notification.Message{})
	ch.Emit(ctx, status.EmailSendSuccess, notification.Message{})
	ch.Emit(ctx, "nope", notification.Message{})
	ch.Close(ctx)
	s.Get("b")

	count, err := testutil.GatherAndCount(reg, "landing_notifications_emitted_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = notification.NewMetrics(reg)
	assert.Error(t, err, "duplicate registration must fail")
}
