package notification

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/landing/pkg/status"
)

// Metrics is a Prometheus backed Observer.
type Metrics struct {
	emitted  *prometheus.CounterVec
	closed   prometheus.Counter
	sessions prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "landing_notifications_emitted_total",
			Help: "Total number of notifications emitted, by status kind",
		}, []string{"kind"}),
		closed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_notifications_closed_total",
			Help: "Total number of notification modals closed",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "landing_sessions_active",
			Help: "Number of browser sessions holding a notification channel",
		}),
	}

	for _, c := range []prometheus.Collector{m.emitted, m.closed, m.sessions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) OnEmit(kind status.Kind) {
	m.emitted.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) OnClose() {
	m.closed.Inc()
}

func (m *Metrics) OnSessions(active int) {
	m.sessions.Set(float64(active))
}
