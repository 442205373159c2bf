package coordinator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments refresh cycles across all targets. A nil *Metrics
// disables instrumentation.
type Metrics struct {
	refreshes   *prometheus.CounterVec
	suppressed  *prometheus.GaugeVec
	lastSuccess *prometheus.GaugeVec
}

// NewMetrics builds the coordinator metric set and registers it with reg
// when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collector_refreshes_total",
			Help: "Refresh cycles per target, labelled by outcome.",
		}, []string{"target", "outcome"}),
		suppressed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "collector_suppressed_areas",
			Help: "Constituent areas currently inside a suppression window.",
		}, []string{"target"}),
		lastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "collector_last_success_timestamp_seconds",
			Help: "Unix time of the last successful refresh per target.",
		}, []string{"target"}),
	}
	if reg != nil {
		reg.MustRegister(m.refreshes, m.suppressed, m.lastSuccess)
	}
	return m
}

func (m *Metrics) refresh(target, outcome string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(target, outcome).Inc()
}

func (m *Metrics) suppressedAreas(target string, n int) {
	if m == nil {
		return
	}
	m.suppressed.WithLabelValues(target).Set(float64(n))
}

func (m *Metrics) success(target string, at time.Time) {
	if m == nil {
		return
	}
	m.lastSuccess.WithLabelValues(target).Set(float64(at.Unix()))
}
