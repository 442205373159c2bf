package entsoe

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts outbound platform traffic. All methods are safe on a nil
// receiver so the client can run without instrumentation.
type Metrics struct {
	requests      *prometheus.CounterVec
	retries       *prometheus.CounterVec
	failovers     prometheus.Counter
	parseFailures prometheus.Counter
}

// NewMetrics builds the client collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "entsoe_client_requests_total",
			Help: "Physical requests to the transparency platform by endpoint and result.",
		}, []string{"endpoint", "code"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "entsoe_client_retries_total",
			Help: "Retried attempts per endpoint.",
		}, []string{"endpoint"}),
		failovers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entsoe_client_failovers_total",
			Help: "Times the client moved on to a fallback endpoint.",
		}),
		parseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entsoe_client_parse_failures_total",
			Help: "Market documents that could not be decoded.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.retries, m.failovers, m.parseFailures)
	}
	return m
}

func (m *Metrics) request(endpoint, code string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, code).Inc()
}

func (m *Metrics) retry(endpoint string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) failover() {
	if m == nil {
		return
	}
	m.failovers.Inc()
}

func (m *Metrics) parseFailure() {
	if m == nil {
		return
	}
	m.parseFailures.Inc()
}
