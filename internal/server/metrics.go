package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nao1215/passmeter/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "passmeter"

// Metrics holds the Prometheus collectors of one server.
// Each server owns its registry so that tests can run servers side by side.
type Metrics struct {
	registry *prometheus.Registry

	analyses *prometheus.CounterVec
	duration prometheus.Histogram
	requests *prometheus.CounterVec
}

// NewMetrics creates and registers the server collectors, plus the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "analyses_total",
			Help:      "Number of passwords analyzed, by strength tier.",
		}, []string{"tier"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent analyzing one password.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		m.analyses,
		m.duration,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveAnalysis records one analysis.
func (m *Metrics) ObserveAnalysis(tier model.Tier, elapsed time.Duration) {
	m.analyses.WithLabelValues(tier.String()).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObserveRequest records one HTTP response.
func (m *Metrics) ObserveRequest(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
