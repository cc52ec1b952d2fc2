package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	Transitions     *prometheus.CounterVec
	DocumentUploads *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admission_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admission_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admission_workflow_transitions_total",
			Help: "Committed workflow actions by audit action tag.",
		}, []string{"action"}),
		DocumentUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admission_document_uploads_total",
			Help: "Document uploads by document type.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Transitions, m.DocumentUploads)
	return m
}

// Transition counts a committed workflow action. Nil-safe.
func (m *Metrics) Transition(action string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(action).Inc()
}

// Upload counts a stored document. Nil-safe.
func (m *Metrics) Upload(docType string) {
	if m == nil {
		return
	}
	m.DocumentUploads.WithLabelValues(docType).Inc()
}
