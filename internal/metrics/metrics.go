// Package metrics defines the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	admissionDecisions *prometheus.CounterVec
	scanEventsIngested *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentiqa_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "authentiqa_http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		admissionDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentiqa_admission_decisions_total",
				Help: "Ingestion admission decisions by outcome.",
			},
			[]string{"outcome"},
		),
		scanEventsIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentiqa_scan_events_ingested_total",
				Help: "Scan events stored, by result label.",
			},
			[]string{"result_label"},
		),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.admissionDecisions, m.scanEventsIngested)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, route, code).Inc()
	m.httpDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// Admission records an admission decision. Outcome is "allowed", "rejected"
// or "error".
func (m *Metrics) Admission(outcome string) {
	if m == nil {
		return
	}
	m.admissionDecisions.WithLabelValues(outcome).Inc()
}

// ScanEventIngested records a stored scan event.
func (m *Metrics) ScanEventIngested(label string) {
	if m == nil {
		return
	}
	m.scanEventsIngested.WithLabelValues(label).Inc()
}
