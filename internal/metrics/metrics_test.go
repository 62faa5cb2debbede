package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/metrics"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("GET", "/api/v1/scan-events", 200, 15*time.Millisecond)
	m.Admission("rejected")
	m.Admission("rejected")
	m.ScanEventIngested("FORGED")

	assert.Equal(t, 2.0, counterValue(t, reg, "authentiqa_admission_decisions_total", "outcome", "rejected"))
	assert.Equal(t, 1.0, counterValue(t, reg, "authentiqa_scan_events_ingested_total", "result_label", "FORGED"))
	assert.Equal(t, 1.0, counterValue(t, reg, "authentiqa_http_requests_total", "route", "/api/v1/scan-events"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.Admission("allowed")
		m.ScanEventIngested("AUTHENTIC")
	})
}
