package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics_NilRegisterer(t *testing.T) {
	m := NewHTTPMetrics(nil)
	require.NotNil(t, m)

	// Must be safe to call without registered collectors.
	m.ObserveRequest("GET", "/api/v1/products", "200", 25*time.Millisecond)
}

func TestObserveRequest_RecordsCountAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/products", "200", 40*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/products", "200", 60*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/cart/items", "401", 5*time.Millisecond)

	count := fetchCounterValue(t, reg, "http_requests_total", map[string]string{
		"method": "GET",
		"route":  "/api/v1/products",
		"status": "200",
	})
	assert.Equal(t, float64(2), count)

	sum := fetchHistogramSum(t, reg, "http_request_duration_seconds", map[string]string{
		"method": "GET",
		"route":  "/api/v1/products",
	})
	assert.InDelta(t, 0.1, sum, 0.001)
}

func TestObserveRequest_NormalizesEmptyLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("", "", "", time.Millisecond)

	count := fetchCounterValue(t, reg, "http_requests_total", map[string]string{
		"method": "unknown",
		"route":  "unknown",
		"status": "unknown",
	})
	assert.Equal(t, float64(1), count)
}

func TestObserveRequest_NilReceiver(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/health", "200", time.Millisecond)
}

func fetchCounterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	family := findMetricFamily(t, reg, name)
	for _, metric := range family.GetMetric() {
		if matchesLabels(metric, labels) {
			return metric.GetCounter().GetValue()
		}
	}
	t.Fatalf("no metric %s with labels %v", name, labels)
	return 0
}

func fetchHistogramSum(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	family := findMetricFamily(t, reg, name)
	for _, metric := range family.GetMetric() {
		if matchesLabels(metric, labels) {
			return metric.GetHistogram().GetSampleSum()
		}
	}
	t.Fatalf("no metric %s with labels %v", name, labels)
	return 0
}

func findMetricFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func matchesLabels(metric *dto.Metric, labels map[string]string) bool {
	got := make(map[string]string, len(metric.GetLabel()))
	for _, pair := range metric.GetLabel() {
		got[pair.GetName()] = pair.GetValue()
	}
	for key, want := range labels {
		if got[key] != want {
			return false
		}
	}
	return true
}
