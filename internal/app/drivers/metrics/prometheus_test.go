package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/centers", 200, 0.01)
	m.ObserveRequest("GET", "/api/v1/centers", 200, 0.02)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/v1/centers", "200")))
}

func TestUpstreamMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewUpstreamMetrics(reg)

	m.ObserveCall("centers", 0, 0.5)
	m.ObserveCache("centers", true)
	m.ObserveCache("centers", false)
	m.ObserveCache("centers", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.callsTotal.WithLabelValues("centers", "error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheTotal.WithLabelValues("centers", "miss")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var h *HTTPMetrics
	var u *UpstreamMetrics
	assert.NotPanics(t, func() {
		h.ObserveRequest("GET", "/", 200, 0)
		u.ObserveCall("x", 200, 0)
		u.ObserveCache("x", true)
	})
}
