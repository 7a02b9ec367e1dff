package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolapi/internal/pkg/metrics"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	require.NotNil(t, m.RequestsTotal)
	require.NotNil(t, m.RequestDuration)
	require.NotNil(t, m.RequestsInFlight)

	m.RequestsTotal.WithLabelValues("GET", "/api/students", "2xx").Inc()
	m.RequestsTotal.WithLabelValues("POST", "/api/students", "4xx").Add(2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	series := 0
	for _, family := range families {
		if family.GetName() != "schoolapi_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			series++
			total += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2, series)
	assert.Equal(t, float64(3), total)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := metrics.New()
	m.RequestsInFlight.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "schoolapi_requests_in_flight 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{200: "2xx", 201: "2xx", 204: "2xx", 304: "3xx", 400: "4xx", 404: "4xx", 500: "5xx"}
	for status, want := range tests {
		assert.Equal(t, want, metrics.StatusClass(status), status)
	}
}
