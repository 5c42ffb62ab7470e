package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFlowMetrics(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.FlowOpened("")
	m.FlowOpened("doble")
	m.FlowTransition("dates", "extras")
	m.FlowValidationFailed("submit")
	m.FlowSubmitted(5200)
	m.FlowReset("timer")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowOpenedTotal.WithLabelValues("default")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowOpenedTotal.WithLabelValues("doble")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowTransitionsTotal.WithLabelValues("dates", "extras")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowValidationsFailed.WithLabelValues("submit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowSubmissionsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowResetsTotal.WithLabelValues("timer")))
}

func TestHTTPMetrics(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.HTTPRequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPInFlight))

	m.HTTPRequestFinished("GET", "/api/v1/rooms/{roomId}", 404, 15*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/rooms/{roomId}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}
