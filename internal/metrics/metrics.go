// Package metrics records Prometheus metrics for calls made to the vending API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the API client needs from a metrics backend.
type Recorder interface {
	RecordRequest(endpoint, method string, status int, duration time.Duration)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vending_api_requests_total",
			Help: "Calls made to the vending API by endpoint, method and status.",
		}, []string{"endpoint", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vending_api_request_duration_seconds",
			Help:    "Round-trip latency of vending API calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// RecordRequest counts one call. A zero status means the request never got
// an HTTP response.
func (c *Collector) RecordRequest(endpoint, method string, status int, duration time.Duration) {
	c.requests.WithLabelValues(endpoint, method, statusLabel(status)).Inc()
	c.latency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	if status == 0 {
		return "transport_error"
	}
	return strconv.Itoa(status)
}

// Handler exposes everything gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
