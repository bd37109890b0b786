package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	pageRequestsTotal     *prometheus.CounterVec
	pageLatencySeconds    *prometheus.HistogramVec
	backendRequestsTotal  *prometheus.CounterVec
	backendLatencySeconds *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors for page serving and
// outbound backend calls.
func RegisterMetrics() {
	registerOnce.Do(func() {
		pageRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "web_page_requests_total",
			Help: "Total number of page requests served.",
		}, []string{"method", "route", "status"})

		pageLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "web_page_latency_seconds",
			Help:    "Latency distribution for page requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		backendRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "web_backend_requests_total",
			Help: "Total number of outbound backend calls by operation and outcome.",
		}, []string{"op", "outcome"})

		backendLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "web_backend_latency_seconds",
			Help:    "Latency distribution for outbound backend calls.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"op"})

		prometheus.MustRegister(pageRequestsTotal, pageLatencySeconds, backendRequestsTotal, backendLatencySeconds)
	})
}

// PageRequests exposes the counter for served pages.
func PageRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return pageRequestsTotal
}

// PageLatency exposes the latency histogram for served pages.
func PageLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return pageLatencySeconds
}

// BackendRequests exposes the counter for outbound backend calls.
func BackendRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return backendRequestsTotal
}

// BackendLatency exposes the latency histogram for outbound backend calls.
func BackendLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return backendLatencySeconds
}
