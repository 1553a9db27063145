// Package metric provides Prometheus metrics for idmint.
//
// It exposes mint throughput, mint latency and HTTP request metrics in
// Prometheus format on the server's /metrics endpoint.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every metric name.
const namespace = "idmint"

// Registry holds all application metrics backed by a dedicated
// Prometheus registry.
type Registry struct {
	// KeysMinted counts minted keys per profile.
	KeysMinted *prometheus.CounterVec

	// MintDuration samples mint call latency per profile.
	MintDuration *prometheus.HistogramVec

	// HTTPRequests counts HTTP requests by method, route and status.
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration samples HTTP request latency by method and route.
	HTTPDuration *prometheus.HistogramVec

	prom *prometheus.Registry
}

// NewRegistry creates a metrics registry with all collectors
// registered, including the standard Go runtime and process
// collectors.
func NewRegistry() *Registry {
	r := &Registry{
		KeysMinted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_minted_total",
			Help:      "Total number of keys minted.",
		}, []string{"profile"}),
		MintDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mint_duration_seconds",
			Help:      "Latency of mint operations.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12),
		}, []string{"profile"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		prom: prometheus.NewRegistry(),
	}

	r.prom.MustRegister(
		r.KeysMinted,
		r.MintDuration,
		r.HTTPRequests,
		r.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveMint records one mint call that produced count keys.
func (r *Registry) ObserveMint(profile string, count int, elapsed time.Duration) {
	r.KeysMinted.WithLabelValues(profile).Add(float64(count))
	r.MintDuration.WithLabelValues(profile).Observe(elapsed.Seconds())
}

// ObserveHTTP records one completed HTTP request.
func (r *Registry) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, path, status).Inc()
	r.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prom, promhttp.HandlerOpts{})
}
