// Package metrics holds the Prometheus collectors shared across layers.
// Label sets are fixed and small so cardinality stays bounded.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Result label values.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultError   = "error"
	ResultOK      = "ok"
	ResultTimeout = "timeout"
)

var (
	// HTTPRequests counts requests by method, route template and status code.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPLatency records request duration in seconds by method and route template.
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CacheLookups counts listing cache reads by outcome (hit, miss, error).
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_cache_lookups_total",
			Help: "Listing cache lookups by result.",
		},
		[]string{"result"},
	)

	// CacheWrites counts listing cache writes by outcome (ok, error).
	CacheWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_cache_writes_total",
			Help: "Listing cache writes by result.",
		},
		[]string{"result"},
	)

	// CacheInvalidations counts namespace purges by outcome (ok, error).
	CacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_cache_invalidations_total",
			Help: "Listing cache namespace purges by result.",
		},
		[]string{"result"},
	)

	// Translations counts translation adapter calls by target language and outcome.
	Translations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_translations_total",
			Help: "Translation adapter calls by language and result.",
		},
		[]string{"lang", "result"},
	)

	// TranslationLatency records translation adapter latency in seconds.
	TranslationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "faq_translation_duration_seconds",
			Help:    "Latency of single translation adapter calls.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, CacheLookups, CacheWrites, CacheInvalidations, Translations, TranslationLatency)
}
