package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stolik",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	layoutComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stolik",
			Name:      "layout_computed_total",
			Help:      "Count of timeline layouts by source (computed or cache).",
		},
		[]string{"source"},
	)

	layoutRows = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stolik",
			Name:      "layout_rows",
			Help:      "Rows used by computed timeline layouts.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	cacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stolik",
			Name:      "cache_ops_total",
			Help:      "Count of layout cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, layoutComputed, layoutRows, cacheOps)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncLayout(source string) {
	layoutComputed.WithLabelValues(source).Inc()
}

func ObserveLayoutRows(rows int) {
	layoutRows.Observe(float64(rows))
}

func IncCache(result string) {
	cacheOps.WithLabelValues(result).Inc()
}
