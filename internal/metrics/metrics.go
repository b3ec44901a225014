package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all site metrics.
type Metrics struct {
	PageRenders   *prometheus.CounterVec
	RenderLatency *prometheus.HistogramVec
	CacheHits     *prometheus.CounterVec
	PageRequests  *prometheus.CounterVec
}

// New creates site metrics and registers them with reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of page renders",
		}, []string{"page", "status"}),
		RenderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Time spent rendering a page",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"page"}),
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_hits_total",
			Help:      "Total number of pages served from the render cache",
		}, []string{"page"}),
		PageRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_page_requests_total",
			Help:      "Total number of page requests by status code",
		}, []string{"page", "code"}),
	}
}
