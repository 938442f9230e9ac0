// Package monitoring provides Prometheus metrics for the catalog and
// recipe generation pipelines
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the application's operational metrics
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	catalogPlants  prometheus.Gauge
	catalogReloads *prometheus.CounterVec

	searchQueries *prometheus.CounterVec
	searchResults prometheus.Histogram

	recommendations *prometheus.CounterVec

	rotations prometheus.Counter

	bookmarkOps *prometheus.CounterVec

	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the application metrics
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vatika_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		catalogPlants: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "vatika_catalog_plants",
			Help: "Number of plants in the active catalog snapshot",
		}),
		catalogReloads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		}, []string{"result"}),

		searchQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_search_queries_total",
			Help: "Total number of catalog search queries",
		}, []string{"kind"}),
		searchResults: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vatika_search_results_count",
			Help:    "Number of results returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),

		recommendations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_recommendations_total",
			Help: "Total number of recommendation requests",
		}, []string{"kind"}),

		rotations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vatika_daily_rotations_total",
			Help: "Total number of daily plant rotations performed",
		}),

		bookmarkOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_bookmark_operations_total",
			Help: "Total number of bookmark operations",
		}, []string{"operation"}),

		generations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vatika_recipe_generations_total",
			Help: "Total number of recipe generation requests",
		}, []string{"provider", "result"}),
		generationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vatika_recipe_generation_duration_seconds",
			Help:    "Recipe generation duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"provider"}),
	}
}

// RecordHTTPRequest records one handled HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetCatalogSize records the active snapshot's plant count
func (m *Metrics) SetCatalogSize(count int) {
	m.catalogPlants.Set(float64(count))
}

// RecordCatalogReload records a reload attempt outcome
func (m *Metrics) RecordCatalogReload(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.catalogReloads.WithLabelValues(result).Inc()
}

// RecordSearch records a search query and its result count
func (m *Metrics) RecordSearch(kind string, results int) {
	m.searchQueries.WithLabelValues(kind).Inc()
	m.searchResults.Observe(float64(results))
}

// RecordRecommendation records a recommendation request
func (m *Metrics) RecordRecommendation(kind string) {
	m.recommendations.WithLabelValues(kind).Inc()
}

// RecordRotation records a completed daily rotation
func (m *Metrics) RecordRotation() {
	m.rotations.Inc()
}

// RecordBookmark records a bookmark add or remove
func (m *Metrics) RecordBookmark(operation string) {
	m.bookmarkOps.WithLabelValues(operation).Inc()
}

// RecordGeneration records a recipe generation attempt
func (m *Metrics) RecordGeneration(provider string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.generations.WithLabelValues(provider, result).Inc()
	m.generationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
