package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	registry *prometheus.Registry

	// OpenWeatherMap API call count by status (success, client_error, server_error, rate_limited, error).
	WeatherAPICallsTotal *prometheus.CounterVec

	// External API latency per request. Watch for: p95 > 2s (upstream degradation).
	WeatherAPIDuration *prometheus.HistogramVec

	// Lookups by outcome (success, error, skipped).
	LookupsTotal *prometheus.CounterVec

	// Failed lookups by error category.
	LookupErrorsTotal *prometheus.CounterVec

	// Rendered reports by condition category; shows how often provider vocabulary falls outside the known sets.
	ConditionCategoryTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	WeatherAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherApiCallsTotal",
			Help: "Total number of OpenWeatherMap API calls",
		},
		[]string{"status"},
	)
	WeatherAPIDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherApiDurationSeconds",
			Help:    "OpenWeatherMap API latency in seconds (per request)",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherLookupsTotal",
			Help: "Total number of weather lookups by outcome",
		},
		[]string{"outcome"},
	)
	LookupErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherLookupErrorsTotal",
			Help: "Failed weather lookups by error category",
		},
		[]string{"category"},
	)
	ConditionCategoryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherConditionCategoryTotal",
			Help: "Rendered weather reports by condition category",
		},
		[]string{"category"},
	)

	registry.MustRegister(
		WeatherAPICallsTotal, WeatherAPIDuration,
		LookupsTotal, LookupErrorsTotal, ConditionCategoryTotal,
	)
}

// Registry exposes the collectors for tests and for pushing.
func Registry() *prometheus.Registry {
	return registry
}

// PushMetrics sends the registry to a Prometheus Pushgateway. An empty url is a
// no-op.
func PushMetrics(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}
	if job == "" {
		job = "ornithologist"
	}
	if err := push.New(url, job).Gatherer(registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
