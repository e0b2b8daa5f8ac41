// Package metrics exposes Prometheus counters for the batch run.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"routesweep/internal/logger"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RoutesEvaluated *prometheus.CounterVec
	RoutesSkipped   prometheus.Counter
	LegsSearched    prometheus.Counter
	LegsSaved       prometheus.Counter
	SearchErrors    *prometheus.CounterVec
	RouteDuration   prometheus.Histogram
}

// New creates new prometheus metrics
func New(namespace string) *Metrics {
	return &Metrics{
		RoutesEvaluated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routes_evaluated_total",
			Help:      "The total number of routes finalized, by verdict",
		}, []string{"verdict"}),
		RoutesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routes_skipped_total",
			Help:      "The total number of routes skipped on resume",
		}),
		LegsSearched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_searched_total",
			Help:      "The total number of leg searches issued",
		}),
		LegsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_saved_total",
			Help:      "The total number of leg searches skipped by early termination",
		}),
		SearchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_errors_total",
			Help:      "The total number of search errors",
		}, []string{"kind"}),
		RouteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_evaluation_seconds",
			Help:      "Time taken to evaluate one route",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Serve exposes /metrics on addr in the background. Empty addr disables
// the endpoint.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("METRICS", "Server stopped: "+err.Error())
		}
	}()
	logger.Info("METRICS", "Serving /metrics on "+addr)
}
