// Package metrics exposes batch execution metrics in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/zombietown/internal/logging"
)

// Metrics bundles the batch collectors and the HTTP handler serving them.
// It registers against its own registry so tests never collide on the
// global default.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runsCompleted prometheus.Counter
	daysHistogram prometheus.Histogram
	activeRuns    prometheus.Gauge
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		runsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zombietown_runs_completed_total",
			Help: "Number of simulation runs that reached full infection.",
		}),
		daysHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "zombietown_days_to_extinction",
			Help:    "Day count at which each run reached full infection.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zombietown_active_runs",
			Help: "Number of currently active runs (0 or 1 by the sequencing policy).",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.runsCompleted,
		m.daysHistogram,
		m.activeRuns,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RunStarted implements orchestration.Observer.
func (m *Metrics) RunStarted(run int) {
	m.activeRuns.Set(1)
}

// RunCompleted implements orchestration.Observer.
func (m *Metrics) RunCompleted(run, days int) {
	m.activeRuns.Set(0)
	m.runsCompleted.Inc()
	m.daysHistogram.Observe(float64(days))
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Serve runs an HTTP server exposing /metrics on addr until ctx is done.
// A closed listener during shutdown is not reported as an error.
func (m *Metrics) Serve(ctx context.Context, addr string, log logging.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("metrics endpoint listening", logging.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
