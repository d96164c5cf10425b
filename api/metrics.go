package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tifye/simlab/assert"
)

type metrics struct {
	batches     *prometheus.CounterVec
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheHits   *prometheus.CounterVec
	invalidArgs *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	assert.AssertNotNil(reg)

	m := &metrics{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simlab",
			Name:      "batches_total",
			Help:      "Simulation batches computed, by exercise.",
		}, []string{"exercise"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simlab",
			Name:      "runs_total",
			Help:      "Simulation runs computed, by exercise.",
		}, []string{"exercise"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "simlab",
			Name:      "batch_duration_seconds",
			Help:      "Time spent computing a batch.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"exercise"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simlab",
			Name:      "batch_cache_hits_total",
			Help:      "Batches served from the cache, by exercise.",
		}, []string{"exercise"}),
		invalidArgs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simlab",
			Name:      "invalid_parameters_total",
			Help:      "Requests rejected for an invalid parameter.",
		}, []string{"param"}),
	}
	reg.MustRegister(m.batches, m.runs, m.duration, m.cacheHits, m.invalidArgs)
	return m
}

func (m *metrics) observeBatch(exercise string, runs int, elapsed time.Duration) {
	m.batches.WithLabelValues(exercise).Inc()
	m.runs.WithLabelValues(exercise).Add(float64(runs))
	m.duration.WithLabelValues(exercise).Observe(elapsed.Seconds())
}
