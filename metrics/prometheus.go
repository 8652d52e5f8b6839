// Package metrics wires the search loop into Prometheus: one collector
// registered against a registry reports episode counts and search
// duration as counter/histogram vectors.
package metrics

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cgilab/nogo-mcts/searcher"
)

// PrometheusCollector implements searcher.MetricsCollector, publishing
// per-search episode counts and duration as Prometheus metrics. An
// instance may serve successive searches (Start resets its per-search
// fields) but not concurrent ones; all instances share the same
// registered vectors, keyed by a worker label.
type PrometheusCollector struct {
	worker string

	episodes  prometheus.Counter
	durations prometheus.Observer

	searchID  uuid.UUID
	startTime time.Time
	episodeN  int64
}

// Collectors bundles the Prometheus metric vectors a PrometheusCollector
// reports to. Construct once per process with NewCollectors and pass
// the result to NewPrometheusCollector for every collector.
type Collectors struct {
	episodes  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewCollectors registers the nogo-mcts metric vectors against reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		episodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nogo_mcts",
			Name:      "episodes_total",
			Help:      "Number of completed selection-expansion-playout-backpropagation iterations.",
		}, []string{"worker"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nogo_mcts",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of one TakeAction search.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"worker"}),
	}
	reg.MustRegister(c.episodes, c.durations)
	return c
}

// NewPrometheusCollector returns a searcher.MetricsCollector reporting
// to c under the given worker label; collectors with distinct labels
// report to separate series.
func NewPrometheusCollector(c *Collectors, worker string) searcher.MetricsCollector {
	return &PrometheusCollector{
		worker:    worker,
		episodes:  c.episodes.WithLabelValues(worker),
		durations: c.durations.WithLabelValues(worker),
	}
}

func (p *PrometheusCollector) Start(searchID uuid.UUID) {
	p.searchID = searchID
	p.startTime = time.Now()
	p.episodeN = 0
}

func (p *PrometheusCollector) AddEpisode() {
	p.episodeN++
	p.episodes.Inc()
}

func (p *PrometheusCollector) Complete() searcher.SearchMetric {
	duration := time.Since(p.startTime)
	p.durations.Observe(duration.Seconds())
	return searcher.SearchMetric{
		SearchID: p.searchID,
		Duration: duration,
		Episodes: p.episodeN,
	}
}
