package searcher

import (
	"time"

	"github.com/google/uuid"
)

// MetricsCollector records search progress: how many episodes
// (selection-expansion-playout-backpropagation cycles) a search ran and
// how long it took.
type MetricsCollector interface {
	Start(searchID uuid.UUID)
	AddEpisode()
	Complete() SearchMetric
}

// SearchMetric summarizes one completed search.
type SearchMetric struct {
	SearchID uuid.UUID
	Duration time.Duration
	Episodes int64
}

type noopCollector struct{}

// NewNoopCollector returns a MetricsCollector that does nothing, for
// library callers and tests that don't want the bookkeeping.
func NewNoopCollector() MetricsCollector { return noopCollector{} }

func (noopCollector) Start(uuid.UUID)        {}
func (noopCollector) AddEpisode()            {}
func (noopCollector) Complete() SearchMetric { return SearchMetric{} }

type basicCollector struct {
	searchID  uuid.UUID
	startTime time.Time
	episodes  int64
}

// NewBasicCollector returns an in-memory MetricsCollector suitable for
// single-threaded use. It is not safe to share between root-parallel
// workers: RunParallel applies the same options, and so the same
// collector, to every worker's Tree.
func NewBasicCollector() MetricsCollector {
	return &basicCollector{}
}

func (c *basicCollector) Start(searchID uuid.UUID) {
	c.searchID = searchID
	c.startTime = time.Now()
}

func (c *basicCollector) AddEpisode() {
	c.episodes++
}

func (c *basicCollector) Complete() SearchMetric {
	return SearchMetric{
		SearchID: c.searchID,
		Duration: time.Since(c.startTime),
		Episodes: c.episodes,
	}
}
