// Package stats tracks process-wide notification counters, one per
// event category, mutated concurrently by dispatch passes.
package stats

import (
	"sync/atomic"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

type counters struct {
	counts map[entity.Category]*atomic.Int64
}

// NewCounters builds a counter set covering every known category.
func NewCounters() service.Counters {
	counts := make(map[entity.Category]*atomic.Int64, len(entity.Categories()))
	for _, cat := range entity.Categories() {
		counts[cat] = &atomic.Int64{}
	}

	return &counters{counts: counts}
}

// Add increments the category counter. Unknown categories are dropped
// rather than grown; the category set is closed.
func (c *counters) Add(category entity.Category, n int64) {
	if counter, ok := c.counts[category]; ok {
		counter.Add(n)
	}
}

// Snapshot returns the current totals for the nightly stats posting.
func (c *counters) Snapshot() map[entity.Category]int64 {
	snapshot := make(map[entity.Category]int64, len(c.counts))
	for cat, counter := range c.counts {
		snapshot[cat] = counter.Load()
	}

	return snapshot
}

// Reset zeroes all counters, typically right after a snapshot.
func (c *counters) Reset() {
	for _, counter := range c.counts {
		counter.Store(0)
	}
}
