package icd

import "sync/atomic"

// Metrics tracks catalog operation counts using lock-free atomic
// operations. All methods are safe for concurrent use.
type Metrics struct {
	// Lookup counts
	finds    atomic.Uint64
	findHits atomic.Uint64

	// Search and sampling counts
	searches atomic.Uint64
	samples  atomic.Uint64

	// Search cache metrics
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Finds       uint64 `json:"finds"`
	FindHits    uint64 `json:"findHits"`
	Searches    uint64 `json:"searches"`
	Samples     uint64 `json:"samples"`
	CacheHits   uint64 `json:"cacheHits"`
	CacheMisses uint64 `json:"cacheMisses"`
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Finds:       m.finds.Load(),
		FindHits:    m.findHits.Load(),
		Searches:    m.searches.Load(),
		Samples:     m.samples.Load(),
		CacheHits:   m.cacheHits.Load(),
		CacheMisses: m.cacheMisses.Load(),
	}
}

// FindHitRate returns the fraction of Find and FindIn calls that
// matched an entry, between 0 and 1.
func (m *Metrics) FindHitRate() float64 {
	finds := m.finds.Load()
	if finds == 0 {
		return 0
	}
	return float64(m.findHits.Load()) / float64(finds)
}

// CacheHitRate returns the fraction of Search calls answered from the
// result cache, between 0 and 1.
func (m *Metrics) CacheHitRate() float64 {
	total := m.cacheHits.Load() + m.cacheMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(m.cacheHits.Load()) / float64(total)
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.finds.Store(0)
	m.findHits.Store(0)
	m.searches.Store(0)
	m.samples.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
}
