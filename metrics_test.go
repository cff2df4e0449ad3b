package icd

import "testing"

func TestMetrics(t *testing.T) {
	index := mustLoad(t)
	m := index.Metrics()

	index.Find("A000")   // hit
	index.Find("ZZZ999") // miss
	index.Search("A001") // cache miss
	index.Search("A001") // cache hit
	if _, err := index.Samples(ICD9Diagnosis, 1); err != nil {
		t.Fatalf("Samples() error = %v", err)
	}

	snap := m.Snapshot()
	if snap.Finds != 2 {
		t.Errorf("Finds = %d; want 2", snap.Finds)
	}
	if snap.FindHits != 1 {
		t.Errorf("FindHits = %d; want 1", snap.FindHits)
	}
	if snap.Searches != 2 {
		t.Errorf("Searches = %d; want 2", snap.Searches)
	}
	if snap.Samples != 1 {
		t.Errorf("Samples = %d; want 1", snap.Samples)
	}
	if snap.CacheMisses != 1 {
		t.Errorf("CacheMisses = %d; want 1", snap.CacheMisses)
	}
	if snap.CacheHits != 1 {
		t.Errorf("CacheHits = %d; want 1", snap.CacheHits)
	}
}

func TestMetrics_FindHitRate(t *testing.T) {
	m := NewMetrics()
	if got := m.FindHitRate(); got != 0 {
		t.Errorf("FindHitRate() on empty metrics = %v; want 0", got)
	}

	m.finds.Add(4)
	m.findHits.Add(1)
	if got := m.FindHitRate(); got != 0.25 {
		t.Errorf("FindHitRate() = %v; want 0.25", got)
	}
}

func TestMetrics_CacheHitRate(t *testing.T) {
	m := NewMetrics()
	if got := m.CacheHitRate(); got != 0 {
		t.Errorf("CacheHitRate() on empty metrics = %v; want 0", got)
	}

	m.cacheHits.Add(3)
	m.cacheMisses.Add(1)
	if got := m.CacheHitRate(); got != 0.75 {
		t.Errorf("CacheHitRate() = %v; want 0.75", got)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.finds.Add(5)
	m.searches.Add(2)
	m.cacheHits.Add(7)

	m.Reset()

	snap := m.Snapshot()
	if snap != (MetricsSnapshot{}) {
		t.Errorf("Snapshot() after Reset = %+v; want zero value", snap)
	}
}

func TestIndex_FindIn_CountsTowardMetrics(t *testing.T) {
	index := mustLoad(t)

	if _, _, err := index.FindIn(ICD10Diagnosis, "A000"); err != nil {
		t.Fatalf("FindIn() error = %v", err)
	}

	snap := index.Metrics().Snapshot()
	if snap.Finds != 1 || snap.FindHits != 1 {
		t.Errorf("Snapshot() = %+v; want one find with one hit", snap)
	}
}
