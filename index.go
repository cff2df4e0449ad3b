package icd

import (
	"fmt"
	"slices"
	"sync"
)

// Index is the immutable catalog of all four subsets. Build one with
// Load; afterwards every method is safe for concurrent use.
type Index struct {
	// subsets holds each subset's entries in source order.
	subsets map[Subset][]Entry

	// first maps a normalized code to the position of its earliest
	// entry within each subset.
	first map[Subset]map[string]int

	// union holds every entry with its subset in catalog order (fixed
	// subset order, then source order). Distance is left zero; Search
	// works on a copy.
	union []Match

	// unionKeys caches the normalized code of each union entry.
	unionKeys []string

	cache   *searchCache
	metrics *Metrics
	rng     randSource
	rngMu   sync.Mutex
}

// Load builds the catalog index. The four subsets are retrieved and
// parsed in parallel; if any subset fails — source unavailable or a
// malformed line — Load returns the error and no Index. There is no
// partial-catalog mode.
func Load(opts ...Option) (*Index, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	type loaded struct {
		subset  Subset
		entries []Entry
	}

	subsets := Subsets()
	var wg sync.WaitGroup
	results := make(chan loaded, len(subsets))
	errChan := make(chan error, len(subsets))

	for _, subset := range subsets {
		wg.Add(1)
		go func() {
			defer wg.Done()

			text, err := options.Source.SubsetText(subset)
			if err != nil {
				errChan <- &SourceError{Subset: subset, Err: err}
				return
			}

			entries, err := parseSubsetText(subset, text)
			if err != nil {
				errChan <- err
				return
			}

			results <- loaded{subset: subset, entries: entries}
		}()
	}

	wg.Wait()
	close(results)
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	ix := &Index{
		subsets: make(map[Subset][]Entry, len(subsets)),
		first:   make(map[Subset]map[string]int, len(subsets)),
		metrics: NewMetrics(),
		rng:     options.Rand,
	}
	for r := range results {
		ix.subsets[r.subset] = r.entries
	}

	// Catalog order: fixed subset order, then source order. This is the
	// iteration order of Find and the tie-break order of Search.
	for _, subset := range subsets {
		entries := ix.subsets[subset]
		first := make(map[string]int, len(entries))
		for i, e := range entries {
			key := e.Normalized()
			if _, ok := first[key]; !ok {
				first[key] = i
			}
			ix.union = append(ix.union, Match{Entry: e, Subset: subset})
			ix.unionKeys = append(ix.unionKeys, key)
		}
		ix.first[subset] = first
	}

	if options.SearchCacheSize > 0 {
		ix.cache = newSearchCache(options.SearchCacheSize)
	}

	return ix, nil
}

// Find returns the earliest entry in catalog order whose normalized
// code equals the normalized query. A query that normalizes to the
// empty string never matches, since normalized catalog codes are never
// empty; Find reports a plain miss for it, not an error.
func (ix *Index) Find(query string) (Entry, bool) {
	ix.metrics.finds.Add(1)

	key := NormalizeCode(query)
	if key == "" {
		return Entry{}, false
	}

	for _, subset := range Subsets() {
		if i, ok := ix.first[subset][key]; ok {
			ix.metrics.findHits.Add(1)
			return ix.subsets[subset][i], true
		}
	}
	return Entry{}, false
}

// FindIn is Find restricted to a single subset. A subset outside the
// four known values returns ErrUnknownSubset; a missing match is a
// plain miss, never an error.
func (ix *Index) FindIn(subset Subset, query string) (Entry, bool, error) {
	if !subset.IsValid() {
		return Entry{}, false, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}

	ix.metrics.finds.Add(1)

	key := NormalizeCode(query)
	if key == "" {
		return Entry{}, false, nil
	}

	if i, ok := ix.first[subset][key]; ok {
		ix.metrics.findHits.Add(1)
		return ix.subsets[subset][i], true, nil
	}
	return Entry{}, false, nil
}

// Len returns the total number of entries across all subsets.
func (ix *Index) Len() int {
	return len(ix.union)
}

// SubsetLen returns the number of entries in one subset; zero for an
// unknown subset.
func (ix *Index) SubsetLen(subset Subset) int {
	return len(ix.subsets[subset])
}

// Entries returns a copy of a subset's entries in source order.
func (ix *Index) Entries(subset Subset) ([]Entry, error) {
	if !subset.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}
	return slices.Clone(ix.subsets[subset]), nil
}

// Metrics returns the operation counters for this index.
func (ix *Index) Metrics() *Metrics {
	return ix.metrics
}
