package icd

import (
	"fmt"
	"math/rand/v2"
)

// Samples returns count entries drawn without replacement from subset,
// in uniformly random order. count may equal the subset size, in which
// case the whole subset is returned shuffled; count zero returns an
// empty slice. A negative count is ErrNegativeSampleCount and a count
// beyond the subset size is ErrSampleCountExceeded.
//
// The draw uses a general-purpose pseudo-random generator; no
// reproducibility is promised between calls.
func (ix *Index) Samples(subset Subset, count int) ([]Entry, error) {
	if !subset.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSampleCount, count)
	}

	entries := ix.subsets[subset]
	if count > len(entries) {
		return nil, fmt.Errorf("%w: %d > %d", ErrSampleCountExceeded, count, len(entries))
	}

	ix.metrics.samples.Add(1)

	picked := make([]Entry, len(entries))
	copy(picked, entries)
	ix.shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:count:count], nil
}

// randSource is the subset of *rand.Rand used by Samples. It exists so
// tests can inject a fixed-seed generator via WithRand.
type randSource interface {
	Shuffle(n int, swap func(i, j int))
}

// shuffle permutes via the configured generator, or the process-wide
// one when none is set. An injected *rand.Rand is not safe for
// concurrent use, so it is serialized here.
func (ix *Index) shuffle(n int, swap func(i, j int)) {
	if ix.rng != nil {
		ix.rngMu.Lock()
		defer ix.rngMu.Unlock()
		ix.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
