package icd

import (
	"sort"

	"github.com/gofhir/icd/levenshtein"
)

// SearchLimit is the maximum number of results returned by Search.
const SearchLimit = 10

// Match is one Search result: a catalog entry, the subset it belongs
// to, and the Levenshtein distance between its normalized code and the
// normalized query.
type Match struct {
	Entry    Entry  `json:"entry"`
	Subset   Subset `json:"subset"`
	Distance int    `json:"distance"`
}

// Search ranks every entry in the catalog by the Levenshtein distance
// between its normalized code and the normalized query, and returns the
// closest SearchLimit matches in ascending distance order. Ties keep
// catalog order (fixed subset order, then source order).
//
// Search never fails: an unmatched query simply ranks far from
// everything, and an empty catalog yields an empty slice. Results are
// fresh copies; callers may modify them freely.
func (ix *Index) Search(query string) []Match {
	ix.metrics.searches.Add(1)

	key := NormalizeCode(query)

	if ix.cache != nil {
		if matches, ok := ix.cache.get(key); ok {
			ix.metrics.cacheHits.Add(1)
			return matches
		}
		ix.metrics.cacheMisses.Add(1)
	}

	ranked := make([]Match, len(ix.union))
	copy(ranked, ix.union)
	for i := range ranked {
		ranked[i].Distance = levenshtein.Distance(key, ix.unionKeys[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if len(ranked) > SearchLimit {
		ranked = ranked[:SearchLimit:SearchLimit]
	}

	if ix.cache != nil {
		ix.cache.set(key, ranked)
	}
	return ranked
}
