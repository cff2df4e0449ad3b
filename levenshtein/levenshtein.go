// Package levenshtein implements the classic dynamic-programming edit
// distance used to rank approximate catalog matches.
package levenshtein

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-character insertions, deletions, and substitutions
// required to transform one string into the other. Every edit costs 1.
//
// The comparison is byte-wise. Callers pass normalized codes, which are
// ASCII by construction, so bytes and characters coincide. The full
// (m+1)x(n+1) table is built; codes are short, so the quadratic cost is
// negligible.
//
// Distance is a pure function: it is deterministic and symmetric, and
// Distance(s, s) == 0 for every s.
func Distance(a, b string) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
		table[i][0] = i
	}
	for j := 1; j <= n; j++ {
		table[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			table[i][j] = min(
				table[i-1][j]+1,      // deletion
				table[i][j-1]+1,      // insertion
				table[i-1][j-1]+cost, // substitution
			)
		}
	}

	return table[m][n]
}
