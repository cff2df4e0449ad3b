// Package icd provides lookup and fuzzy search over a bundled catalog
// of ICD-9-CM and ICD-10-CM/PCS medical classification codes.
//
// The catalog is partitioned into four fixed subsets (two coding
// revisions by the diagnosis/procedure axis), loaded once from bundled
// text data and immutable afterwards. Matching is performed on
// normalized codes: all non-alphanumeric characters stripped and the
// remainder uppercased, so "A00.0", "a000" and "A000" address the same
// entry.
//
// # Quick Start
//
//	index, err := icd.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if entry, ok := index.Find("A00.0"); ok {
//	    fmt.Println(entry.Code, entry.Description)
//	}
//
//	for _, match := range index.Search("A001") {
//	    fmt.Println(match.Distance, match.Entry.Code)
//	}
//
//	samples, err := index.Samples(icd.ICD10Diagnosis, 5)
//
// # Operations
//
//   - Find / FindIn: exact lookup by normalized code, over the whole
//     catalog or a single subset. A miss is signalled by a false ok
//     value, never by an error.
//   - Search: every entry ranked by Levenshtein distance between its
//     normalized code and the normalized query; the closest ten are
//     returned in ascending distance order.
//   - Samples: uniform random draw without replacement from one subset.
//
// # Concurrency
//
// Load builds the entire catalog before returning; all four subsets are
// parsed in parallel and any failure aborts the build. The returned
// Index is read-only, so Find, Search and Samples are safe to call from
// any number of goroutines without external locking.
//
// # FHIR Interop
//
// Entries convert to FHIR R4 datatypes carrying the subset's canonical
// code system URI:
//
//	coding := entry.Coding(icd.ICD10Diagnosis)
//	concept := entry.CodeableConcept(icd.ICD10Diagnosis)
package icd
