// Package oidtrie provides fast prefix/fuzzy lookup over a set of
// names. The sema resolver fills a throwaway Index with one module's
// user-defined type names.
//
// It exists purely to give UnknownReference errors a "did you mean"
// suggestion; it is never consulted for correctness, only diagnostics.
package oidtrie

import (
	"github.com/derekparker/trie"
)

// Index is a trie-backed name index for nearest-match suggestions.
type Index struct {
	t *trie.Trie
}

// New returns an empty Index.
func New() *Index {
	return &Index{t: trie.New()}
}

// Add registers a name in the index. Safe to call with duplicate names.
func (idx *Index) Add(name string) {
	idx.t.Add(name, nil)
}

// AddAll registers every name in names.
func (idx *Index) AddAll(names []string) {
	for _, n := range names {
		idx.Add(n)
	}
}

// Suggest returns the closest known name to query, or "" if the index
// is empty or nothing resembles query. Exact prefix matches are
// preferred; fuzzy (subsequence) matches are used as a fallback.
func (idx *Index) Suggest(query string) string {
	if query == "" {
		return ""
	}
	if matches := idx.t.PrefixSearch(query); len(matches) > 0 {
		return closest(query, matches)
	}
	if matches := idx.t.FuzzySearch(query); len(matches) > 0 {
		return closest(query, matches)
	}
	return ""
}

// closest picks the candidate with the smallest length difference
// from query, breaking ties lexicographically for determinism.
func closest(query string, candidates []string) string {
	best := candidates[0]
	bestDelta := abs(len(best) - len(query))
	for _, c := range candidates[1:] {
		delta := abs(len(c) - len(query))
		if delta < bestDelta || (delta == bestDelta && c < best) {
			best = c
			bestDelta = delta
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
