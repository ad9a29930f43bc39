// Package diagfmt renders diagnostic payloads — residual dependency
// graphs, stranded-component listings — as stable, aligned text.
package diagfmt

import (
	"sort"

	"github.com/kylelemons/godebug/pretty"
)

// Graph renders a name -> references() adjacency map deterministically:
// keys sorted, each value's references sorted, formatted through
// kylelemons/godebug/pretty so the output is an aligned Go-literal-like
// structure rather than Go's randomized map formatting.
func Graph(residual map[string][]string) string {
	ordered := make(map[string][]string, len(residual))
	keys := make([]string, 0, len(residual))
	for k, v := range residual {
		keys = append(keys, k)
		refs := append([]string(nil), v...)
		sort.Strings(refs)
		ordered[k] = refs
	}
	sort.Strings(keys)

	// Rebuild as an ordered slice of pairs so pretty-printing preserves
	// the sorted key order (a plain map would re-randomize it).
	type pair struct {
		Name       string
		References []string
	}
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pair{Name: k, References: ordered[k]})
	}
	return pretty.Sprint(pairs)
}

// Components renders a dependency_sort-style component listing
// (slice of name-tuples) in the order given — callers are expected to
// have already produced dependency order.
func Components(components [][]string) string {
	return pretty.Sprint(components)
}
