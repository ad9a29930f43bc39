package depgraph

import "sort"

// TopologicalOrder computes a dependency-first ordering of g's nodes
// via repeated root removal (Wikipedia's topological sort, as in
// asn1ate/sema.py's topological_sort):
//
//  1. A node is a root iff no other (still-present) node's reference
//     set contains it.
//  2. Repeatedly pop a root, prepend it to the output order, and
//     requeue any of its references that have become roots.
//  3. If nodes remain once roots are exhausted, the graph has a cycle;
//     the residual adjacency (name -> still-unresolved references,
//     restricted to remaining nodes) is returned for diagnostics.
//
// The returned order lists dependencies before dependants: if A
// references B, B appears before A. When popping a root frees more
// than one sibling at once, they are pushed in descending name order
// so the stack pops them ascending — without this, ranging over the
// successors map would make sibling order vary from run to run.
func (g *Graph) TopologicalOrder() (order []string, residual map[string][]string) {
	// remaining holds each node's current reference set, restricted to
	// names that are themselves nodes (external references can never
	// block a node from becoming a root, since they're never nodes
	// with dependents of their own counted against them).
	remaining := make(map[string]map[string]bool, len(g.order))
	for _, name := range g.order {
		refs := make(map[string]bool)
		for _, r := range g.edges[name] {
			if g.nodes[r] {
				refs[r] = true
			}
		}
		remaining[name] = refs
	}

	hasPredecessor := func(name string) bool {
		for _, refs := range remaining {
			if refs[name] {
				return true
			}
		}
		return false
	}

	present := make(map[string]bool, len(g.order))
	for _, name := range g.order {
		present[name] = true
	}

	var roots []string
	for _, name := range g.order {
		if !hasPredecessor(name) {
			roots = append(roots, name)
		}
	}

	for len(roots) > 0 {
		root := roots[len(roots)-1]
		roots = roots[:len(roots)-1]

		successors := remaining[root]
		delete(remaining, root)
		delete(present, root)

		order = append([]string{root}, order...)

		freed := make([]string, 0, len(successors))
		for succ := range successors {
			freed = append(freed, succ)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(freed)))

		for _, succ := range freed {
			if !present[succ] {
				continue
			}
			if !hasPredecessor(succ) {
				roots = append(roots, succ)
			}
		}
	}

	if len(remaining) > 0 {
		residual = make(map[string][]string, len(remaining))
		for name, refs := range remaining {
			list := make([]string, 0, len(refs))
			for r := range refs {
				list = append(list, r)
			}
			sort.Strings(list)
			residual[name] = list
		}
	}

	return order, residual
}
