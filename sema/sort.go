package sema

import (
	"github.com/goasn1/semamodel/internal/depgraph"
	"github.com/goasn1/semamodel/semaerr"
)

// assignmentGraph builds the dependency graph of assignments, keyed by
// ReferenceName. References naming symbols outside the list (from
// another module, or simply unresolved) are kept as edges but never
// become nodes, so internal/depgraph.TopologicalOrder treats them as
// already-satisfied.
func assignmentGraph(assignments []Assignment) (*depgraph.Graph, map[string]Assignment) {
	g := depgraph.New()
	byName := make(map[string]Assignment, len(assignments))
	for _, a := range assignments {
		name := a.ReferenceName()
		byName[name] = a
		g.AddNode(name, References(a))
	}
	return g, byName
}

// TopologicalSort orders assignments so that every type or value a
// declaration depends on appears before it. The list may span several
// modules, or be a filtered subset of one — any []Assignment is
// accepted. Returns CyclicReferencesError if the assignments cannot be
// fully ordered.
func TopologicalSort(assignments []Assignment) ([]Assignment, error) {
	g, byName := assignmentGraph(assignments)
	order, residual := g.TopologicalOrder()
	if len(residual) > 0 {
		return nil, &semaerr.CyclicReferencesError{Residual: residual}
	}
	out := make([]Assignment, len(order))
	for i, name := range order {
		out[i] = byName[name]
	}
	return out, nil
}

// DependencySort partitions assignments into strongly connected
// components, each a minimal set of mutually-dependent declarations,
// in dependency-first order. Singleton components (the common case,
// an assignment depending on nothing circularly) are included just
// like multi-member cycles. As with TopologicalSort, assignments may
// be any slice — a whole module, several modules, or a filtered
// subset.
func DependencySort(assignments []Assignment) [][]Assignment {
	g, byName := assignmentGraph(assignments)
	components := g.StronglyConnectedComponents()
	out := make([][]Assignment, len(components))
	for i, comp := range components {
		group := make([]Assignment, len(comp))
		for j, name := range comp {
			group[j] = byName[name]
		}
		out[i] = group
	}
	return out
}
