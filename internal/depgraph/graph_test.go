package depgraph

import "testing"

func TestTopologicalOrderChain(t *testing.T) {
	g := New()
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{})
	g.AddNode("C", []string{"A"})

	order, residual := g.TopologicalOrder()
	if residual != nil {
		t.Fatalf("residual = %v, want nil", residual)
	}

	want := []string{"B", "A", "C"}
	if !equalSlices(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTopologicalOrderCycle(t *testing.T) {
	g := New()
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{"A"})

	_, residual := g.TopologicalOrder()
	if residual == nil {
		t.Fatal("expected residual graph for cyclic input")
	}
	if len(residual) != 2 {
		t.Errorf("residual size = %d, want 2", len(residual))
	}
}

func TestTopologicalOrderIgnoresExternalReferences(t *testing.T) {
	g := New()
	g.AddNode("A", []string{"INTEGER"}) // INTEGER is never a node

	order, residual := g.TopologicalOrder()
	if residual != nil {
		t.Fatalf("residual = %v, want nil", residual)
	}
	if !equalSlices(order, []string{"A"}) {
		t.Errorf("order = %v, want [A]", order)
	}
}

func TestStronglyConnectedComponentsAllSingletons(t *testing.T) {
	g := New()
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{})
	g.AddNode("C", []string{"A"})

	sccs := g.StronglyConnectedComponents()
	if len(sccs) != 3 {
		t.Fatalf("components = %d, want 3", len(sccs))
	}
	for _, c := range sccs {
		if len(c) != 1 {
			t.Errorf("expected singleton component, got %v", c)
		}
	}

	// B must appear before A, A before C (dependencies first).
	pos := make(map[string]int)
	for i, c := range sccs {
		pos[c[0]] = i
	}
	if pos["B"] >= pos["A"] {
		t.Errorf("B should precede A: positions %v", pos)
	}
	if pos["A"] >= pos["C"] {
		t.Errorf("A should precede C: positions %v", pos)
	}
}

func TestStronglyConnectedComponentsCycle(t *testing.T) {
	g := New()
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{"A"})

	sccs := g.StronglyConnectedComponents()
	if len(sccs) != 1 {
		t.Fatalf("components = %d, want 1", len(sccs))
	}
	if len(sccs[0]) != 2 {
		t.Errorf("component size = %d, want 2", len(sccs[0]))
	}
}

func TestStronglyConnectedComponentsDeterministicRootOrder(t *testing.T) {
	g := New()
	g.AddNode("Z", []string{})
	g.AddNode("A", []string{})
	g.AddNode("M", []string{})

	sccs := g.StronglyConnectedComponents()
	var order []string
	for _, c := range sccs {
		order = append(order, c[0])
	}
	want := []string{"A", "M", "Z"}
	if !equalSlices(order, want) {
		t.Errorf("order = %v, want %v (alphabetical roots)", order, want)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
