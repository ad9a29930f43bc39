package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

func seq(components ...SemaNode) *ConstructedType {
	return &ConstructedType{Kind: SequenceKind, Components: components}
}

func choice(components ...SemaNode) *ConstructedType {
	return &ConstructedType{Kind: ChoiceKind, Components: components}
}

func comp(identifier string, decl SemaNode) *ComponentType {
	return &ComponentType{NamedType: &NamedType{Identifier: identifier, TypeDecl: decl}}
}

func simple(name string) *SimpleType { return &SimpleType{Name: name} }

// Scenario 1: sequential auto-tagging.
func TestAutoTagSequential(t *testing.T) {
	T := seq(comp("a", simple("INTEGER")), comp("b", simple("BOOLEAN")), comp("c", simple("UTF8String")))
	T.AutoTag()

	for i, want := range []int64{0, 1, 2} {
		ct := T.Components[i].(*ComponentType)
		tagged, ok := ct.NamedType.TypeDecl.(*TaggedType)
		require.True(t, ok, "component %d not tagged", i)
		require.Equal(t, want, tagged.ClassNumber)
		require.Equal(t, Implicit, tagged.Implicitness)
	}
}

// Scenario 2: auto-tagging suppressed by a pre-existing explicit tag.
func TestAutoTagSuppressedByExplicitTag(t *testing.T) {
	tagged := &TaggedType{ClassNumber: 5, Implicitness: Unspecified, TypeDecl: simple("INTEGER")}
	T := seq(comp("a", tagged), comp("b", simple("BOOLEAN")))
	T.AutoTag()

	a := T.Components[0].(*ComponentType)
	require.Same(t, tagged, a.NamedType.TypeDecl)
	require.Equal(t, int64(5), tagged.ClassNumber)

	b := T.Components[1].(*ComponentType)
	_, untagged := b.NamedType.TypeDecl.(*SimpleType)
	require.True(t, untagged, "b should not have received an automatic tag")
}

// Scenario 3: topological sort, acyclic.
func TestTopologicalSortAcyclic(t *testing.T) {
	m := &Module{Assignments: []Assignment{
		&TypeAssignment{TypeName: "A", TypeDecl: seq(comp("x", &DefinedType{TypeName_: "B"}))},
		&TypeAssignment{TypeName: "B", TypeDecl: simple("INTEGER")},
		&TypeAssignment{TypeName: "C", TypeDecl: seq(comp("y", &DefinedType{TypeName_: "A"}))},
	}}

	order, err := TopologicalSort(m.Assignments)
	require.NoError(t, err)

	index := make(map[string]int, len(order))
	for i, a := range order {
		index[a.ReferenceName()] = i
	}
	require.Less(t, index["B"], index["A"])
	require.Less(t, index["A"], index["C"])
}

// Scenario 4: topological sort, cycle detection.
func TestTopologicalSortCycle(t *testing.T) {
	m := &Module{Assignments: []Assignment{
		&TypeAssignment{TypeName: "A", TypeDecl: seq(comp("x", &DefinedType{TypeName_: "B"}))},
		&TypeAssignment{TypeName: "B", TypeDecl: seq(comp("y", &DefinedType{TypeName_: "A"}))},
	}}

	_, err := TopologicalSort(m.Assignments)
	require.Error(t, err)
	require.ErrorIs(t, err, semaerr.ErrCyclicReferences)
}

// Scenario 5: dependency sort, cycle bundling.
func TestDependencySortBundlesCycle(t *testing.T) {
	m := &Module{Assignments: []Assignment{
		&TypeAssignment{TypeName: "A", TypeDecl: seq(comp("x", &DefinedType{TypeName_: "B"}))},
		&TypeAssignment{TypeName: "B", TypeDecl: seq(comp("y", &DefinedType{TypeName_: "A"}))},
	}}

	components := DependencySort(m.Assignments)
	require.Len(t, components, 1)
	names := map[string]bool{}
	for _, a := range components[0] {
		names[a.ReferenceName()] = true
	}
	require.Equal(t, map[string]bool{"A": true, "B": true}, names)
}

// Scenario 6: tag implicitness, CHOICE override.
func TestResolveTagImplicitnessChoiceOverride(t *testing.T) {
	implicitModule := &Module{TagDefault: Implicit}

	choiceTag := &TaggedType{Implicitness: Unspecified, TypeDecl: choice(comp("a", simple("INTEGER")))}
	require.Equal(t, Explicit, ResolveTagImplicitness(choiceTag, implicitModule))

	intTag := &TaggedType{Implicitness: Unspecified, TypeDecl: simple("INTEGER")}
	require.Equal(t, Implicit, ResolveTagImplicitness(intTag, implicitModule))
}

// Scenario 7: selection type resolution.
func TestResolveSelectionType(t *testing.T) {
	m := &Module{Name: "M", Assignments: []Assignment{
		&TypeAssignment{TypeName: "C", TypeDecl: choice(comp("a", simple("INTEGER")), comp("b", simple("BOOLEAN")))},
	}}
	modules := map[string]*Module{"M": m}

	found, err := ResolveSelectionType(&SelectionType{SelectionID: "a", TypeDecl: &DefinedType{TypeName_: "C"}}, m, modules, false)
	require.NoError(t, err)
	require.Equal(t, "INTEGER", found.(*SimpleType).Name)

	missing, err := ResolveSelectionType(&SelectionType{SelectionID: "c", TypeDecl: &DefinedType{TypeName_: "C"}}, m, modules, false)
	require.NoError(t, err)
	require.Nil(t, missing)
}

// Scenario 8: named-value auto-numbering.
func TestNamedValueAutoNumbering(t *testing.T) {
	bc := NewBuildContext(0)
	toks := []*token.AnnotatedToken{
		token.New(token.NamedValue, "red", nil),
		token.New(token.NamedValue, "green", nil),
		token.New(token.NamedValue, "blue", int64(5)),
		token.New(token.NamedValue, "yellow", nil),
	}
	values, err := bc.namedValuesFrom(toks)
	require.NoError(t, err)

	got := make([]int64, len(values))
	for i, v := range values {
		got[i] = v.Number
	}
	require.Equal(t, []int64{0, 1, 5, 6}, got)
}
