package sema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportsMergesSameModuleClauses(t *testing.T) {
	im := newImports()
	im.add(GlobalModuleReference{ModuleName: "Other"}, []string{"Foo"})
	im.add(GlobalModuleReference{ModuleName: "Other"}, []string{"Bar"})
	im.add(GlobalModuleReference{ModuleName: "Another"}, []string{"Baz"})

	entries := im.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "Other", entries[0].Module.ModuleName)
	require.Equal(t, []string{"Foo", "Bar"}, entries[0].Symbols)
}

func TestImportsStringSortedByModule(t *testing.T) {
	im := newImports()
	im.add(GlobalModuleReference{ModuleName: "Zeta"}, []string{"Z"})
	im.add(GlobalModuleReference{ModuleName: "Alpha"}, []string{"A"})

	rendered := im.String()
	alphaIdx := indexOf(rendered, "Alpha")
	zetaIdx := indexOf(rendered, "Zeta")
	require.Less(t, alphaIdx, zetaIdx)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestModuleUserTypesCachedAndConsistent(t *testing.T) {
	m := &Module{Assignments: []Assignment{
		&TypeAssignment{TypeName: "A", TypeDecl: simple("INTEGER")},
		&ValueAssignment{ValueName: "v", TypeDecl: simple("INTEGER"), ValueDecl: &ReferencedValue{ValueName: "w"}},
	}}

	types1 := m.UserTypes()
	require.Len(t, types1, 1)
	require.Contains(t, types1, "A")

	types2 := m.UserTypes()
	require.Equal(t, types1, types2)
}

func TestAssignmentReferences(t *testing.T) {
	a := &TypeAssignment{
		TypeName: "A",
		TypeDecl: seq(comp("x", &DefinedType{TypeName_: "B"}), comp("y", simple("INTEGER"))),
	}
	refs := References(a)
	require.Contains(t, refs, "B")
}
