package sema

// ResolveTagImplicitness returns the effective IMPLICIT/EXPLICIT mode
// for t: its own Implicitness if set, otherwise a mode derived from
// home's TagDefault. This only applies to manually-written tags; tags
// introduced by AUTOMATIC TAGS processing are assigned their
// implicitness directly by ConstructedType.AutoTag and are never
// Unspecified.
//
// A tag with Unspecified implicitness wrapping a CHOICE directly
// resolves to EXPLICIT, regardless of the module default — a CHOICE
// has no tag of its own,
// so an IMPLICIT tag on it would discard the alternative
// discriminator.
func ResolveTagImplicitness(t *TaggedType, home *Module) Implicitness {
	if t.Implicitness != Unspecified {
		return t.Implicitness
	}
	if ct, ok := t.TypeDecl.(*ConstructedType); ok && ct.Kind == ChoiceKind {
		return Explicit
	}
	if home.TagDefault == Explicit {
		return Explicit
	}
	return Implicit
}

// AutoTagModule runs ConstructedType.AutoTag over every constructed
// type reachable from m's assignments. Callers invoke this once per
// module whose TagDefault is Automatic; AutoTag's own idempotence
// makes re-running it on an already-processed module a no-op.
func AutoTagModule(m *Module) {
	for _, a := range m.Assignments {
		autoTagNode(a)
	}
}

func autoTagNode(n SemaNode) {
	if ct, ok := n.(*ConstructedType); ok {
		ct.AutoTag()
	}
	for _, c := range n.Children() {
		autoTagNode(c)
	}
}
