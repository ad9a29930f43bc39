// Package sema implements the semantic node model for ASN.1 module
// definitions: a typed tree built from parser tokens (package token),
// with cross-module resolution and dependency-ordering operations
// layered on top.
//
// The model is nominally a tree, but DefinedType, ReferencedValue, and
// SelectionType name other assignments by string rather than holding
// owning pointers to them — a logical cycle in the dependency graph
// that never implies aliased ownership.
package sema

// SemaNode is the common interface implemented by every node variant.
type SemaNode interface {
	// Children returns the immediate semantic subnodes this node owns,
	// including those held in ordered sequences — one level of
	// flattening, not recursive. Never includes nil entries.
	Children() []SemaNode
}

// ReferenceNamer is implemented by node variants that act as either a
// definition or a use-site: assignments, defined types, referenced
// values, selection types, and OID name forms.
type ReferenceNamer interface {
	ReferenceName() string
}

// TypeNamer is implemented by every node variant that can stand in
// type-decl position, exposing the built-in or referenced type name.
// TaggedType and SelectionType forward to their wrapped type.
type TypeNamer interface {
	TypeName() string
}

// Descendants returns the transitive closure of n.Children(), in
// pre-order.
func Descendants(n SemaNode) []SemaNode {
	var out []SemaNode
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		out = append(out, c)
		out = append(out, Descendants(c)...)
	}
	return out
}

// appendNode appends n to children if n is non-nil. Every variant's
// optional SemaNode-typed field is kept as a nil interface (never a
// typed nil pointer) when absent, so a plain nil check is sufficient
// here — see the constructors in factory.go.
func appendNode(children []SemaNode, n SemaNode) []SemaNode {
	if n == nil {
		return children
	}
	return append(children, n)
}
