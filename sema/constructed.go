package sema

import (
	"strings"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// ConstructedKind distinguishes the three constructed type forms,
// which share a component list but differ in whether AUTOMATIC
// tagging applies EXPLICIT or IMPLICIT tags.
type ConstructedKind int

const (
	SequenceKind ConstructedKind = iota
	SetKind
	ChoiceKind
)

func (k ConstructedKind) String() string {
	switch k {
	case SequenceKind:
		return "SEQUENCE"
	case SetKind:
		return "SET"
	case ChoiceKind:
		return "CHOICE"
	default:
		return ""
	}
}

// ConstructedType is a SEQUENCE, SET, or CHOICE: an ordered list of
// components, each a *ComponentType or *ExtensionMarker.
type ConstructedType struct {
	Kind       ConstructedKind
	Components []SemaNode

	autoTagged bool
}

func (t *ConstructedType) Children() []SemaNode {
	children := make([]SemaNode, 0, len(t.Components))
	for _, c := range t.Components {
		children = appendNode(children, c)
	}
	return children
}

func (t *ConstructedType) TypeName() string { return t.Kind.String() }

func (t *ConstructedType) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		parts[i] = stringOf(c)
	}
	return t.Kind.String() + " { " + strings.Join(parts, ", ") + " }"
}

// AutoTag assigns sequential context-specific tags to this type's
// components, per the enclosing module's AUTOMATIC TAGS default. It is
// a no-op, leaving every component untouched, if any component is
// already tagged: AUTOMATIC TAGS only applies when none of a
// constructed type's components carry an explicit tag of their own, so
// a single pre-tagged component vetoes automatic tagging for the whole
// type, not just itself. It is also idempotent: calling it more than
// once never re-tags an already-autotagged type.
//
// X.680 §31.2.7 would have automatic tagging skip only CHOICE and open
// type alternatives within a component's own type; this implementation
// instead tags CHOICE-kind constructed types themselves EXPLICIT
// unconditionally (every alternative gets its own explicit tag) and
// everything else IMPLICIT, matching the simplified rule the reference
// implementation (asn1ate) actually applies.
func (t *ConstructedType) AutoTag() {
	if t.autoTagged {
		return
	}
	t.autoTagged = true

	for _, c := range t.Components {
		holder, ok := c.(typeDeclHolder)
		if !ok {
			continue
		}
		if _, alreadyTagged := holder.getTypeDecl().(*TaggedType); alreadyTagged {
			return
		}
	}

	implicitness := Implicit
	if t.Kind == ChoiceKind {
		implicitness = Explicit
	}

	number := int64(0)
	for _, c := range t.Components {
		holder, ok := c.(typeDeclHolder)
		if !ok {
			continue
		}
		decl := holder.getTypeDecl()
		if decl == nil {
			continue
		}
		holder.setTypeDecl(&TaggedType{
			ClassNumber:  number,
			Implicitness: implicitness,
			TypeDecl:     decl,
		})
		number++
	}
}

func (bc *BuildContext) newConstructedType(kind ConstructedKind, tokenType string, tok *token.AnnotatedToken) (*ConstructedType, error) {
	compToks, err := tok.Tokens(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: tokenType, Detail: err.Error()}
	}
	t := &ConstructedType{Kind: kind, Components: make([]SemaNode, 0, len(compToks))}
	for _, ct := range compToks {
		node, err := bc.Create(ct)
		if err != nil {
			return nil, err
		}
		t.Components = append(t.Components, node)
	}
	return t, nil
}

func (bc *BuildContext) newSequenceType(tok *token.AnnotatedToken) (*ConstructedType, error) {
	return bc.newConstructedType(SequenceKind, token.SequenceType, tok)
}

func (bc *BuildContext) newSetType(tok *token.AnnotatedToken) (*ConstructedType, error) {
	return bc.newConstructedType(SetKind, token.SetType, tok)
}

func (bc *BuildContext) newChoiceType(tok *token.AnnotatedToken) (*ConstructedType, error) {
	return bc.newConstructedType(ChoiceKind, token.ChoiceType, tok)
}
