package sema

import (
	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// SelectionType selects the type of one alternative of a referenced
// CHOICE type: "bar < Baz" picks the type alternative named "bar"
// within the type assignment named by TypeDecl.
// ResolveSelectionType (resolver_selection.go) performs the actual
// lookup; construction only records the two names.
type SelectionType struct {
	SelectionID string
	TypeDecl    SemaNode // a *DefinedType naming the CHOICE
}

func (t *SelectionType) Children() []SemaNode { return appendNode(nil, t.TypeDecl) }

// TypeName forwards to the wrapped type_decl's own type_name — for
// "a < C" this is "C", not the alternative identifier "a". This keeps
// References() recording the dependency on C, the type actually being
// selected from, rather than a bogus edge named after the alternative.
func (t *SelectionType) TypeName() string {
	if tn, ok := t.TypeDecl.(TypeNamer); ok {
		return tn.TypeName()
	}
	return ""
}
func (t *SelectionType) ReferenceName() string { return t.TypeName() }
func (t *SelectionType) String() string {
	decl := ""
	if s, ok := t.TypeDecl.(interface{ String() string }); ok {
		decl = s.String()
	}
	return t.SelectionID + " < " + decl
}

func (bc *BuildContext) newSelectionType(tok *token.AnnotatedToken) (*SelectionType, error) {
	if tok.Len() != 2 {
		return nil, &semaerr.MalformedInputError{TokenType: token.SelectionType, Detail: "expected 2 elements"}
	}
	id, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.SelectionType, Detail: "selection_id: " + err.Error()}
	}
	declTok, err := tok.Token(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.SelectionType, Detail: "type_decl: " + err.Error()}
	}
	decl, err := bc.Create(declTok)
	if err != nil {
		return nil, err
	}
	return &SelectionType{SelectionID: id, TypeDecl: decl}, nil
}
