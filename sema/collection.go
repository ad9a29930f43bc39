package sema

import (
	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// CollectionKind distinguishes SEQUENCE OF from SET OF.
type CollectionKind int

const (
	SequenceOfKind CollectionKind = iota
	SetOfKind
)

func (k CollectionKind) String() string {
	if k == SetOfKind {
		return "SET OF"
	}
	return "SEQUENCE OF"
}

func (k CollectionKind) word() string {
	if k == SetOfKind {
		return "SET"
	}
	return "SEQUENCE"
}

// CollectionType is a SEQUENCE OF or SET OF: a single repeated
// component type, optionally size-constrained.
type CollectionType struct {
	Kind           CollectionKind
	SizeConstraint SemaNode // nil if unconstrained
	TypeDecl       SemaNode
}

func (t *CollectionType) Children() []SemaNode {
	children := appendNode(nil, t.SizeConstraint)
	return appendNode(children, t.TypeDecl)
}
func (t *CollectionType) TypeName() string { return t.Kind.String() }
func (t *CollectionType) String() string {
	if t.SizeConstraint == nil {
		return t.Kind.word() + " OF " + stringOf(t.TypeDecl)
	}
	return t.Kind.word() + " " + stringOf(t.SizeConstraint) + " OF " + stringOf(t.TypeDecl)
}

func (t *CollectionType) getTypeDecl() SemaNode  { return t.TypeDecl }
func (t *CollectionType) setTypeDecl(n SemaNode) { t.TypeDecl = n }

// newCollectionType constructs a CollectionType from a SequenceOfType
// or SetOfType token: (size_constraint, type_decl), where
// size_constraint may be absent.
func (bc *BuildContext) newCollectionType(kind CollectionKind, tokenType string, tok *token.AnnotatedToken) (*CollectionType, error) {
	if tok.Len() != 2 {
		return nil, &semaerr.MalformedInputError{TokenType: tokenType, Detail: "expected 2 elements"}
	}
	sizeConstraint, err := bc.CreateOpt(tok.OptToken(0))
	if err != nil {
		return nil, err
	}
	declTok, err := tok.Token(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: tokenType, Detail: "type_decl: " + err.Error()}
	}
	decl, err := bc.Create(declTok)
	if err != nil {
		return nil, err
	}
	return &CollectionType{Kind: kind, SizeConstraint: sizeConstraint, TypeDecl: decl}, nil
}

func (bc *BuildContext) newSequenceOfType(tok *token.AnnotatedToken) (*CollectionType, error) {
	return bc.newCollectionType(SequenceOfKind, token.SequenceOfType, tok)
}

func (bc *BuildContext) newSetOfType(tok *token.AnnotatedToken) (*CollectionType, error) {
	return bc.newCollectionType(SetOfKind, token.SetOfType, tok)
}
