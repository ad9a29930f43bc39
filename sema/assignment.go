package sema

import (
	"fmt"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// Assignment is implemented by TypeAssignment and ValueAssignment: a
// top-level module member that binds a name to a type or value
// declaration.
type Assignment interface {
	SemaNode
	ReferenceNamer
	String() string
}

// References returns the ReferenceName of every descendant of a that
// implements ReferenceNamer (DefinedType, ReferencedValue,
// SelectionType, OID name forms, and the like) — the edges this
// assignment contributes to the module's dependency graph.
func References(a Assignment) []string {
	var refs []string
	for _, d := range Descendants(a) {
		if rn, ok := d.(ReferenceNamer); ok {
			refs = append(refs, rn.ReferenceName())
		}
	}
	return refs
}

// TypeAssignment binds a type_name to a type_decl: "Foo ::= INTEGER".
type TypeAssignment struct {
	TypeName string
	TypeDecl SemaNode
}

func (a *TypeAssignment) Children() []SemaNode  { return appendNode(nil, a.TypeDecl) }
func (a *TypeAssignment) ReferenceName() string { return a.TypeName }
func (a *TypeAssignment) String() string {
	decl := ""
	if tn, ok := a.TypeDecl.(fmt.Stringer); ok {
		decl = tn.String()
	}
	return fmt.Sprintf("%s ::= %s", a.TypeName, decl)
}

// ValueAssignment binds a value_name of a given type to a value_decl:
// "foo INTEGER ::= 1".
type ValueAssignment struct {
	ValueName string
	TypeDecl  SemaNode
	ValueDecl SemaNode
}

func (a *ValueAssignment) Children() []SemaNode {
	children := appendNode(nil, a.TypeDecl)
	return appendNode(children, a.ValueDecl)
}
func (a *ValueAssignment) ReferenceName() string { return a.ValueName }
func (a *ValueAssignment) String() string {
	typeDecl, valueDecl := "", ""
	if tn, ok := a.TypeDecl.(fmt.Stringer); ok {
		typeDecl = tn.String()
	}
	if vn, ok := a.ValueDecl.(fmt.Stringer); ok {
		valueDecl = vn.String()
	}
	return fmt.Sprintf("%s %s ::= %s", a.ValueName, typeDecl, valueDecl)
}

// newTypeAssignment constructs a TypeAssignment from a TypeAssignment
// token: (type_name, type_decl).
func (bc *BuildContext) newTypeAssignment(tok *token.AnnotatedToken) (*TypeAssignment, error) {
	if tok.Len() != 2 {
		return nil, &semaerr.MalformedInputError{TokenType: token.TypeAssignment, Detail: "expected 2 elements"}
	}
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.TypeAssignment, Detail: "type_name: " + err.Error()}
	}
	declTok, err := tok.Token(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.TypeAssignment, Detail: "type_decl: " + err.Error()}
	}
	decl, err := bc.Create(declTok)
	if err != nil {
		return nil, err
	}
	return &TypeAssignment{TypeName: name, TypeDecl: decl}, nil
}

// newValueAssignment constructs a ValueAssignment from a
// ValueAssignment token: (value_name, type_decl, value_decl).
func (bc *BuildContext) newValueAssignment(tok *token.AnnotatedToken) (*ValueAssignment, error) {
	if tok.Len() != 3 {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueAssignment, Detail: "expected 3 elements"}
	}
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueAssignment, Detail: "value_name: " + err.Error()}
	}
	typeTok, err := tok.Token(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueAssignment, Detail: "type_decl: " + err.Error()}
	}
	typeDecl, err := bc.Create(typeTok)
	if err != nil {
		return nil, err
	}
	valueDecl, err := bc.CreateRequiredElement(token.ValueAssignment, tok.At(2))
	if err != nil {
		return nil, err
	}
	return &ValueAssignment{ValueName: name, TypeDecl: typeDecl, ValueDecl: valueDecl}, nil
}
