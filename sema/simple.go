package sema

import (
	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// SimpleType is a built-in ASN.1 type with no further structure:
// INTEGER, BOOLEAN, NULL, OCTET STRING, and the like, with an optional
// constraint.
type SimpleType struct {
	Name       string
	Constraint SemaNode // nil if unconstrained
}

func (t *SimpleType) Children() []SemaNode { return appendNode(nil, t.Constraint) }
func (t *SimpleType) TypeName() string     { return t.Name }
func (t *SimpleType) String() string {
	if t.Constraint == nil {
		return t.Name
	}
	return t.Name + " " + stringOf(t.Constraint)
}

// newSimpleType constructs a SimpleType from a SimpleType token:
// (type_name, constraint), where constraint may be absent.
func (bc *BuildContext) newSimpleType(tok *token.AnnotatedToken) (*SimpleType, error) {
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.SimpleType, Detail: err.Error()}
	}
	constraint, err := bc.CreateOpt(tok.OptToken(1))
	if err != nil {
		return nil, err
	}
	return &SimpleType{Name: name, Constraint: constraint}, nil
}

// DefinedType references another type_assignment by name, optionally
// qualified by the module it was imported from and optionally
// constrained. It never owns the referenced TypeAssignment — only
// names it.
type DefinedType struct {
	ModuleName string // "" if unqualified
	TypeName_  string
	Constraint SemaNode // nil if unconstrained
}

func (t *DefinedType) Children() []SemaNode  { return appendNode(nil, t.Constraint) }
func (t *DefinedType) TypeName() string      { return t.TypeName_ }
func (t *DefinedType) ReferenceName() string { return t.TypeName_ }
func (t *DefinedType) String() string {
	name := t.TypeName_
	if t.ModuleName != "" {
		name = t.ModuleName + "." + t.TypeName_
	}
	if t.Constraint == nil {
		return name
	}
	return name + " " + stringOf(t.Constraint)
}

// newDefinedType constructs a DefinedType from a DefinedType token:
// (module_reference, type_name, constraint), where module_reference
// and constraint may both be absent.
func (bc *BuildContext) newDefinedType(tok *token.AnnotatedToken) (*DefinedType, error) {
	if tok.Len() != 3 {
		return nil, &semaerr.MalformedInputError{TokenType: token.DefinedType, Detail: "expected 3 elements"}
	}

	var moduleName string
	if moduleTok := tok.OptToken(0); moduleTok != nil {
		name, err := moduleTok.Str(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.DefinedType, Detail: "module_reference: " + err.Error()}
		}
		moduleName = name
	}

	typeName, err := tok.Str(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.DefinedType, Detail: "type_name: " + err.Error()}
	}

	constraint, err := bc.CreateOpt(tok.OptToken(2))
	if err != nil {
		return nil, err
	}

	return &DefinedType{ModuleName: moduleName, TypeName_: typeName, Constraint: constraint}, nil
}

// ReferencedValue references another value_assignment by name,
// optionally qualified by the module it was imported from. Like
// DefinedType, it never owns the referenced ValueAssignment.
type ReferencedValue struct {
	ModuleReference string // "" if unqualified
	ValueName       string
}

func (v *ReferencedValue) Children() []SemaNode  { return nil }
func (v *ReferencedValue) ReferenceName() string { return v.ValueName }
func (v *ReferencedValue) String() string {
	if v.ModuleReference == "" {
		return v.ValueName
	}
	return v.ModuleReference + "." + v.ValueName
}

// newReferencedValue constructs a ReferencedValue from a
// ReferencedValue token. Two shapes are accepted: a bare name
// (len 1), or a module-qualified form whose first element is a
// ModuleReference token wrapping the module name, followed by the
// value name (len 2).
func (bc *BuildContext) newReferencedValue(tok *token.AnnotatedToken) (*ReferencedValue, error) {
	if tok.Len() > 1 {
		if moduleTok := tok.OptToken(0); moduleTok != nil && moduleTok.Ty == token.ModuleReference {
			moduleName, err := moduleTok.Str(0)
			if err != nil {
				return nil, &semaerr.MalformedInputError{TokenType: token.ReferencedValue, Detail: "module_reference: " + err.Error()}
			}
			name, err := tok.Str(1)
			if err != nil {
				return nil, &semaerr.MalformedInputError{TokenType: token.ReferencedValue, Detail: "name: " + err.Error()}
			}
			return &ReferencedValue{ModuleReference: moduleName, ValueName: name}, nil
		}
	}
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ReferencedValue, Detail: err.Error()}
	}
	return &ReferencedValue{ValueName: name}, nil
}
