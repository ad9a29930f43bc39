package sema

import (
	"strconv"
	"strings"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// NamedValue is one entry of a ValueListType or BitStringType:
// "foo(1)" or a bare "foo" whose Number is filled in by sequential
// auto-numbering at construction time.
type NamedValue struct {
	Identifier string
	Number     int64
}

func (v *NamedValue) Children() []SemaNode  { return nil }
func (v *NamedValue) ReferenceName() string { return v.Identifier }
func (v *NamedValue) String() string {
	return v.Identifier + "(" + strconv.FormatInt(v.Number, 10) + ")"
}

// ValueListType is an ENUMERATED-style list of named integer values:
// "ENUMERATED { a, b(5), c }". Values omitting an explicit number are
// assigned the next number after the previous entry, starting at 0.
type ValueListType struct {
	TypeName_  string
	Values     []*NamedValue
	Constraint SemaNode // nil if unconstrained
}

func (t *ValueListType) TypeName() string { return t.TypeName_ }

func (t *ValueListType) Children() []SemaNode {
	children := make([]SemaNode, 0, len(t.Values)+1)
	for _, v := range t.Values {
		children = appendNode(children, v)
	}
	return appendNode(children, t.Constraint)
}

func (t *ValueListType) String() string {
	namedValues, constraint := "", ""
	if len(t.Values) > 0 {
		parts := make([]string, len(t.Values))
		for i, v := range t.Values {
			parts[i] = v.String()
		}
		namedValues = " { " + strings.Join(parts, ", ") + " }"
	}
	if t.Constraint != nil {
		constraint = " " + stringOf(t.Constraint)
	}
	return t.TypeName_ + namedValues + constraint
}

// BitStringType is a BIT STRING with named bit positions: "BIT STRING
// { a(0), b(1) }". Numbering follows the same sequential rule as
// ValueListType.
type BitStringType struct {
	TypeName_  string
	Values     []*NamedValue
	Constraint SemaNode // nil if unconstrained
}

func (t *BitStringType) TypeName() string { return t.TypeName_ }

func (t *BitStringType) Children() []SemaNode {
	children := make([]SemaNode, 0, len(t.Values)+1)
	for _, v := range t.Values {
		children = appendNode(children, v)
	}
	return appendNode(children, t.Constraint)
}

func (t *BitStringType) String() string {
	namedBits, constraint := "", ""
	if len(t.Values) > 0 {
		parts := make([]string, len(t.Values))
		for i, v := range t.Values {
			parts[i] = v.String()
		}
		namedBits = " { " + strings.Join(parts, ", ") + " }"
	}
	if t.Constraint != nil {
		constraint = " " + stringOf(t.Constraint)
	}
	return t.TypeName_ + namedBits + constraint
}

// namedValuesFrom builds a sequentially auto-numbered []*NamedValue
// from a token list of NamedValue tokens: (identifier, number), where
// number may be absent.
func (bc *BuildContext) namedValuesFrom(toks []*token.AnnotatedToken) ([]*NamedValue, error) {
	values := make([]*NamedValue, 0, len(toks))
	next := int64(0)
	for _, vt := range toks {
		if vt.Len() != 2 {
			return nil, &semaerr.MalformedInputError{TokenType: token.NamedValue, Detail: "expected 2 elements"}
		}
		id, err := vt.Str(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.NamedValue, Detail: "identifier: " + err.Error()}
		}
		number := next
		if n, err := vt.Int(1); err == nil {
			number = n
		}
		values = append(values, &NamedValue{Identifier: id, Number: number})
		next = number + 1
	}
	return values, nil
}

// newValueListType constructs a ValueListType from a ValueListType
// token: (type_name, named_values, constraint), where constraint may
// be absent.
func (bc *BuildContext) newValueListType(tok *token.AnnotatedToken) (*ValueListType, error) {
	typeName, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueListType, Detail: "type_name: " + err.Error()}
	}
	toks, err := tok.Tokens(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueListType, Detail: "named_values: " + err.Error()}
	}
	values, err := bc.namedValuesFrom(toks)
	if err != nil {
		return nil, err
	}
	constraint, err := bc.CreateOpt(tok.OptToken(2))
	if err != nil {
		return nil, err
	}
	return &ValueListType{TypeName_: typeName, Values: values, Constraint: constraint}, nil
}

// newBitStringType constructs a BitStringType from a BitStringType
// token: (type_name, named_values, constraint), where constraint may
// be absent.
func (bc *BuildContext) newBitStringType(tok *token.AnnotatedToken) (*BitStringType, error) {
	typeName, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.BitStringType, Detail: "type_name: " + err.Error()}
	}
	toks, err := tok.Tokens(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.BitStringType, Detail: "named_values: " + err.Error()}
	}
	values, err := bc.namedValuesFrom(toks)
	if err != nil {
		return nil, err
	}
	constraint, err := bc.CreateOpt(tok.OptToken(2))
	if err != nil {
		return nil, err
	}
	return &BitStringType{TypeName_: typeName, Values: values, Constraint: constraint}, nil
}
