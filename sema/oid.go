package sema

import (
	"strconv"
	"strings"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// RegisteredOIDNames maps the fixed, well-known top-level and
// second-level arc names X.680 reserves to their numeric values, used
// by NameForm.Number to resolve a bare NameForm arc ("iso",
// "standard", ...). It is exposed read-only; callers must not mutate
// it.
var RegisteredOIDNames = map[string]int64{
	"ccitt":           0,
	"iso":             1,
	"joint-iso-ccitt": 2,

	// ccitt
	"recommendation":  0,
	"question":        1,
	"administration":  2,
	"network-operator": 3,

	// iso
	"standard":                0,
	"registration-authority":  1,
	"member-body":             2,
	"identified-organization": 3,

	// joint-iso-ccitt
	"country":                 16,
	"registration-procedures": 17,
}

// NameForm is an OID arc written as a bare identifier: "iso".
type NameForm struct {
	Name string
}

func (f *NameForm) Children() []SemaNode  { return nil }
func (f *NameForm) ReferenceName() string { return f.Name }
func (f *NameForm) String() string        { return f.Name }

// Number resolves the arc's numeric value from RegisteredOIDNames, or
// false if Name is not a registered arc.
func (f *NameForm) Number() (int64, bool) {
	n, ok := RegisteredOIDNames[f.Name]
	return n, ok
}

func (bc *BuildContext) newNameForm(tok *token.AnnotatedToken) (*NameForm, error) {
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.NameForm, Detail: err.Error()}
	}
	return &NameForm{Name: name}, nil
}

// NumberForm is an OID arc written as a bare integer: "1".
type NumberForm struct {
	Number int64
}

func (f *NumberForm) Children() []SemaNode { return nil }
func (f *NumberForm) String() string       { return strconv.FormatInt(f.Number, 10) }

func (bc *BuildContext) newNumberForm(tok *token.AnnotatedToken) (*NumberForm, error) {
	n, err := tok.Int(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.NumberForm, Detail: err.Error()}
	}
	return &NumberForm{Number: n}, nil
}

// NameAndNumberForm is an OID arc written as "name(number)": "iso(1)".
type NameAndNumberForm struct {
	Name   string
	Number int64
}

func (f *NameAndNumberForm) Children() []SemaNode  { return nil }
func (f *NameAndNumberForm) ReferenceName() string { return f.Name }
func (f *NameAndNumberForm) String() string {
	return f.Name + "(" + strconv.FormatInt(f.Number, 10) + ")"
}

func (bc *BuildContext) newNameAndNumberForm(tok *token.AnnotatedToken) (*NameAndNumberForm, error) {
	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.NameAndNumberForm, Detail: "name: " + err.Error()}
	}
	n, err := tok.Int(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.NameAndNumberForm, Detail: "number: " + err.Error()}
	}
	return &NameAndNumberForm{Name: name, Number: n}, nil
}

// ObjectIdentifierValue is an ordered sequence of OID arcs: "{ iso
// standard 8571 }". Each arc is a NameForm, NumberForm, or
// NameAndNumberForm.
type ObjectIdentifierValue struct {
	Arcs []SemaNode
}

func (v *ObjectIdentifierValue) Children() []SemaNode {
	children := make([]SemaNode, 0, len(v.Arcs))
	for _, a := range v.Arcs {
		children = appendNode(children, a)
	}
	return children
}

func (v *ObjectIdentifierValue) String() string {
	parts := make([]string, len(v.Arcs))
	for i, a := range v.Arcs {
		parts[i] = stringOf(a)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (bc *BuildContext) newObjectIdentifierValue(tok *token.AnnotatedToken) (*ObjectIdentifierValue, error) {
	arcToks, err := tok.Tokens(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ObjectIdentifierValue, Detail: err.Error()}
	}
	v := &ObjectIdentifierValue{Arcs: make([]SemaNode, 0, len(arcToks))}
	for _, at := range arcToks {
		arc, err := bc.Create(at)
		if err != nil {
			return nil, err
		}
		v.Arcs = append(v.Arcs, arc)
	}
	return v, nil
}
