package sema

import (
	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// NamedType pairs an identifier with a type_decl: "foo INTEGER" inside
// a SEQUENCE, SET, or CHOICE. The identifier is auto-generated
// ("unnamedN") when the source omits it.
type NamedType struct {
	Identifier string
	TypeDecl   SemaNode
}

func (t *NamedType) Children() []SemaNode { return appendNode(nil, t.TypeDecl) }
func (t *NamedType) TypeName() string {
	if tn, ok := t.TypeDecl.(TypeNamer); ok {
		return tn.TypeName()
	}
	return ""
}
func (t *NamedType) String() string {
	return t.Identifier + " " + stringOf(t.TypeDecl)
}

// typeDeclHolder is implemented by node variants whose wrapped
// type_decl can be replaced in place, needed by
// ConstructedType.AutoTag to rewrite a component's TypeDecl into a
// TaggedType.
type typeDeclHolder interface {
	getTypeDecl() SemaNode
	setTypeDecl(SemaNode)
}

func (t *NamedType) getTypeDecl() SemaNode  { return t.TypeDecl }
func (t *NamedType) setTypeDecl(n SemaNode) { t.TypeDecl = n }

// newNamedType constructs a NamedType from a NamedType token:
// (identifier, type_decl), where identifier may be absent.
func (bc *BuildContext) newNamedType(tok *token.AnnotatedToken) (*NamedType, error) {
	if tok.Len() != 2 {
		return nil, &semaerr.MalformedInputError{TokenType: token.NamedType, Detail: "expected 2 elements"}
	}
	id := tok.OptStr(0)
	if id == "" {
		id = bc.counter.Next()
	}
	declTok, err := tok.Token(1)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.NamedType, Detail: "type_decl: " + err.Error()}
	}
	decl, err := bc.Create(declTok)
	if err != nil {
		return nil, err
	}
	return &NamedType{Identifier: id, TypeDecl: decl}, nil
}

// ComponentType is one member of a SEQUENCE or SET: a NamedType,
// optionally marked OPTIONAL, DEFAULT, or "COMPONENTS OF" another
// type.
type ComponentType struct {
	NamedType    *NamedType // nil when ComponentsOf is set
	Optional     bool
	Default      SemaNode // non-nil when this component has a DEFAULT value
	ComponentsOf SemaNode // non-nil for "COMPONENTS OF type_decl"
}

func (c *ComponentType) Children() []SemaNode {
	var children []SemaNode
	if c.NamedType != nil {
		children = appendNode(children, c.NamedType)
	}
	children = appendNode(children, c.Default)
	children = appendNode(children, c.ComponentsOf)
	return children
}

func (c *ComponentType) getTypeDecl() SemaNode {
	if c.NamedType != nil {
		return c.NamedType.getTypeDecl()
	}
	return nil
}

func (c *ComponentType) setTypeDecl(n SemaNode) {
	if c.NamedType != nil {
		c.NamedType.setTypeDecl(n)
	}
}

func (c *ComponentType) String() string {
	switch {
	case c.ComponentsOf != nil:
		return "COMPONENTS OF " + stringOf(c.ComponentsOf)
	case c.Default != nil:
		return stringOf(c.NamedType) + " DEFAULT " + stringOf(c.Default)
	case c.Optional:
		return stringOf(c.NamedType) + " OPTIONAL"
	default:
		return stringOf(c.NamedType)
	}
}

// newComponentType constructs a ComponentType from a ComponentType
// token. The plain shape wraps a single NamedType token directly; the
// crack shapes (ComponentTypeOptional, ComponentTypeDefault,
// ComponentTypeComponentsOf) are distinguished by the first element's
// Ty.
func (bc *BuildContext) newComponentType(tok *token.AnnotatedToken) (*ComponentType, error) {
	inner, err := tok.Token(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ComponentType, Detail: err.Error()}
	}

	switch inner.Ty {
	case token.ComponentTypeOptional:
		nt, err := bc.namedTypeFrom(inner)
		if err != nil {
			return nil, err
		}
		return &ComponentType{NamedType: nt, Optional: true}, nil

	case token.ComponentTypeDefault:
		if inner.Len() != 2 {
			return nil, &semaerr.MalformedInputError{TokenType: token.ComponentTypeDefault, Detail: "expected 2 elements"}
		}
		namedTok, err := inner.Token(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.ComponentTypeDefault, Detail: "named_type: " + err.Error()}
		}
		nt, err := bc.newNamedType(namedTok)
		if err != nil {
			return nil, err
		}
		value, err := bc.CreateRequiredElement(token.ComponentTypeDefault, inner.At(1))
		if err != nil {
			return nil, err
		}
		return &ComponentType{NamedType: nt, Default: value}, nil

	case token.ComponentTypeComponentsOf:
		typeTok, err := inner.Token(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.ComponentTypeComponentsOf, Detail: err.Error()}
		}
		decl, err := bc.Create(typeTok)
		if err != nil {
			return nil, err
		}
		return &ComponentType{ComponentsOf: decl}, nil

	default:
		nt, err := bc.namedTypeFrom(inner)
		if err != nil {
			return nil, err
		}
		return &ComponentType{NamedType: nt}, nil
	}
}

// namedTypeFrom builds a NamedType from tok, tolerating both a bare
// NamedType token and a wrapper token whose first element is the
// NamedType token.
func (bc *BuildContext) namedTypeFrom(tok *token.AnnotatedToken) (*NamedType, error) {
	if tok.Ty == token.NamedType {
		return bc.newNamedType(tok)
	}
	inner, err := tok.Token(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ComponentType, Detail: err.Error()}
	}
	return bc.newNamedType(inner)
}
