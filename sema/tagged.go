package sema

import (
	"strconv"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// TaggedType wraps a type_decl with an explicit class/number tag:
// "[APPLICATION 3] IMPLICIT INTEGER". ClassName is "" for the default
// context-specific class. Implicitness may be Unspecified, meaning
// "defer to the enclosing module's TagDefault".
type TaggedType struct {
	ClassName    string
	ClassNumber  int64
	Implicitness Implicitness
	TypeDecl     SemaNode
}

func (t *TaggedType) Children() []SemaNode { return appendNode(nil, t.TypeDecl) }
func (t *TaggedType) TypeName() string {
	if tn, ok := t.TypeDecl.(TypeNamer); ok {
		return tn.TypeName()
	}
	return ""
}

func (t *TaggedType) getTypeDecl() SemaNode  { return t.TypeDecl }
func (t *TaggedType) setTypeDecl(n SemaNode) { t.TypeDecl = n }

func (t *TaggedType) String() string {
	tag := "[" + classPrefix(t.ClassName) + strconv.FormatInt(t.ClassNumber, 10) + "]"
	if t.Implicitness == Unspecified {
		return tag + " " + stringOf(t.TypeDecl)
	}
	return tag + " " + t.Implicitness.String() + " " + stringOf(t.TypeDecl)
}

func classPrefix(className string) string {
	if className == "" {
		return ""
	}
	return className + " "
}

// newTaggedType constructs a TaggedType from a TaggedType token. Two
// shapes are accepted, matching asn1ate/sema.py's constructors:
//
//	3 elements: (tag, implicitness, type_decl) — tag is itself a token
//	whose own Elements are TagClassNumber and, optionally, TagClass
//	sub-tokens (e.g. "[APPLICATION 3]" nests both; "[3]" nests only
//	TagClassNumber).
//
//	4 elements: (tag_class, tag_class_number, implicitness, type_decl)
//	— the class name and number already split into their own elements.
func (bc *BuildContext) newTaggedType(tok *token.AnnotatedToken) (*TaggedType, error) {
	var className string
	var classNumber int64
	var implicitnessIdx, typeDeclIdx int

	switch tok.Len() {
	case 3:
		tagTok, err := tok.Token(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag: " + err.Error()}
		}
		className, classNumber, err = classAndNumberFromTag(tagTok)
		if err != nil {
			return nil, err
		}
		implicitnessIdx, typeDeclIdx = 1, 2
	case 4:
		classTok, err := tok.Token(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag_class: " + err.Error()}
		}
		className, err = classTok.Str(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag_class name: " + err.Error()}
		}
		classNumberTok, err := tok.Token(1)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag_class_number: " + err.Error()}
		}
		classNumber, err = classNumberTok.Int(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "class_number: " + err.Error()}
		}
		implicitnessIdx, typeDeclIdx = 2, 3
	default:
		return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "expected 3 or 4 elements"}
	}

	implicitness, err := implicitnessFromString(tok.OptStr(implicitnessIdx))
	if err != nil {
		return nil, err
	}

	declTok, err := tok.Token(typeDeclIdx)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "type_decl: " + err.Error()}
	}
	decl, err := bc.Create(declTok)
	if err != nil {
		return nil, err
	}

	return &TaggedType{
		ClassName:    className,
		ClassNumber:  classNumber,
		Implicitness: implicitness,
		TypeDecl:     decl,
	}, nil
}

// classAndNumberFromTag unpacks a nested "tag" token's TagClassNumber
// and optional TagClass sub-elements, as produced by a 3-element
// TaggedType token.
func classAndNumberFromTag(tagTok *token.AnnotatedToken) (string, int64, error) {
	var className string
	var classNumber int64
	var haveNumber bool

	for _, el := range tagTok.Elements {
		sub, ok := el.(*token.AnnotatedToken)
		if !ok || sub == nil {
			return "", 0, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag element is not an annotated token"}
		}
		switch sub.Ty {
		case token.TagClassNumber:
			n, err := sub.Int(0)
			if err != nil {
				return "", 0, &semaerr.MalformedInputError{TokenType: token.TagClassNumber, Detail: err.Error()}
			}
			classNumber = n
			haveNumber = true
		case token.TagClass:
			name, err := sub.Str(0)
			if err != nil {
				return "", 0, &semaerr.MalformedInputError{TokenType: token.TagClass, Detail: err.Error()}
			}
			className = name
		default:
			return "", 0, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "unknown tag element: " + sub.Ty}
		}
	}
	if !haveNumber {
		return "", 0, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "tag has no TagClassNumber element"}
	}
	return className, classNumber, nil
}

func implicitnessFromString(s string) (Implicitness, error) {
	switch s {
	case "":
		return Unspecified, nil
	case "IMPLICIT":
		return Implicit, nil
	case "EXPLICIT":
		return Explicit, nil
	default:
		return Unspecified, &semaerr.MalformedInputError{TokenType: token.TaggedType, Detail: "unexpected implicitness: " + s}
	}
}
