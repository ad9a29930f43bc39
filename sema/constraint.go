package sema

import (
	"fmt"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// SingleValueConstraint restricts a type to one value: "(5)".
type SingleValueConstraint struct {
	Value SemaNode
}

func (c *SingleValueConstraint) Children() []SemaNode { return appendNode(nil, c.Value) }
func (c *SingleValueConstraint) String() string {
	return fmt.Sprintf("(%s)", stringOf(c.Value))
}

// ValueRangeConstraint restricts a type to an inclusive range:
// "(0..255)". Min or Max may be nil when the bound is open ("MIN" or
// "MAX").
type ValueRangeConstraint struct {
	Min SemaNode
	Max SemaNode
}

func (c *ValueRangeConstraint) Children() []SemaNode {
	children := appendNode(nil, c.Min)
	return appendNode(children, c.Max)
}
func (c *ValueRangeConstraint) String() string {
	return fmt.Sprintf("(%s..%s)", optStringOf(c.Min, "MIN"), optStringOf(c.Max, "MAX"))
}

// SizeConstraint restricts a collection or string type's length:
// "(SIZE(1..10))".
type SizeConstraint struct {
	Size SemaNode // a ValueRangeConstraint or SingleValueConstraint
}

func (c *SizeConstraint) Children() []SemaNode { return appendNode(nil, c.Size) }
func (c *SizeConstraint) String() string {
	return fmt.Sprintf("(SIZE%s)", stringOf(c.Size))
}

func stringOf(n SemaNode) string {
	if s, ok := n.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

func optStringOf(n SemaNode, dflt string) string {
	if n == nil {
		return dflt
	}
	return stringOf(n)
}

func (bc *BuildContext) newSingleValueConstraint(tok *token.AnnotatedToken) (*SingleValueConstraint, error) {
	value, err := bc.CreateRequiredElement(token.SingleValueConstraint, tok.At(0))
	if err != nil {
		return nil, err
	}
	return &SingleValueConstraint{Value: value}, nil
}

func (bc *BuildContext) newValueRangeConstraint(tok *token.AnnotatedToken) (*ValueRangeConstraint, error) {
	if tok.Len() != 2 {
		return nil, &semaerr.MalformedInputError{TokenType: token.ValueRangeConstraint, Detail: "expected 2 elements"}
	}
	min, err := bc.CreateOptElement(tok.At(0))
	if err != nil {
		return nil, err
	}
	max, err := bc.CreateOptElement(tok.At(1))
	if err != nil {
		return nil, err
	}
	return &ValueRangeConstraint{Min: min, Max: max}, nil
}

func (bc *BuildContext) newSizeConstraint(tok *token.AnnotatedToken) (*SizeConstraint, error) {
	sizeTok, err := tok.Token(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.SizeConstraint, Detail: err.Error()}
	}
	size, err := bc.Create(sizeTok)
	if err != nil {
		return nil, err
	}
	return &SizeConstraint{Size: size}, nil
}
