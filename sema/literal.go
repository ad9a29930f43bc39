package sema

import (
	"fmt"
	"strconv"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// PrimitiveValue wraps a bare leaf value — a string or an int64 —
// that appears directly in a position expecting a SemaNode instead of
// being wrapped in one of the typed value forms (ReferencedValue,
// NumberForm, and the like). CreateOptElement produces these to let a
// raw leaf "pass through unchanged" while still satisfying SemaNode.
type PrimitiveValue struct {
	Value any // string or int64
}

func (v *PrimitiveValue) Children() []SemaNode { return nil }
func (v *PrimitiveValue) String() string {
	switch x := v.Value.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

// BinaryStringValue is a literal bit string written "'1010'B".
type BinaryStringValue struct {
	Bits string
}

func (v *BinaryStringValue) Children() []SemaNode { return nil }
func (v *BinaryStringValue) String() string       { return "'" + v.Bits + "'B" }

func (bc *BuildContext) newBinaryStringValue(tok *token.AnnotatedToken) (*BinaryStringValue, error) {
	bits, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.BinaryStringValue, Detail: err.Error()}
	}
	return &BinaryStringValue{Bits: bits}, nil
}

// HexStringValue is a literal octet/bit string written "'0F'H".
type HexStringValue struct {
	Hex string
}

func (v *HexStringValue) Children() []SemaNode { return nil }
func (v *HexStringValue) String() string       { return "'" + v.Hex + "'H" }

func (bc *BuildContext) newHexStringValue(tok *token.AnnotatedToken) (*HexStringValue, error) {
	hex, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.HexStringValue, Detail: err.Error()}
	}
	return &HexStringValue{Hex: hex}, nil
}

// ExtensionMarker is the "..." marker in an extensible SEQUENCE,
// SET, CHOICE, or ValueListType.
type ExtensionMarker struct{}

func (m *ExtensionMarker) Children() []SemaNode { return nil }
func (m *ExtensionMarker) String() string       { return "..." }

func (bc *BuildContext) newExtensionMarker(_ *token.AnnotatedToken) (*ExtensionMarker, error) {
	return &ExtensionMarker{}, nil
}
