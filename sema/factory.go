package sema

import (
	"fmt"
	"log/slog"

	"github.com/goasn1/semamodel/internal/logging"
	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// BuildContext holds the mutable state a single model build shares:
// the unnamed-identifier counter and a logger. Giving each build its
// own BuildContext (NewBuildContext) is how a caller opts into the
// per-build-context counter discipline instead of the process-wide
// default (see UnnamedCounter).
type BuildContext struct {
	counter *UnnamedCounter
	log     logging.Logger
}

// NewBuildContext returns a BuildContext with its own counter, seeded
// at seed, and a nil-safe no-op logger.
func NewBuildContext(seed uint64) *BuildContext {
	return &BuildContext{counter: NewUnnamedCounter(seed)}
}

// defaultBuildContext backs the package-level Create/CreateOpt
// convenience functions, sharing the process-wide defaultCounter.
var defaultBuildContext = &BuildContext{counter: defaultCounter} //nolint:gochecknoglobals

// WithLogger returns a copy of bc logging through l.
func (bc *BuildContext) WithLogger(l logging.Logger) *BuildContext {
	clone := *bc
	clone.log = l
	return &clone
}

// Create builds a SemaNode from tok, dispatching on tok.Ty. An
// unrecognized Ty is a MalformedInputError.
//
// The Type token is transparent: it wraps exactly one further token
// and dispatch continues on that token's own Ty, so callers never see
// a node for the wrapper itself.
func (bc *BuildContext) Create(tok *token.AnnotatedToken) (SemaNode, error) {
	if tok == nil {
		return nil, &semaerr.MalformedInputError{Detail: "nil token"}
	}

	bc.log.Trace("sema.Create", slog.String("ty", tok.Ty))

	switch tok.Ty {
	case token.Type:
		inner, err := tok.Token(0)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.Type, Detail: err.Error()}
		}
		return bc.Create(inner)

	case token.ModuleDefinition:
		return bc.newModule(tok)
	case token.TypeAssignment:
		return bc.newTypeAssignment(tok)
	case token.ValueAssignment:
		return bc.newValueAssignment(tok)
	case token.ComponentType:
		return bc.newComponentType(tok)
	case token.NamedType:
		return bc.newNamedType(tok)
	case token.ValueListType:
		return bc.newValueListType(tok)
	case token.BitStringType:
		return bc.newBitStringType(tok)
	case token.NamedValue:
		values, err := bc.namedValuesFrom([]*token.AnnotatedToken{tok})
		if err != nil {
			return nil, err
		}
		return values[0], nil
	case token.SimpleType:
		return bc.newSimpleType(tok)
	case token.DefinedType:
		return bc.newDefinedType(tok)
	case token.SelectionType:
		return bc.newSelectionType(tok)
	case token.ReferencedValue:
		return bc.newReferencedValue(tok)
	case token.TaggedType:
		return bc.newTaggedType(tok)
	case token.SequenceType:
		return bc.newSequenceType(tok)
	case token.ChoiceType:
		return bc.newChoiceType(tok)
	case token.SetType:
		return bc.newSetType(tok)
	case token.SequenceOfType:
		return bc.newSequenceOfType(tok)
	case token.SetOfType:
		return bc.newSetOfType(tok)
	case token.ExtensionMarker:
		return bc.newExtensionMarker(tok)
	case token.SingleValueConstraint:
		return bc.newSingleValueConstraint(tok)
	case token.SizeConstraint:
		return bc.newSizeConstraint(tok)
	case token.ValueRangeConstraint:
		return bc.newValueRangeConstraint(tok)
	case token.ObjectIdentifierValue:
		return bc.newObjectIdentifierValue(tok)
	case token.NameForm:
		return bc.newNameForm(tok)
	case token.NumberForm:
		return bc.newNumberForm(tok)
	case token.NameAndNumberForm:
		return bc.newNameAndNumberForm(tok)
	case token.BinaryStringValue:
		return bc.newBinaryStringValue(tok)
	case token.HexStringValue:
		return bc.newHexStringValue(tok)

	default:
		return nil, &semaerr.MalformedInputError{TokenType: tok.Ty, Detail: "unrecognized token type"}
	}
}

// CreateOpt is Create, but returns (nil, nil) for a nil token instead
// of erroring — used for optional positions such as a SimpleType's
// absent constraint.
func (bc *BuildContext) CreateOpt(tok *token.AnnotatedToken) (SemaNode, error) {
	if tok == nil {
		return nil, nil
	}
	return bc.Create(tok)
}

// CreateOptElement is CreateOpt, but accepts a raw token element (as
// returned by AnnotatedToken.At) rather than requiring the caller to
// have already asserted it is a token. A nil element returns (nil,
// nil); a *token.AnnotatedToken dispatches through Create as usual; a
// bare string or int64 leaf passes through unchanged as a
// *PrimitiveValue rather than erroring. Used for positions that may
// hold either a nested construction (a DefinedType, a ReferencedValue)
// or a literal value written directly in the source, and where a nil
// element is meaningfully absent rather than malformed — see
// CreateRequiredElement for the mandatory-but-literal-capable case.
func (bc *BuildContext) CreateOptElement(element any) (SemaNode, error) {
	switch v := element.(type) {
	case nil:
		return nil, nil
	case *token.AnnotatedToken:
		if v == nil {
			return nil, nil
		}
		return bc.Create(v)
	case string:
		return &PrimitiveValue{Value: v}, nil
	case int64:
		return &PrimitiveValue{Value: v}, nil
	case int:
		return &PrimitiveValue{Value: int64(v)}, nil
	default:
		return nil, &semaerr.MalformedInputError{Detail: fmt.Sprintf("unexpected element type %T", element)}
	}
}

// CreateRequiredElement is CreateOptElement, but treats a nil element
// as a MalformedInputError instead of a silent (nil, nil) — used for
// positions that may be a nested construction or a literal, but are
// never themselves optional: a ValueAssignment's value_decl, a
// ComponentType's DEFAULT value, and a SingleValueConstraint's value.
func (bc *BuildContext) CreateRequiredElement(tokenType string, element any) (SemaNode, error) {
	n, err := bc.CreateOptElement(element)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &semaerr.MalformedInputError{TokenType: tokenType, Detail: "missing required value"}
	}
	return n, nil
}

// Create builds a SemaNode from tok using the package-wide default
// build context (and its process-wide unnamed-identifier counter).
func Create(tok *token.AnnotatedToken) (SemaNode, error) {
	return defaultBuildContext.Create(tok)
}

// CreateOpt is Create, tolerating a nil token.
func CreateOpt(tok *token.AnnotatedToken) (SemaNode, error) {
	return defaultBuildContext.CreateOpt(tok)
}
