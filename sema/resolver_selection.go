package sema

import (
	"fmt"

	"github.com/goasn1/semamodel/semaerr"
)

// ResolveSelectionType resolves a SelectionType to the type of the
// alternative it names: it follows sel.TypeDecl to the referenced
// CHOICE and returns the TypeDecl of the component whose identifier
// matches sel.SelectionID.
//
// node must be a *SelectionType; any other concrete type is an
// InvalidArgumentError, since this operation (unlike ResolveTypeDecl)
// has no meaning for other node variants.
func ResolveSelectionType(node SemaNode, home *Module, modules map[string]*Module, strict bool) (SemaNode, error) {
	sel, ok := node.(*SelectionType)
	if !ok {
		return nil, &semaerr.InvalidArgumentError{
			Func:     "ResolveSelectionType",
			Expected: "*sema.SelectionType",
			Got:      fmt.Sprintf("%T", node),
		}
	}

	choiceDecl, err := ResolveTypeDecl(sel.TypeDecl, home, modules, strict)
	if err != nil {
		return nil, err
	}

	choice, ok := choiceDecl.(*ConstructedType)
	if !ok {
		return nil, &semaerr.UnknownReferenceError{
			ModuleName: home.Name,
			TypeName:   sel.SelectionID,
		}
	}

	for _, c := range choice.Components {
		ct, ok := c.(*ComponentType)
		if !ok || ct.NamedType == nil {
			continue
		}
		if ct.NamedType.Identifier == sel.SelectionID {
			return ct.NamedType.TypeDecl, nil
		}
	}

	// No alternative named sel.SelectionID: this is a nil result, not
	// an error — the caller asked a syntactically valid question that
	// simply has no answer.
	return nil, nil
}
