// Package semaerr defines the closed set of error kinds the semantic
// model builder can raise. All structural violations are fatal: there
// is no local recovery, and errors are surfaced to the caller
// immediately.
package semaerr

import (
	"errors"
	"fmt"

	"github.com/goasn1/semamodel/internal/diagfmt"
)

// Sentinel base errors. Use errors.Is against these when only the
// kind matters, not the details.
var (
	ErrMalformedInput    = errors.New("malformed input")
	ErrUnknownModule     = errors.New("unknown module")
	ErrUnknownReference  = errors.New("unknown reference")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrCyclicReferences  = errors.New("cyclic references")
)

// MalformedInputError reports a token with the wrong type, wrong
// element count, or an unrecognized Ty discriminator.
type MalformedInputError struct {
	TokenType string
	Detail    string
}

func (e *MalformedInputError) Error() string {
	if e.TokenType == "" {
		return fmt.Sprintf("malformed input: %s", e.Detail)
	}
	return fmt.Sprintf("malformed input: %s: %s", e.TokenType, e.Detail)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// UnknownModuleError reports a DefinedType (or GlobalModuleReference)
// naming a module that could not be found among the modules searched.
type UnknownModuleError struct {
	ModuleName string
	Searched   []string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q (searched: %v)", e.ModuleName, e.Searched)
}

func (e *UnknownModuleError) Unwrap() error { return ErrUnknownModule }

// UnknownReferenceError reports a type name absent from the resolved
// module's user_types(). Suggestion, when non-empty, names the
// closest known type in that module (see internal/oidtrie).
type UnknownReferenceError struct {
	ModuleName string
	TypeName   string
	Suggestion string
}

func (e *UnknownReferenceError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown reference %q in module %q (did you mean %q?)", e.TypeName, e.ModuleName, e.Suggestion)
	}
	return fmt.Sprintf("unknown reference %q in module %q", e.TypeName, e.ModuleName)
}

func (e *UnknownReferenceError) Unwrap() error { return ErrUnknownReference }

// InvalidArgumentError reports a caller passing the wrong concrete
// node type to an operation that expects a specific one (currently
// only resolve_selection_type, which requires a *sema.SelectionType).
type InvalidArgumentError struct {
	Func     string
	Expected string
	Got      string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Func, e.Expected, e.Got)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// CyclicReferencesError reports that TopologicalSort found a cycle, or
// that ResolveTypeDecl in strict mode revisited a symbol. Residual
// holds the adjacency of the nodes that could not be ordered (for
// ResolveTypeDecl, the revisited "Module.Type" key pointing at
// itself): name -> its still-unresolved references.
type CyclicReferencesError struct {
	Residual map[string][]string
}

func (e *CyclicReferencesError) Error() string {
	return fmt.Sprintf("cyclic references, cannot topologically sort:\n%s", diagfmt.Graph(e.Residual))
}

func (e *CyclicReferencesError) Unwrap() error { return ErrCyclicReferences }
