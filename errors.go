package semamodel

import "github.com/goasn1/semamodel/semaerr"

// Error types and sentinels, re-exported from semaerr so callers never
// need to import that package directly.
type (
	MalformedInputError   = semaerr.MalformedInputError
	UnknownModuleError    = semaerr.UnknownModuleError
	UnknownReferenceError = semaerr.UnknownReferenceError
	InvalidArgumentError  = semaerr.InvalidArgumentError
	CyclicReferencesError = semaerr.CyclicReferencesError
)

var (
	ErrMalformedInput   = semaerr.ErrMalformedInput
	ErrUnknownModule    = semaerr.ErrUnknownModule
	ErrUnknownReference = semaerr.ErrUnknownReference
	ErrInvalidArgument  = semaerr.ErrInvalidArgument
	ErrCyclicReferences = semaerr.ErrCyclicReferences
)
