package openapi

import "errors"

var (
	// ErrDecodeDocument is returned when the raw swagger JSON cannot be decoded.
	ErrDecodeDocument = errors.New("decode swagger document")

	// ErrDuplicatePath is returned when a document declares the same path key twice.
	ErrDuplicatePath = errors.New("duplicate path key")

	// ErrUnknownVariant is returned when a document variant name is not registered.
	ErrUnknownVariant = errors.New("unknown document variant")
)
