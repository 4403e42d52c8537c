package npy

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrDataTooLarge       = errors.New("array exceeds maximum size")
	ErrMalformedHeader    = errors.New("malformed header")
	ErrUnsupportedDType   = errors.New("unsupported dtype")
	ErrFortranOrder       = errors.New("fortran-ordered arrays are not supported")
)
