package errs

import "errors"

// Error kinds shared by the usecase and handler layers.
// Usecase sentinels are marked with one of these so the transport can pick a status.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("service unavailable")
)
