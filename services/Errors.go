package services

import "errors"

// Error kinds shared across the service and store layers. Controllers map
// them to HTTP status codes; everything else stays request-scoped.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("not authorized")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)
