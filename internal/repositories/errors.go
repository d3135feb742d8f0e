package repositories

import "errors"

// Repository error taxonomy. Handlers map these onto HTTP status codes with
// errors.Is; repositories wrap them with context via fmt.Errorf.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("invalid credentials")
)
