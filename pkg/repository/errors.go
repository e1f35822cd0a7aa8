package repository

import "errors"

// Error kinds surfaced to the handler layer. Callers match with errors.Is;
// handlers translate them to 400, 404 and 409 responses.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)
