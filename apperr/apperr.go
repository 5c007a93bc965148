package apperr

import (
	"errors"
	"fmt"
)

// Error kinds shared by the service layer and the HTTP controllers. Handlers
// map them to status codes with errors.Is; everything else is a 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

func NotFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}

func InvalidArgument(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidArgument)
}

func Conflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}
