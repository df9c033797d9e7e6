package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error kinds returned by the engines. Handlers match with errors.Is and map
// to HTTP statuses via HTTPStatus.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrNoCapacity      = errors.New("no capacity")
)

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalidArgument(msg string) error { return &Error{Kind: ErrInvalidArgument, Message: msg} }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

func noCapacity(msg string) error { return &Error{Kind: ErrNoCapacity, Message: msg} }

// HTTPStatus maps an engine error to its HTTP status code. Unknown errors map
// to 500 and should be logged by the handler, not surfaced verbatim.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrNoCapacity):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// IsKnown reports whether err belongs to the engine error taxonomy.
func IsKnown(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNoCapacity)
}
