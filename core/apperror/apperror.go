package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind identifies a class of failure.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

var (
	// ErrInvalidArgument is matched by every InvalidArgument error.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is matched by every NotFound error.
	ErrNotFound = errors.New("not found")
	// ErrConflict is matched by every Conflict error.
	ErrConflict = errors.New("conflict")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKind(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// InvalidArgument returns an error of kind InvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return newKind(ErrInvalidArgument, format, args...)
}

// NotFound returns an error of kind NotFound.
func NotFound(format string, args ...any) error {
	return newKind(ErrNotFound, format, args...)
}

// Conflict returns an error of kind Conflict.
func Conflict(format string, args ...any) error {
	return newKind(ErrConflict, format, args...)
}

// ConflictFrom wraps a storage error as a Conflict while keeping the cause reachable.
func ConflictFrom(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", newKind(ErrConflict, format, args...), cause)
}

// KindOf reports the kind of err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

// HTTPStatus maps err to the status code returned by the web layer.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
