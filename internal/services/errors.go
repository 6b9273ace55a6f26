package services

import (
	"errors"

	"github.com/sharktalent/backend/internal/authz"
)

// Failure classes. Concrete errors carry a caller-facing message and wrap
// one of these sentinels, so the HTTP boundary can match with errors.Is
// while the message stays descriptive.
var (
	ErrInvalid      = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrForbidden aliases the authz denial so one errors.Is check at the
	// boundary covers both service-level and authz-level denials.
	ErrForbidden = authz.ErrDenied
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

func invalid(msg string) error      { return &domainError{ErrInvalid, msg} }
func unauthorized(msg string) error { return &domainError{ErrUnauthorized, msg} }
func notFound(msg string) error     { return &domainError{ErrNotFound, msg} }
func conflict(msg string) error     { return &domainError{ErrConflict, msg} }
