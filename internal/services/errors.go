package services

import (
	"errors"
	"fmt"

	"rentalstore/internal/repositories"
	"rentalstore/internal/validation"

	"github.com/google/uuid"
)

// Errors returned by the services. Handlers translate them into HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrOutOfStock         = errors.New("movie not in stock")
	ErrAlreadyProcessed   = errors.New("rental already processed")
	ErrUnauthenticated    = errors.New("access denied, no valid token provided")
	ErrForbidden          = errors.New("access denied, admin privileges required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTransient          = errors.New("transient storage failure")
)

// ValidationError carries the message of the first violated constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// validationFailed returns a ValidationError for the first failing field of s, or nil.
func validationFailed(v *validation.Validator, s interface{}) error {
	if msg := v.Struct(s); msg != "" {
		return &ValidationError{Message: msg}
	}
	return nil
}

// isValidID reports whether id is a well-formed record identifier.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// notFound maps a repository miss onto ErrNotFound and leaves other errors alone.
func notFound(err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// transient marks a storage failure inside a workflow.
func transient(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
}
