package service

import (
	"errors"
	"fmt"

	"github.com/pizza-nz/backoffice-service/internal/validation"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedItems matches every *MalformedItemsError.
	ErrMalformedItems = errors.New("malformed order items")

	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a missing or invalid input field. It is raised
// before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// validate runs the struct tags on req and reports the first failure.
func validate(req any) error {
	err := validation.Struct(req)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) && len(errs) > 0 {
		return &ValidationError{Field: errs[0].Field, Message: errs[0].Message}
	}
	return fmt.Errorf("failed to validate request: %w", err)
}

// MalformedItemsError reports order item text that does not follow the
// "name: quantity, name: quantity" format.
type MalformedItemsError struct {
	Segment string
	Reason  string
}

func (e *MalformedItemsError) Error() string {
	return fmt.Sprintf("malformed item %q: %s", e.Segment, e.Reason)
}

func (e *MalformedItemsError) Is(target error) bool {
	return target == ErrMalformedItems
}
