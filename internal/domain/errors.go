package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on the error code so callers can use errors.Is()
// against the sentinels below.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - the record does not exist or is not owned by the caller.
	// Wrong-owner access reports the same code so record existence never
	// leaks across accounts.
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrValidation - the request is missing required fields
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "validation failed",
	}

	// ErrUnauthorized - login failed or the bearer token is invalid
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "invalid credentials",
	}

	// ErrCaseResolved - a resolved case is terminal; it cannot move to
	// another status
	ErrCaseResolved = &DomainError{
		Code:    "CASE_RESOLVED",
		Message: "cannot change status of a resolved case",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a VALIDATION error with a field-level message
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}
