// Package services provides the business operations exposed by the API layer.
package services

import (
	"errors"
	"fmt"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	// Validation errors (400 Bad Request).
	ErrInvalidRequest       = errors.New("invalid request")
	ErrEntityNil            = errors.New("entity cannot be nil")
	ErrNameRequired         = errors.New("name is required")
	ErrMakeModelRequired    = errors.New("bike make and model are required")
	ErrCustomerNameRequired = errors.New("customer first and last name are required")
	ErrEmailRequired        = errors.New("customer email is required")
	ErrUsernameRequired     = errors.New("username is required")
	ErrInvalidTransaction   = errors.New("invalid transaction type")

	// Business logic conflicts (409 Conflict).
	ErrTransactionHasSteps = errors.New("transaction still has workflow steps")
)

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Code    string // Error code for API responses
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsValidationError checks if an error is a validation error that should return HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrEntityNil) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrMakeModelRequired) ||
		errors.Is(err, ErrCustomerNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrInvalidTransaction)
}

// IsConflictError checks if an error is a business logic conflict that should return HTTP 409.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrTransactionHasSteps)
}

// NewValidationError creates a new validation error with context.
func NewValidationError(op, code, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
