// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrTransactionNotFound indicates the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStepNotFound indicates a workflow step was not found by the given identifier.
	ErrStepNotFound = errors.New("workflow step not found")

	// ErrWorkflowAlreadyInitialized indicates steps already exist for the
	// (transaction, workflow type) pair. Callers should query progress instead
	// of retrying the same initialization.
	ErrWorkflowAlreadyInitialized = errors.New("workflow already initialized")

	// ErrBikeNotFound indicates a bike was not found by the given identifier.
	ErrBikeNotFound = errors.New("bike not found")

	// ErrCustomerNotFound indicates a customer was not found by the given identifier.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrItemNotFound indicates an item was not found by the given identifier.
	ErrItemNotFound = errors.New("item not found")

	// ErrRepairNotFound indicates a repair was not found by the given identifier.
	ErrRepairNotFound = errors.New("repair not found")

	// ErrUserNotFound indicates a user was not found by the given identifier.
	ErrUserNotFound = errors.New("user not found")
)

// StepError wraps workflow-step related errors with additional context.
type StepError struct {
	Op            string // Operation being performed (e.g., "InsertBatch", "Update")
	StepID        string // Step ID if applicable
	TransactionID string // Owning transaction ID if applicable
	Err           error  // Underlying error
}

func (e *StepError) Error() string {
	target := e.StepID
	if target == "" {
		target = "transaction " + e.TransactionID
	}

	return fmt.Sprintf("%s operation failed for step %s: %v", e.Op, target, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *StepError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewStepError creates a new step error with context.
func NewStepError(op, stepID string, err error) *StepError {
	return &StepError{
		Op:     op,
		StepID: stepID,
		Err:    err,
	}
}

// NewStepBatchError creates a new step error for batch operations on a transaction.
func NewStepBatchError(op, transactionID string, err error) *StepError {
	return &StepError{
		Op:            op,
		TransactionID: transactionID,
		Err:           err,
	}
}

// IsTransactionNotFound checks if an error indicates a missing transaction.
func IsTransactionNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsStepNotFound checks if an error indicates a missing workflow step.
func IsStepNotFound(err error) bool {
	return errors.Is(err, ErrStepNotFound)
}

// IsWorkflowAlreadyInitialized checks if an error indicates the idempotency
// guard on workflow initialization fired.
func IsWorkflowAlreadyInitialized(err error) bool {
	return errors.Is(err, ErrWorkflowAlreadyInitialized)
}

// IsNotFound checks if an error indicates any entity was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrStepNotFound) ||
		errors.Is(err, ErrBikeNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrRepairNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
