package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/google/uuid"
)

// Transaction manages sale and repair transactions, the aggregate the
// workflow engine attaches its steps to.
type Transaction struct {
	persistence persistence.Persistence
}

func NewTransaction(persistence persistence.Persistence) *Transaction {
	return &Transaction{persistence: persistence}
}

// HealthCheck checks the health of the persistence layer.
func (s *Transaction) HealthCheck(ctx context.Context) (string, bool) {
	if s.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := s.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

func (s *Transaction) FetchAll(ctx context.Context) ([]*models.Transaction, error) {
	return s.persistence.Transactions().GetAll(ctx)
}

func (s *Transaction) FetchByID(ctx context.Context, id string) (*models.Transaction, error) {
	return s.persistence.Transactions().GetByID(ctx, id)
}

func (s *Transaction) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	if transaction == nil {
		return nil, ErrEntityNil
	}

	if err := s.validateType(transaction.Type); err != nil {
		return nil, err
	}

	if err := s.validateRelations(ctx, transaction); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction ID: %w", err)
	}

	now := time.Now().UTC()
	transaction.ID = id.String()
	transaction.DateCreated = now
	transaction.UpdatedAt = now

	// Save assigns the sequential TransactionNum.
	err = s.persistence.Transactions().Save(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

func (s *Transaction) Update(ctx context.Context, id string, transaction *models.Transaction) (*models.Transaction, error) {
	if transaction == nil {
		return nil, ErrEntityNil
	}

	if err := s.validateType(transaction.Type); err != nil {
		return nil, err
	}

	existing, err := s.persistence.Transactions().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateRelations(ctx, transaction); err != nil {
		return nil, err
	}

	transaction.ID = id
	transaction.TransactionNum = existing.TransactionNum
	transaction.DateCreated = existing.DateCreated
	transaction.UpdatedAt = time.Now().UTC()

	err = s.persistence.Transactions().Save(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}

// Delete removes a transaction. Attached workflow steps go with it; the
// stores cascade the removal.
func (s *Transaction) Delete(ctx context.Context, id string) error {
	return s.persistence.Transactions().Delete(ctx, id)
}

func (s *Transaction) validateType(transactionType models.TransactionType) error {
	allowed := []models.TransactionType{
		models.TransactionTypeInpatient,
		models.TransactionTypeOutpatient,
		models.TransactionTypeRetrospec,
		models.TransactionTypeMerch,
	}

	if !slices.Contains(allowed, transactionType) {
		return NewValidationError(
			"validateType",
			"INVALID_TRANSACTION_TYPE",
			fmt.Sprintf("invalid transaction type '%s'", transactionType),
			ErrInvalidTransaction,
		)
	}

	return nil
}

// validateRelations confirms that referenced bike and customer rows exist so
// a transaction never points at nothing.
func (s *Transaction) validateRelations(ctx context.Context, transaction *models.Transaction) error {
	if transaction.BikeID != nil {
		if _, err := s.persistence.Bikes().GetByID(ctx, *transaction.BikeID); err != nil {
			return err
		}
	}

	if transaction.CustomerID != nil {
		if _, err := s.persistence.Customers().GetByID(ctx, *transaction.CustomerID); err != nil {
			return err
		}
	}

	return nil
}
