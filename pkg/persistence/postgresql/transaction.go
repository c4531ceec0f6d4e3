package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
)

// TransactionRepository handles transaction database operations and serves
// as the transaction context provider for the workflow engine.
type TransactionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *sql.DB, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

const transactionColumns = `
	id
  , transaction_num
  , transaction_type
  , customer_id
  , bike_id
  , total_cost
  , description
  , is_completed
  , is_paid
  , is_refurb
  , is_urgent
  , date_created
  , date_completed
  , updated_at
`

// GetAll returns all transactions, newest first.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date_created DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	transactions := make([]*models.Transaction, 0)

	for rows.Next() {
		transaction, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		transactions = append(transactions, transaction)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// GetByID returns a transaction by its ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := r.scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	return transaction, nil
}

// Save inserts or updates a transaction. The transaction number is assigned
// by the database sequence on first insert.
func (r *TransactionRepository) Save(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, transaction_type, customer_id, bike_id, total_cost,
description, is_completed, is_paid, is_refurb, is_urgent, date_created, date_completed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			transaction_type = EXCLUDED.transaction_type,
			customer_id = EXCLUDED.customer_id,
			bike_id = EXCLUDED.bike_id,
			total_cost = EXCLUDED.total_cost,
			description = EXCLUDED.description,
			is_completed = EXCLUDED.is_completed,
			is_paid = EXCLUDED.is_paid,
			is_refurb = EXCLUDED.is_refurb,
			is_urgent = EXCLUDED.is_urgent,
			date_completed = EXCLUDED.date_completed,
			updated_at = EXCLUDED.updated_at
		RETURNING transaction_num
	`

	err := r.db.QueryRowContext(ctx, query,
		transaction.ID,
		transaction.Type,
		transaction.CustomerID,
		transaction.BikeID,
		transaction.TotalCost,
		transaction.Description,
		transaction.IsCompleted,
		transaction.IsPaid,
		transaction.IsRefurb,
		transaction.IsUrgent,
		transaction.DateCreated,
		transaction.DateCompleted,
		transaction.UpdatedAt,
	).Scan(&transaction.TransactionNum)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// Delete removes a transaction. Workflow steps cascade at the schema level.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return persistence.ErrTransactionNotFound
	}

	return nil
}

// Exists reports whether a transaction row exists.
func (r *TransactionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}

	return exists, nil
}

// GetContext returns the denormalized transaction snapshot used to build
// notification payloads. Missing bike or customer relations come back nil.
func (r *TransactionRepository) GetContext(ctx context.Context, id string) (*models.TransactionContext, error) {
	query := `
		SELECT
			t.id
		  , t.transaction_num
		  , t.total_cost
		  , t.is_completed
		  , t.is_paid
		  , b.make
		  , b.model
		  , b.condition
		  , c.first_name
		  , c.last_name
		FROM transactions t
		LEFT JOIN bikes b ON b.id = t.bike_id
		LEFT JOIN customers c ON c.id = t.customer_id
		WHERE t.id = $1
	`

	var (
		tctx                               models.TransactionContext
		bikeMake, bikeModel, bikeCondition sql.NullString
		firstName, lastName                sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tctx.TransactionID,
		&tctx.TransactionNum,
		&tctx.TotalCost,
		&tctx.IsCompleted,
		&tctx.IsPaid,
		&bikeMake,
		&bikeModel,
		&bikeCondition,
		&firstName,
		&lastName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("failed to scan transaction context: %w", err)
	}

	if bikeMake.Valid || bikeModel.Valid {
		tctx.Bike = &models.BikeSummary{
			Make:      bikeMake.String,
			Model:     bikeModel.String,
			Condition: bikeCondition.String,
		}
	}

	if firstName.Valid || lastName.Valid {
		tctx.Customer = &models.CustomerSummary{
			FirstName: firstName.String,
			LastName:  lastName.String,
		}
	}

	return &tctx, nil
}

func (r *TransactionRepository) scanTransaction(scanner interface {
	Scan(dest ...any) error
}) (*models.Transaction, error) {
	var transaction models.Transaction

	err := scanner.Scan(
		&transaction.ID,
		&transaction.TransactionNum,
		&transaction.Type,
		&transaction.CustomerID,
		&transaction.BikeID,
		&transaction.TotalCost,
		&transaction.Description,
		&transaction.IsCompleted,
		&transaction.IsPaid,
		&transaction.IsRefurb,
		&transaction.IsUrgent,
		&transaction.DateCreated,
		&transaction.DateCompleted,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}
