package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// WorkflowStepRepository handles workflow step database operations.
type WorkflowStepRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewWorkflowStepRepository creates a new workflow step repository.
func NewWorkflowStepRepository(db *sql.DB, logger *slog.Logger) *WorkflowStepRepository {
	return &WorkflowStepRepository{db: db, logger: logger}
}

// FindSteps returns the steps of a transaction's workflow instance in
// ascending step order.
func (r *WorkflowStepRepository) FindSteps(ctx context.Context, transactionID string, workflowType models.WorkflowType) ([]*models.WorkflowStep, error) {
	query := `
		SELECT
			id
		  , transaction_id
		  , workflow_type
		  , step_name
		  , step_order
		  , is_completed
		  , created_by
		  , completed_by
		  , created_at
		  , completed_at
		  , updated_at
		FROM workflow_steps
		WHERE transaction_id = $1 AND workflow_type = $2
		ORDER BY step_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, transactionID, workflowType)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow steps: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	steps := make([]*models.WorkflowStep, 0)

	for rows.Next() {
		step, err := r.scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow step: %w", err)
		}

		steps = append(steps, step)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating workflow steps: %w", err)
	}

	return steps, nil
}

// InsertBatch persists a full batch of steps inside one transaction. A
// unique violation on the (transaction, workflow type, order) index rolls the
// whole batch back and surfaces as ErrWorkflowAlreadyInitialized.
func (r *WorkflowStepRepository) InsertBatch(ctx context.Context, steps []*models.WorkflowStep) error {
	if len(steps) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO workflow_steps (id, transaction_id, workflow_type, step_name,
step_order, is_completed, created_by, completed_by, created_at, completed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, step := range steps {
		_, err = tx.ExecContext(ctx, query,
			step.ID,
			step.TransactionID,
			step.WorkflowType,
			step.StepName,
			step.StepOrder,
			step.IsCompleted,
			step.CreatedBy,
			step.CompletedBy,
			step.CreatedAt,
			step.CompletedAt,
			step.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				err = persistence.NewStepBatchError("InsertBatch", step.TransactionID,
					persistence.ErrWorkflowAlreadyInitialized)

				return err
			}

			return fmt.Errorf("failed to insert workflow step: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit workflow step batch: %w", err)
	}

	return nil
}

// FindByID returns a single step by its identifier.
func (r *WorkflowStepRepository) FindByID(ctx context.Context, id string) (*models.WorkflowStep, error) {
	query := `
		SELECT
			id
		  , transaction_id
		  , workflow_type
		  , step_name
		  , step_order
		  , is_completed
		  , created_by
		  , completed_by
		  , created_at
		  , completed_at
		  , updated_at
		FROM workflow_steps
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	step, err := r.scanStep(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.NewStepError("FindByID", id, persistence.ErrStepNotFound)
		}

		return nil, fmt.Errorf("failed to scan workflow step: %w", err)
	}

	return step, nil
}

// Update persists the mutable fields of a step.
func (r *WorkflowStepRepository) Update(ctx context.Context, step *models.WorkflowStep) error {
	query := `
		UPDATE workflow_steps
		SET is_completed = $2,
			completed_by = $3,
			completed_at = $4,
			updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		step.ID,
		step.IsCompleted,
		step.CompletedBy,
		step.CompletedAt,
		step.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update workflow step: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return persistence.NewStepError("Update", step.ID, persistence.ErrStepNotFound)
	}

	return nil
}

func (r *WorkflowStepRepository) scanStep(scanner interface {
	Scan(dest ...any) error
}) (*models.WorkflowStep, error) {
	var step models.WorkflowStep

	err := scanner.Scan(
		&step.ID,
		&step.TransactionID,
		&step.WorkflowType,
		&step.StepName,
		&step.StepOrder,
		&step.IsCompleted,
		&step.CreatedBy,
		&step.CompletedBy,
		&step.CreatedAt,
		&step.CompletedAt,
		&step.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &step, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}

	return false
}
