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

// BikeRepository handles bike database operations.
type BikeRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewBikeRepository creates a new bike repository.
func NewBikeRepository(db *sql.DB, logger *slog.Logger) *BikeRepository {
	return &BikeRepository{db: db, logger: logger}
}

const bikeColumns = `
	id
  , make
  , model
  , description
  , bike_type
  , size_cm
  , condition
  , price
  , deposit_amount
  , created_at
  , updated_at
`

func (r *BikeRepository) GetAll(ctx context.Context) ([]*models.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bikes: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	bikes := make([]*models.Bike, 0)

	for rows.Next() {
		bike, err := r.scanBike(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bike: %w", err)
		}

		bikes = append(bikes, bike)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating bikes: %w", err)
	}

	return bikes, nil
}

func (r *BikeRepository) GetByID(ctx context.Context, id string) (*models.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE id = $1`

	bike, err := r.scanBike(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrBikeNotFound
		}

		return nil, fmt.Errorf("failed to scan bike: %w", err)
	}

	return bike, nil
}

func (r *BikeRepository) Save(ctx context.Context, bike *models.Bike) error {
	query := `
		INSERT INTO bikes (id, make, model, description, bike_type, size_cm,
condition, price, deposit_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			description = EXCLUDED.description,
			bike_type = EXCLUDED.bike_type,
			size_cm = EXCLUDED.size_cm,
			condition = EXCLUDED.condition,
			price = EXCLUDED.price,
			deposit_amount = EXCLUDED.deposit_amount,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		bike.ID,
		bike.Make,
		bike.Model,
		bike.Description,
		bike.BikeType,
		bike.SizeCm,
		bike.Condition,
		bike.Price,
		bike.Deposit,
		bike.CreatedAt,
		bike.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save bike: %w", err)
	}

	return nil
}

func (r *BikeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bikes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bike: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return persistence.ErrBikeNotFound
	}

	return nil
}

func (r *BikeRepository) scanBike(scanner interface {
	Scan(dest ...any) error
}) (*models.Bike, error) {
	var bike models.Bike

	err := scanner.Scan(
		&bike.ID,
		&bike.Make,
		&bike.Model,
		&bike.Description,
		&bike.BikeType,
		&bike.SizeCm,
		&bike.Condition,
		&bike.Price,
		&bike.Deposit,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bike, nil
}
