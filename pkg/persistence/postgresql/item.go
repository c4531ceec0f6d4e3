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

// ItemRepository handles inventory item database operations.
type ItemRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *sql.DB, logger *slog.Logger) *ItemRepository {
	return &ItemRepository{db: db, logger: logger}
}

const itemColumns = `
	id
  , name
  , upc
  , brand
  , category
  , wholesale_cost
  , standard_price
  , stock
  , disabled
  , created_at
  , updated_at
`

func (r *ItemRepository) GetAll(ctx context.Context) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	items := make([]*models.Item, 0)

	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrItemNotFound
		}

		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, name, upc, brand, category, wholesale_cost,
standard_price, stock, disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			upc = EXCLUDED.upc,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			wholesale_cost = EXCLUDED.wholesale_cost,
			standard_price = EXCLUDED.standard_price,
			stock = EXCLUDED.stock,
			disabled = EXCLUDED.disabled,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.UPC,
		item.Brand,
		item.Category,
		item.WholesaleCost,
		item.StandardPrice,
		item.Stock,
		item.Disabled,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return persistence.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) scanItem(scanner interface {
	Scan(dest ...any) error
}) (*models.Item, error) {
	var item models.Item

	err := scanner.Scan(
		&item.ID,
		&item.Name,
		&item.UPC,
		&item.Brand,
		&item.Category,
		&item.WholesaleCost,
		&item.StandardPrice,
		&item.Stock,
		&item.Disabled,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
