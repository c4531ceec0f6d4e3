// Package postgresql provides PostgreSQL persistence for the bike shop backend.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence/sqlbase"
	_ "github.com/lib/pq" // postgres driver
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db     *sql.DB
	logger *slog.Logger

	bikeRepo     *BikeRepository
	customerRepo *CustomerRepository
	itemRepo     *ItemRepository
	repairRepo   *RepairRepository
	txnRepo      *TransactionRepository
	userRepo     *UserRepository
	stepRepo     *WorkflowStepRepository
}

// NewPersistence creates a new PostgreSQL persistence layer and runs migrations.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	err = database.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())

	err = migrationManager.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Persistence{
		db:           database,
		logger:       logger,
		bikeRepo:     NewBikeRepository(database, logger),
		customerRepo: NewCustomerRepository(database, logger),
		itemRepo:     NewItemRepository(database, logger),
		repairRepo:   NewRepairRepository(database, logger),
		txnRepo:      NewTransactionRepository(database, logger),
		userRepo:     NewUserRepository(database, logger),
		stepRepo:     NewWorkflowStepRepository(database, logger),
	}, nil
}

// Close closes the database connection.
func (p *Persistence) Close(_ context.Context) error {
	if p.db != nil {
		err := p.db.Close()
		if err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (p *Persistence) Bikes() persistence.BikeRepository               { return p.bikeRepo }
func (p *Persistence) Customers() persistence.CustomerRepository       { return p.customerRepo }
func (p *Persistence) Items() persistence.ItemRepository               { return p.itemRepo }
func (p *Persistence) Repairs() persistence.RepairRepository           { return p.repairRepo }
func (p *Persistence) Transactions() persistence.TransactionRepository { return p.txnRepo }
func (p *Persistence) Users() persistence.UserRepository               { return p.userRepo }
func (p *Persistence) WorkflowSteps() persistence.WorkflowStepRepository {
	return p.stepRepo
}
