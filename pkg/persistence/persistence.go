// Package persistence provides the data storage abstraction layer for the
// bike shop backend.
package persistence

import (
	"context"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

type Persistence interface {
	Bikes() BikeRepository
	Customers() CustomerRepository
	Items() ItemRepository
	Repairs() RepairRepository
	Transactions() TransactionRepository
	Users() UserRepository
	WorkflowSteps() WorkflowStepRepository

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

type BikeRepository interface {
	GetAll(ctx context.Context) ([]*models.Bike, error)
	GetByID(ctx context.Context, id string) (*models.Bike, error)
	Save(ctx context.Context, bike *models.Bike) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

type ItemRepository interface {
	GetAll(ctx context.Context) ([]*models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id string) error
}

type RepairRepository interface {
	GetAll(ctx context.Context) ([]*models.Repair, error)
	GetByID(ctx context.Context, id string) (*models.Repair, error)
	Save(ctx context.Context, repair *models.Repair) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// TransactionRepository also plays the transaction context provider role for
// the workflow engine: Exists backs the initialization precondition and
// GetContext supplies the denormalized snapshot for notifications.
type TransactionRepository interface {
	GetAll(ctx context.Context) ([]*models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	Save(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id string) error

	Exists(ctx context.Context, id string) (bool, error)
	GetContext(ctx context.Context, id string) (*models.TransactionContext, error)
}

// WorkflowStepRepository is the step store consumed by the workflow engine.
//
// InsertBatch must be atomic: either every step in the batch is persisted or
// none is. Implementations must enforce uniqueness of
// (transaction_id, workflow_type, step_order) and report a violation as
// ErrWorkflowAlreadyInitialized so two racing initializations cannot both
// succeed.
type WorkflowStepRepository interface {
	FindSteps(ctx context.Context, transactionID string, workflowType models.WorkflowType) ([]*models.WorkflowStep, error)
	InsertBatch(ctx context.Context, steps []*models.WorkflowStep) error
	FindByID(ctx context.Context, id string) (*models.WorkflowStep, error)
	Update(ctx context.Context, step *models.WorkflowStep) error
}
