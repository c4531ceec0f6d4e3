// Package memory provides an in-memory persistence implementation for tests
// and local development. It enforces the same uniqueness rules as the
// PostgreSQL implementation so engine behavior can be verified without a
// database.
package memory

import (
	"context"
	"sync"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
)

// Persistence implements persistence.Persistence backed by process memory.
type Persistence struct {
	mu sync.RWMutex

	bikes        map[string]*models.Bike
	customers    map[string]*models.Customer
	items        map[string]*models.Item
	repairs      map[string]*models.Repair
	transactions map[string]*models.Transaction
	users        map[string]*models.User
	steps        map[string]*models.WorkflowStep

	nextTransactionNum int
}

// NewPersistence creates an empty in-memory persistence layer.
func NewPersistence() *Persistence {
	return &Persistence{
		bikes:              make(map[string]*models.Bike),
		customers:          make(map[string]*models.Customer),
		items:              make(map[string]*models.Item),
		repairs:            make(map[string]*models.Repair),
		transactions:       make(map[string]*models.Transaction),
		users:              make(map[string]*models.User),
		steps:              make(map[string]*models.WorkflowStep),
		nextTransactionNum: 1,
	}
}

func (p *Persistence) Close(_ context.Context) error { return nil }

func (p *Persistence) HealthCheck(_ context.Context) error { return nil }

func (p *Persistence) Bikes() persistence.BikeRepository         { return &bikeRepository{p} }
func (p *Persistence) Customers() persistence.CustomerRepository { return &customerRepository{p} }
func (p *Persistence) Items() persistence.ItemRepository         { return &itemRepository{p} }
func (p *Persistence) Repairs() persistence.RepairRepository     { return &repairRepository{p} }
func (p *Persistence) Users() persistence.UserRepository         { return &userRepository{p} }

func (p *Persistence) Transactions() persistence.TransactionRepository {
	return &transactionRepository{p}
}

func (p *Persistence) WorkflowSteps() persistence.WorkflowStepRepository {
	return &workflowStepRepository{p}
}
