package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/google/uuid"
)

// Customer manages the customer directory.
type Customer struct {
	persistence persistence.Persistence
}

func NewCustomer(persistence persistence.Persistence) *Customer {
	return &Customer{persistence: persistence}
}

func (s *Customer) FetchAll(ctx context.Context) ([]*models.Customer, error) {
	return s.persistence.Customers().GetAll(ctx)
}

func (s *Customer) FetchByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.persistence.Customers().GetByID(ctx, id)
}

func (s *Customer) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if customer == nil {
		return nil, ErrEntityNil
	}

	if strings.TrimSpace(customer.FirstName) == "" || strings.TrimSpace(customer.LastName) == "" {
		return nil, ErrCustomerNameRequired
	}

	if strings.TrimSpace(customer.Email) == "" {
		return nil, ErrEmailRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	now := time.Now().UTC()
	customer.ID = id.String()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	err = s.persistence.Customers().Save(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) Update(ctx context.Context, id string, customer *models.Customer) (*models.Customer, error) {
	if customer == nil {
		return nil, ErrEntityNil
	}

	existing, err := s.persistence.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.ID = id
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now().UTC()

	err = s.persistence.Customers().Save(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) Delete(ctx context.Context, id string) error {
	return s.persistence.Customers().Delete(ctx, id)
}
