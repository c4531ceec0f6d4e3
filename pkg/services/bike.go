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

// Bike manages the refurbished bike inventory.
type Bike struct {
	persistence persistence.Persistence
}

func NewBike(persistence persistence.Persistence) *Bike {
	return &Bike{persistence: persistence}
}

// FetchAll retrieves every bike in the inventory.
func (s *Bike) FetchAll(ctx context.Context) ([]*models.Bike, error) {
	return s.persistence.Bikes().GetAll(ctx)
}

// FetchByID retrieves a bike by its ID.
func (s *Bike) FetchByID(ctx context.Context, id string) (*models.Bike, error) {
	return s.persistence.Bikes().GetByID(ctx, id)
}

// Create adds a new bike to the inventory.
func (s *Bike) Create(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	if bike == nil {
		return nil, ErrEntityNil
	}

	if strings.TrimSpace(bike.Make) == "" || strings.TrimSpace(bike.Model) == "" {
		return nil, ErrMakeModelRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate bike ID: %w", err)
	}

	now := time.Now().UTC()
	bike.ID = id.String()
	bike.CreatedAt = now
	bike.UpdatedAt = now

	err = s.persistence.Bikes().Save(ctx, bike)
	if err != nil {
		return nil, fmt.Errorf("failed to create bike: %w", err)
	}

	return bike, nil
}

// Update modifies an existing bike by its ID.
func (s *Bike) Update(ctx context.Context, id string, bike *models.Bike) (*models.Bike, error) {
	if bike == nil {
		return nil, ErrEntityNil
	}

	existing, err := s.persistence.Bikes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bike.ID = id
	bike.CreatedAt = existing.CreatedAt
	bike.UpdatedAt = time.Now().UTC()

	err = s.persistence.Bikes().Save(ctx, bike)
	if err != nil {
		return nil, fmt.Errorf("failed to update bike: %w", err)
	}

	return bike, nil
}

// Delete removes a bike by its ID.
func (s *Bike) Delete(ctx context.Context, id string) error {
	return s.persistence.Bikes().Delete(ctx, id)
}
