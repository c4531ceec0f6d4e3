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

// Repair manages the catalog of repair services the shop offers.
type Repair struct {
	persistence persistence.Persistence
}

func NewRepair(persistence persistence.Persistence) *Repair {
	return &Repair{persistence: persistence}
}

func (s *Repair) FetchAll(ctx context.Context) ([]*models.Repair, error) {
	return s.persistence.Repairs().GetAll(ctx)
}

func (s *Repair) FetchByID(ctx context.Context, id string) (*models.Repair, error) {
	return s.persistence.Repairs().GetByID(ctx, id)
}

func (s *Repair) Create(ctx context.Context, repair *models.Repair) (*models.Repair, error) {
	if repair == nil {
		return nil, ErrEntityNil
	}

	if strings.TrimSpace(repair.Name) == "" {
		return nil, ErrNameRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate repair ID: %w", err)
	}

	now := time.Now().UTC()
	repair.ID = id.String()
	repair.CreatedAt = now
	repair.UpdatedAt = now

	err = s.persistence.Repairs().Save(ctx, repair)
	if err != nil {
		return nil, fmt.Errorf("failed to create repair: %w", err)
	}

	return repair, nil
}

func (s *Repair) Update(ctx context.Context, id string, repair *models.Repair) (*models.Repair, error) {
	if repair == nil {
		return nil, ErrEntityNil
	}

	existing, err := s.persistence.Repairs().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repair.ID = id
	repair.CreatedAt = existing.CreatedAt
	repair.UpdatedAt = time.Now().UTC()

	err = s.persistence.Repairs().Save(ctx, repair)
	if err != nil {
		return nil, fmt.Errorf("failed to update repair: %w", err)
	}

	return repair, nil
}

func (s *Repair) Delete(ctx context.Context, id string) error {
	return s.persistence.Repairs().Delete(ctx, id)
}
