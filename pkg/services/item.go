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

// Item manages the parts and accessories catalog.
type Item struct {
	persistence persistence.Persistence
}

func NewItem(persistence persistence.Persistence) *Item {
	return &Item{persistence: persistence}
}

func (s *Item) FetchAll(ctx context.Context) ([]*models.Item, error) {
	return s.persistence.Items().GetAll(ctx)
}

func (s *Item) FetchByID(ctx context.Context, id string) (*models.Item, error) {
	return s.persistence.Items().GetByID(ctx, id)
}

func (s *Item) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item == nil {
		return nil, ErrEntityNil
	}

	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrNameRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate item ID: %w", err)
	}

	now := time.Now().UTC()
	item.ID = id.String()
	item.CreatedAt = now
	item.UpdatedAt = now

	err = s.persistence.Items().Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *Item) Update(ctx context.Context, id string, item *models.Item) (*models.Item, error) {
	if item == nil {
		return nil, ErrEntityNil
	}

	existing, err := s.persistence.Items().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	err = s.persistence.Items().Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

func (s *Item) Delete(ctx context.Context, id string) error {
	return s.persistence.Items().Delete(ctx, id)
}
