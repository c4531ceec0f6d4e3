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

// User manages shop staff accounts referenced by workflow audit fields.
type User struct {
	persistence persistence.Persistence
}

func NewUser(persistence persistence.Persistence) *User {
	return &User{persistence: persistence}
}

func (s *User) FetchAll(ctx context.Context) ([]*models.User, error) {
	return s.persistence.Users().GetAll(ctx)
}

func (s *User) FetchByID(ctx context.Context, id string) (*models.User, error) {
	return s.persistence.Users().GetByID(ctx, id)
}

func (s *User) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, ErrEntityNil
	}

	if strings.TrimSpace(user.Username) == "" {
		return nil, ErrUsernameRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := time.Now().UTC()
	user.ID = id.String()
	user.Active = true
	user.CreatedAt = now
	user.UpdatedAt = now

	err = s.persistence.Users().Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *User) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, ErrEntityNil
	}

	existing, err := s.persistence.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ID = id
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	err = s.persistence.Users().Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *User) Delete(ctx context.Context, id string) error {
	return s.persistence.Users().Delete(ctx, id)
}
