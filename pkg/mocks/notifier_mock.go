// Package mocks provides testify-based mocks for collaborator interfaces.
package mocks

import (
	"context"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of the outbound notification channel.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, request models.NotificationRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}
