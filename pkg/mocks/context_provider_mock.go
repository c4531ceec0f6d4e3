package mocks

import (
	"context"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/stretchr/testify/mock"
)

// MockContextProvider is a mock implementation of workflow.ContextProvider.
type MockContextProvider struct {
	mock.Mock
}

func (m *MockContextProvider) Exists(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockContextProvider) GetContext(ctx context.Context, transactionID string) (*models.TransactionContext, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.TransactionContext), args.Error(1)
}
