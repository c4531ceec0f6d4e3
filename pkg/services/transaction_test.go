package services

import (
	"testing"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionCreate(t *testing.T) {
	p := memory.NewPersistence()
	service := NewTransaction(p)

	created, err := service.Create(t.Context(), &models.Transaction{
		Type:        models.TransactionTypeRetrospec,
		Description: "Refurb sale",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Positive(t, created.TransactionNum)
	assert.False(t, created.DateCreated.IsZero())

	second, err := service.Create(t.Context(), &models.Transaction{Type: models.TransactionTypeMerch})
	require.NoError(t, err)
	assert.Equal(t, created.TransactionNum+1, second.TransactionNum)
}

func TestTransactionCreate_InvalidType(t *testing.T) {
	service := NewTransaction(memory.NewPersistence())

	_, err := service.Create(t.Context(), &models.Transaction{Type: "paint_job"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTransactionCreate_DanglingBike(t *testing.T) {
	service := NewTransaction(memory.NewPersistence())

	bikeID := "missing-bike"
	_, err := service.Create(t.Context(), &models.Transaction{
		Type:   models.TransactionTypeRetrospec,
		BikeID: &bikeID,
	})
	require.ErrorIs(t, err, persistence.ErrBikeNotFound)
}

func TestTransactionUpdate_PreservesNumberAndCreation(t *testing.T) {
	p := memory.NewPersistence()
	service := NewTransaction(p)

	created, err := service.Create(t.Context(), &models.Transaction{Type: models.TransactionTypeRetrospec})
	require.NoError(t, err)

	updated, err := service.Update(t.Context(), created.ID, &models.Transaction{
		Type:        models.TransactionTypeRetrospec,
		Description: "updated",
		TotalCost:   199.99,
	})
	require.NoError(t, err)
	assert.Equal(t, created.TransactionNum, updated.TransactionNum)
	assert.Equal(t, created.DateCreated, updated.DateCreated)
	assert.Equal(t, "updated", updated.Description)
}

func TestTransactionUpdate_NotFound(t *testing.T) {
	service := NewTransaction(memory.NewPersistence())

	_, err := service.Update(t.Context(), "missing", &models.Transaction{Type: models.TransactionTypeMerch})
	require.ErrorIs(t, err, persistence.ErrTransactionNotFound)
}

func TestTransactionDelete_CascadesWorkflowSteps(t *testing.T) {
	p := memory.NewPersistence()
	service := NewTransaction(p)

	created, err := service.Create(t.Context(), &models.Transaction{Type: models.TransactionTypeRetrospec})
	require.NoError(t, err)

	require.NoError(t, p.WorkflowSteps().InsertBatch(t.Context(), []*models.WorkflowStep{{
		ID:            "s1",
		TransactionID: created.ID,
		WorkflowType:  models.WorkflowTypeBikeSales,
		StepName:      "Build",
		StepOrder:     1,
		CreatedBy:     "u1",
	}}))

	require.NoError(t, service.Delete(t.Context(), created.ID))

	steps, err := p.WorkflowSteps().FindSteps(t.Context(), created.ID, models.WorkflowTypeBikeSales)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestBikeCreate_Validation(t *testing.T) {
	service := NewBike(memory.NewPersistence())

	_, err := service.Create(t.Context(), &models.Bike{Make: " ", Model: "FX2"})
	require.ErrorIs(t, err, ErrMakeModelRequired)

	created, err := service.Create(t.Context(), &models.Bike{Make: "Trek", Model: "FX2", Condition: "Refurbished"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestTransactionHealthCheck(t *testing.T) {
	service := NewTransaction(memory.NewPersistence())

	message, healthy := service.HealthCheck(t.Context())
	assert.True(t, healthy)
	assert.NotEmpty(t, message)

	message, healthy = NewTransaction(nil).HealthCheck(t.Context())
	assert.False(t, healthy)
	assert.NotEmpty(t, message)
}
