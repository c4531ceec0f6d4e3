package memory

import (
	"testing"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStep(id, transactionID string, order int) *models.WorkflowStep {
	now := time.Now().UTC()

	return &models.WorkflowStep{
		ID:            id,
		TransactionID: transactionID,
		WorkflowType:  models.WorkflowTypeBikeSales,
		StepName:      "Step",
		StepOrder:     order,
		CreatedBy:     "user-1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestInsertBatch_RejectsDuplicateSlot(t *testing.T) {
	repo := NewPersistence().WorkflowSteps()

	err := repo.InsertBatch(t.Context(), []*models.WorkflowStep{
		newStep("s1", "t1", 1),
		newStep("s2", "t1", 2),
	})
	require.NoError(t, err)

	err = repo.InsertBatch(t.Context(), []*models.WorkflowStep{
		newStep("s3", "t1", 1),
	})
	require.Error(t, err)
	assert.True(t, persistence.IsWorkflowAlreadyInitialized(err))
}

func TestInsertBatch_AtomicOnConflict(t *testing.T) {
	repo := NewPersistence().WorkflowSteps()

	err := repo.InsertBatch(t.Context(), []*models.WorkflowStep{newStep("s1", "t1", 2)})
	require.NoError(t, err)

	// First element of the batch is fine, the second collides. Nothing from
	// the batch may be visible afterwards.
	err = repo.InsertBatch(t.Context(), []*models.WorkflowStep{
		newStep("s2", "t1", 1),
		newStep("s3", "t1", 2),
	})
	require.Error(t, err)

	steps, err := repo.FindSteps(t.Context(), "t1", models.WorkflowTypeBikeSales)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "s1", steps[0].ID)
}

func TestFindSteps_OrderedAndScoped(t *testing.T) {
	repo := NewPersistence().WorkflowSteps()

	err := repo.InsertBatch(t.Context(), []*models.WorkflowStep{
		newStep("s3", "t1", 3),
		newStep("s1", "t1", 1),
		newStep("s2", "t1", 2),
		newStep("other", "t2", 1),
	})
	require.NoError(t, err)

	steps, err := repo.FindSteps(t.Context(), "t1", models.WorkflowTypeBikeSales)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	for i, step := range steps {
		assert.Equal(t, i+1, step.StepOrder)
	}
}

func TestUpdate_RoundTrip(t *testing.T) {
	repo := NewPersistence().WorkflowSteps()

	err := repo.InsertBatch(t.Context(), []*models.WorkflowStep{newStep("s1", "t1", 1)})
	require.NoError(t, err)

	step, err := repo.FindByID(t.Context(), "s1")
	require.NoError(t, err)

	actor := "user-2"
	now := time.Now().UTC()
	step.IsCompleted = true
	step.CompletedBy = &actor
	step.CompletedAt = &now
	step.UpdatedAt = now

	require.NoError(t, repo.Update(t.Context(), step))

	reread, err := repo.FindByID(t.Context(), "s1")
	require.NoError(t, err)
	assert.True(t, reread.IsCompleted)
	require.NotNil(t, reread.CompletedBy)
	assert.Equal(t, "user-2", *reread.CompletedBy)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewPersistence().WorkflowSteps()

	step, err := repo.FindByID(t.Context(), "missing")
	assert.Nil(t, step)
	assert.True(t, persistence.IsStepNotFound(err))
}

func TestTransactionDelete_CascadesSteps(t *testing.T) {
	p := NewPersistence()

	transaction := &models.Transaction{ID: "t1", Type: models.TransactionTypeRetrospec}
	require.NoError(t, p.Transactions().Save(t.Context(), transaction))

	err := p.WorkflowSteps().InsertBatch(t.Context(), []*models.WorkflowStep{newStep("s1", "t1", 1)})
	require.NoError(t, err)

	require.NoError(t, p.Transactions().Delete(t.Context(), "t1"))

	steps, err := p.WorkflowSteps().FindSteps(t.Context(), "t1", models.WorkflowTypeBikeSales)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestGetContext_Placeholders(t *testing.T) {
	p := NewPersistence()

	transaction := &models.Transaction{ID: "t1", Type: models.TransactionTypeRetrospec, TotalCost: 150}
	require.NoError(t, p.Transactions().Save(t.Context(), transaction))

	tctx, err := p.Transactions().GetContext(t.Context(), "t1")
	require.NoError(t, err)
	assert.Nil(t, tctx.Bike)
	assert.Nil(t, tctx.Customer)
	assert.Equal(t, transaction.TransactionNum, tctx.TransactionNum)
}

func TestGetContext_WithRelations(t *testing.T) {
	p := NewPersistence()

	bike := &models.Bike{ID: "b1", Make: "Trek", Model: "FX2", Condition: "Refurbished"}
	require.NoError(t, p.Bikes().Save(t.Context(), bike))

	customer := &models.Customer{ID: "c1", FirstName: "Sam", LastName: "Waters", Email: "sam@rice.edu"}
	require.NoError(t, p.Customers().Save(t.Context(), customer))

	bikeID, customerID := "b1", "c1"
	transaction := &models.Transaction{
		ID:         "t1",
		Type:       models.TransactionTypeRetrospec,
		BikeID:     &bikeID,
		CustomerID: &customerID,
	}
	require.NoError(t, p.Transactions().Save(t.Context(), transaction))

	tctx, err := p.Transactions().GetContext(t.Context(), "t1")
	require.NoError(t, err)
	require.NotNil(t, tctx.Bike)
	assert.Equal(t, "Trek", tctx.Bike.Make)
	require.NotNil(t, tctx.Customer)
	assert.Equal(t, "Sam", tctx.Customer.FirstName)
}
