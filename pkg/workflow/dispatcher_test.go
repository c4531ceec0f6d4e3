package workflow

import (
	"testing"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(name string) *models.WorkflowStep {
	return &models.WorkflowStep{
		ID:            "s1",
		TransactionID: "t1",
		WorkflowType:  models.WorkflowTypeBikeSales,
		StepName:      name,
	}
}

func fullContext() *models.TransactionContext {
	return &models.TransactionContext{
		TransactionID:  "t1",
		TransactionNum: 42,
		Bike:           &models.BikeSummary{Make: "Trek", Model: "FX2", Condition: "Refurbished"},
		Customer:       &models.CustomerSummary{FirstName: "Sam", LastName: "Waters"},
	}
}

func TestDecide_RulePrecedence(t *testing.T) {
	dispatcher := NewDispatcher()

	tests := []struct {
		name     string
		stepName string
		wantKind models.NotificationKind
		wantSend bool
	}{
		{"build substring", "Build", models.NotificationBuildComplete, true},
		{"build case insensitive", "WHEEL BUILD", models.NotificationBuildComplete, true},
		{"reserve substring", "Reservation", models.NotificationReservationComplete, true},
		{"checkout exact", "Checkout", models.NotificationSaleComplete, true},
		{"checkout substring is not a sale", "Pre-Checkout Review", models.NotificationStepComplete, true},
		{"denylisted creation", "Creation", "", false},
		{"denylist is exact", "Order Creation Review", models.NotificationStepComplete, true},
		{"generic fallback", "Bike Spec", models.NotificationStepComplete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, ok := dispatcher.Decide(step(tt.stepName), fullContext())
			assert.Equal(t, tt.wantSend, ok)

			if tt.wantSend {
				assert.Equal(t, tt.wantKind, request.Kind)
				assert.Equal(t, "t1", request.TransactionID)
				assert.Equal(t, 42, request.TransactionNum)
				assert.NotEmpty(t, request.Message)
			}
		})
	}
}

func TestDecide_BuildMessage(t *testing.T) {
	dispatcher := NewDispatcher()

	request, ok := dispatcher.Decide(step("Build"), fullContext())
	require.True(t, ok)
	assert.Equal(t, "Build complete for transaction #42: Trek FX2 (Refurbished) for Sam Waters", request.Message)
	assert.Equal(t, "Trek FX2 (Refurbished)", request.BikeSummary)
	assert.Equal(t, "Sam Waters", request.CustomerSummary)
}

func TestDecide_PlaceholdersForMissingRelations(t *testing.T) {
	dispatcher := NewDispatcher()

	bare := &models.TransactionContext{TransactionID: "t1", TransactionNum: 7}

	for _, name := range []string{"Build", "Reservation", "Checkout", "Bike Spec"} {
		request, ok := dispatcher.Decide(step(name), bare)
		require.True(t, ok, "step %q", name)
		assert.Equal(t, UnknownBike, request.BikeSummary)
		assert.Equal(t, NoCustomerAssigned, request.CustomerSummary)
		assert.NotEmpty(t, request.Message)
		assert.NotContains(t, request.Message, "  ")
	}
}

func TestDecide_UnknownCustomerWhenNamesEmpty(t *testing.T) {
	dispatcher := NewDispatcher()

	tctx := &models.TransactionContext{
		TransactionNum: 7,
		Customer:       &models.CustomerSummary{},
	}

	request, ok := dispatcher.Decide(step("Build"), tctx)
	require.True(t, ok)
	assert.Equal(t, UnknownCustomer, request.CustomerSummary)
}

func TestDecide_NilContext(t *testing.T) {
	dispatcher := NewDispatcher()

	request, ok := dispatcher.Decide(step("Build"), nil)
	require.True(t, ok)
	assert.Equal(t, UnknownBike, request.BikeSummary)
	assert.Equal(t, NoCustomerAssigned, request.CustomerSummary)
}

func TestDecide_BikeWithoutCondition(t *testing.T) {
	dispatcher := NewDispatcher()

	tctx := &models.TransactionContext{
		TransactionNum: 7,
		Bike:           &models.BikeSummary{Make: "Surly", Model: "Cross-Check"},
	}

	request, ok := dispatcher.Decide(step("Checkout"), tctx)
	require.True(t, ok)
	assert.Equal(t, "Surly Cross-Check", request.BikeSummary)
}
