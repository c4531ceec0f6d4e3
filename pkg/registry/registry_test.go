package registry

import (
	"testing"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsFor_BikeSales(t *testing.T) {
	registry := NewRegistry()

	definitions, err := registry.StepsFor(models.WorkflowTypeBikeSales)
	require.NoError(t, err)
	require.Len(t, definitions, 5)

	names := make([]string, 0, len(definitions))
	for _, definition := range definitions {
		names = append(names, definition.StepName)
	}

	assert.Equal(t, []string{"Bike Spec", "Build", "Creation", "Reservation", "Checkout"}, names)
}

func TestStepsFor_UnknownType(t *testing.T) {
	registry := NewRegistry()

	definitions, err := registry.StepsFor(models.WorkflowType("paint_shop"))
	assert.Nil(t, definitions)
	require.ErrorIs(t, err, ErrUnknownWorkflowType)
}

func TestStepsFor_ReturnsCopy(t *testing.T) {
	registry := NewRegistry()

	first, err := registry.StepsFor(models.WorkflowTypeRepairProcess)
	require.NoError(t, err)

	first[0].StepName = "mutated"

	second, err := registry.StepsFor(models.WorkflowTypeRepairProcess)
	require.NoError(t, err)
	assert.Equal(t, "Intake", second[0].StepName)
}

func TestOrderDensity(t *testing.T) {
	registry := NewRegistry()

	for _, workflowType := range registry.Types() {
		definitions, err := registry.StepsFor(workflowType)
		require.NoError(t, err)
		require.NotEmpty(t, definitions)

		for i, definition := range definitions {
			assert.Equal(t, i+1, definition.StepOrder,
				"workflow %s: step %q out of sequence", workflowType, definition.StepName)
			assert.Equal(t, workflowType, definition.WorkflowType)
		}
	}

	require.NoError(t, registry.SelfCheck())
}

func TestHealthCheck(t *testing.T) {
	registry := NewRegistry()

	message, ok := registry.HealthCheck()
	assert.True(t, ok)
	assert.Contains(t, message, "healthy")
}

func TestSelfCheck_DetectsMalformedDefinitions(t *testing.T) {
	tests := []struct {
		name        string
		definitions []models.StepDefinition
	}{
		{
			name: "duplicate order",
			definitions: []models.StepDefinition{
				{WorkflowType: "broken", StepName: "A", StepOrder: 1},
				{WorkflowType: "broken", StepName: "B", StepOrder: 1},
			},
		},
		{
			name: "gap in sequence",
			definitions: []models.StepDefinition{
				{WorkflowType: "broken", StepName: "A", StepOrder: 1},
				{WorkflowType: "broken", StepName: "B", StepOrder: 3},
			},
		},
		{
			name:        "no steps",
			definitions: []models.StepDefinition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &Registry{definitions: map[models.WorkflowType][]models.StepDefinition{
				"broken": tt.definitions,
			}}

			assert.Error(t, registry.SelfCheck())
		})
	}
}
