// Package registry holds the canonical step definitions for every workflow
// type the shop runs. The mapping is fixed at compile time; running
// workflows snapshot these definitions when they are initialized.
package registry

import (
	"errors"
	"fmt"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

// ErrUnknownWorkflowType is returned when a workflow type is not registered.
var ErrUnknownWorkflowType = errors.New("unknown workflow type")

type Registry struct {
	definitions map[models.WorkflowType][]models.StepDefinition
}

func NewRegistry() *Registry {
	return &Registry{
		definitions: map[models.WorkflowType][]models.StepDefinition{
			models.WorkflowTypeBikeSales: steps(models.WorkflowTypeBikeSales,
				"Bike Spec",
				"Build",
				"Creation",
				"Reservation",
				"Checkout",
			),
			models.WorkflowTypeRepairProcess: steps(models.WorkflowTypeRepairProcess,
				"Intake",
				"Diagnosis",
				"Repair",
				"Quality Check",
				"Pickup",
			),
		},
	}
}

func steps(workflowType models.WorkflowType, names ...string) []models.StepDefinition {
	definitions := make([]models.StepDefinition, 0, len(names))
	for i, name := range names {
		definitions = append(definitions, models.StepDefinition{
			WorkflowType: workflowType,
			StepName:     name,
			StepOrder:    i + 1,
		})
	}

	return definitions
}

// StepsFor returns the canonical ordered step list for a workflow type.
func (r *Registry) StepsFor(workflowType models.WorkflowType) ([]models.StepDefinition, error) {
	definitions, ok := r.definitions[workflowType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflowType, workflowType)
	}

	out := make([]models.StepDefinition, len(definitions))
	copy(out, definitions)

	return out, nil
}

// Types returns every registered workflow type.
func (r *Registry) Types() []models.WorkflowType {
	types := make([]models.WorkflowType, 0, len(r.definitions))
	for workflowType := range r.definitions {
		types = append(types, workflowType)
	}

	return types
}

// SelfCheck asserts that every registered workflow type has step orders
// forming a dense 1..N sequence. Run at startup; a failure means the
// compiled-in definitions are malformed.
func (r *Registry) SelfCheck() error {
	for workflowType, definitions := range r.definitions {
		if len(definitions) == 0 {
			return fmt.Errorf("workflow type %s has no steps", workflowType)
		}

		seen := make(map[int]string, len(definitions))

		for _, definition := range definitions {
			if definition.StepOrder < 1 || definition.StepOrder > len(definitions) {
				return fmt.Errorf("workflow type %s: step %q has order %d outside 1..%d",
					workflowType, definition.StepName, definition.StepOrder, len(definitions))
			}

			if other, dup := seen[definition.StepOrder]; dup {
				return fmt.Errorf("workflow type %s: steps %q and %q share order %d",
					workflowType, other, definition.StepName, definition.StepOrder)
			}

			seen[definition.StepOrder] = definition.StepName
		}
	}

	return nil
}

// HealthCheck reports registry health for the API health endpoint.
func (r *Registry) HealthCheck() (string, bool) {
	if err := r.SelfCheck(); err != nil {
		return "Workflow registry is unhealthy: " + err.Error(), false
	}

	return "Workflow registry is healthy", true
}
