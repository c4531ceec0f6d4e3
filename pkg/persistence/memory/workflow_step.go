package memory

import (
	"context"
	"sort"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
)

type workflowStepRepository struct{ p *Persistence }

func (r *workflowStepRepository) FindSteps(_ context.Context, transactionID string, workflowType models.WorkflowType) ([]*models.WorkflowStep, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	steps := make([]*models.WorkflowStep, 0)

	for _, step := range r.p.steps {
		if step.TransactionID == transactionID && step.WorkflowType == workflowType {
			clone := *step
			steps = append(steps, &clone)
		}
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })

	return steps, nil
}

// InsertBatch validates the whole batch against the uniqueness rule before
// writing anything, so a conflict never leaves a partial batch behind.
func (r *workflowStepRepository) InsertBatch(_ context.Context, steps []*models.WorkflowStep) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	type slot struct {
		transactionID string
		workflowType  models.WorkflowType
		order         int
	}

	occupied := make(map[slot]struct{}, len(r.p.steps))
	for _, existing := range r.p.steps {
		occupied[slot{existing.TransactionID, existing.WorkflowType, existing.StepOrder}] = struct{}{}
	}

	for _, step := range steps {
		key := slot{step.TransactionID, step.WorkflowType, step.StepOrder}
		if _, taken := occupied[key]; taken {
			return persistence.NewStepBatchError("InsertBatch", step.TransactionID,
				persistence.ErrWorkflowAlreadyInitialized)
		}

		occupied[key] = struct{}{}
	}

	for _, step := range steps {
		clone := *step
		r.p.steps[step.ID] = &clone
	}

	return nil
}

func (r *workflowStepRepository) FindByID(_ context.Context, id string) (*models.WorkflowStep, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	step, ok := r.p.steps[id]
	if !ok {
		return nil, persistence.NewStepError("FindByID", id, persistence.ErrStepNotFound)
	}

	clone := *step

	return &clone, nil
}

func (r *workflowStepRepository) Update(_ context.Context, step *models.WorkflowStep) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.steps[step.ID]; !ok {
		return persistence.NewStepError("Update", step.ID, persistence.ErrStepNotFound)
	}

	clone := *step
	r.p.steps[step.ID] = &clone

	return nil
}
