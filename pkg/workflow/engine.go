// Package workflow implements the step engine that drives a transaction's
// business process: initializing the canonical steps, moving them between
// pending and completed, and fanning out notifications on completion.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/registry"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	notifyTimeout      = 30 * time.Second
	notifyMaxRetries   = 3
	notifyRetryBackoff = 250 * time.Millisecond
)

// ContextProvider supplies transaction existence checks and the denormalized
// snapshot used to build notification payloads.
type ContextProvider interface {
	Exists(ctx context.Context, transactionID string) (bool, error)
	GetContext(ctx context.Context, transactionID string) (*models.TransactionContext, error)
}

// Notifier is the outbound notification channel. The engine submits to it on
// a background goroutine and never awaits delivery on the request path.
type Notifier interface {
	Send(ctx context.Context, request models.NotificationRequest) error
}

// Engine is the workflow step state machine. All collaborators are injected;
// substitute them freely in tests.
type Engine struct {
	steps      persistence.WorkflowStepRepository
	txns       ContextProvider
	notifier   Notifier
	registry   *registry.Registry
	dispatcher *Dispatcher
	logger     *slog.Logger

	// Tracks in-flight notification goroutines so shutdown and tests can
	// wait for them. Delivery itself stays best effort.
	inflight sync.WaitGroup
}

// NewEngine creates a workflow step engine.
func NewEngine(
	steps persistence.WorkflowStepRepository,
	txns ContextProvider,
	notifier Notifier,
	reg *registry.Registry,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		steps:      steps,
		txns:       txns,
		notifier:   notifier,
		registry:   reg,
		dispatcher: NewDispatcher(),
		logger:     logger,
	}
}

// InitializeWorkflow materializes the canonical steps of a workflow type for
// a transaction as one atomic batch. It fails with ErrUnknownWorkflowType,
// ErrTransactionNotFound, or ErrWorkflowAlreadyInitialized; callers hitting
// the latter should query progress instead of retrying.
func (e *Engine) InitializeWorkflow(ctx context.Context, transactionID string, workflowType models.WorkflowType, actorID string) ([]*models.WorkflowStep, error) {
	definitions, err := e.registry.StepsFor(workflowType)
	if err != nil {
		return nil, err
	}

	exists, err := e.txns.Exists(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction existence: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", persistence.ErrTransactionNotFound, transactionID)
	}

	existing, err := e.steps.FindSteps(ctx, transactionID, workflowType)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing steps: %w", err)
	}

	if len(existing) > 0 {
		return nil, persistence.NewStepBatchError("InitializeWorkflow", transactionID,
			persistence.ErrWorkflowAlreadyInitialized)
	}

	now := time.Now().UTC()
	steps := make([]*models.WorkflowStep, 0, len(definitions))

	for _, definition := range definitions {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate step ID: %w", err)
		}

		steps = append(steps, &models.WorkflowStep{
			ID:            id.String(),
			TransactionID: transactionID,
			WorkflowType:  definition.WorkflowType,
			StepName:      definition.StepName,
			StepOrder:     definition.StepOrder,
			IsCompleted:   false,
			CreatedBy:     actorID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	// The store-level uniqueness constraint is the arbiter if two
	// initializations race past the check above; the loser comes back as
	// ErrWorkflowAlreadyInitialized, never as a duplicate row.
	err = e.steps.InsertBatch(ctx, steps)
	if err != nil {
		if persistence.IsWorkflowAlreadyInitialized(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to persist workflow steps: %w", err)
	}

	e.logger.InfoContext(ctx, "Workflow initialized",
		"transaction_id", transactionID,
		"workflow_type", workflowType,
		"steps", len(steps),
	)

	return steps, nil
}

// CompleteStep marks a step completed and records the acting user. The
// notification side effect runs on a background goroutine after the write
// succeeds; its failures are logged and never surfaced here.
func (e *Engine) CompleteStep(ctx context.Context, stepID, actorID string) (*models.WorkflowStep, error) {
	step, err := e.steps.FindByID(ctx, stepID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	step.IsCompleted = true
	step.CompletedBy = &actorID
	step.CompletedAt = &now
	step.UpdatedAt = now

	err = e.steps.Update(ctx, step)
	if err != nil {
		return nil, fmt.Errorf("failed to persist step completion: %w", err)
	}

	notified := *step

	e.inflight.Add(1)
	go e.notifyCompleted(&notified)

	return step, nil
}

// ReopenStep moves a completed step back to pending, clearing the completion
// audit fields. No notification is dispatched.
func (e *Engine) ReopenStep(ctx context.Context, stepID, actorID string) (*models.WorkflowStep, error) {
	step, err := e.steps.FindByID(ctx, stepID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	step.IsCompleted = false
	step.CompletedBy = nil
	step.CompletedAt = nil
	step.UpdatedAt = now

	err = e.steps.Update(ctx, step)
	if err != nil {
		return nil, fmt.Errorf("failed to persist step reopen: %w", err)
	}

	e.logger.InfoContext(ctx, "Workflow step reopened",
		"step_id", stepID,
		"step_name", step.StepName,
		"actor_id", actorID,
	)

	return step, nil
}

// ListSteps returns a transaction's workflow steps in step order. An
// uninitialized workflow yields an empty slice.
func (e *Engine) ListSteps(ctx context.Context, transactionID string, workflowType models.WorkflowType) ([]*models.WorkflowStep, error) {
	if _, err := e.registry.StepsFor(workflowType); err != nil {
		return nil, err
	}

	steps, err := e.steps.FindSteps(ctx, transactionID, workflowType)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow steps: %w", err)
	}

	return steps, nil
}

// GetProgress reports completion counts for a transaction's workflow
// instance. A workflow with no steps reports zero progress rather than
// failing.
func (e *Engine) GetProgress(ctx context.Context, transactionID string, workflowType models.WorkflowType) (*models.WorkflowProgress, error) {
	steps, err := e.steps.FindSteps(ctx, transactionID, workflowType)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow steps: %w", err)
	}

	progress := &models.WorkflowProgress{Total: len(steps)}

	for _, step := range steps {
		if step.IsCompleted {
			progress.Completed++
		}
	}

	if progress.Total > 0 {
		progress.Percentage = float64(progress.Completed) / float64(progress.Total) * 100
	}

	return progress, nil
}

// Drain waits for in-flight notification goroutines. Used on shutdown and in
// tests; an in-flight notification dropped at process exit is acceptable.
func (e *Engine) Drain() {
	e.inflight.Wait()
}

func (e *Engine) notifyCompleted(step *models.WorkflowStep) {
	defer e.inflight.Done()

	// The caller's request context is long gone by the time this runs;
	// bound the whole notification attempt independently.
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	tctx, err := e.txns.GetContext(ctx, step.TransactionID)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load transaction context for notification",
			"step_id", step.ID,
			"transaction_id", step.TransactionID,
			"error", err,
		)

		return
	}

	request, ok := e.dispatcher.Decide(step, tctx)
	if !ok {
		return
	}

	backoff := retry.WithMaxRetries(notifyMaxRetries, retry.NewExponential(notifyRetryBackoff))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(e.notifier.Send(ctx, request))
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "giving up on step completion notification",
			"step_id", step.ID,
			"step_name", step.StepName,
			"kind", request.Kind,
			"error", err,
		)
	}
}
