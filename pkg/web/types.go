// Package web provides HTTP request and response types for the shop API.
package web

// InitializeWorkflowRequest represents the request body for materializing the
// workflow steps of a transaction.
type InitializeWorkflowRequest struct {
	CreatedBy string `json:"created_by" validate:"required"`
}

// StepActionRequest represents the request body for completing or reopening a
// single workflow step.
type StepActionRequest struct {
	ActorID string `json:"actor_id" validate:"required"`
}
