// Package models defines the domain entities of the bike shop backend.
package models

import "time"

// WorkflowType identifies a category of multi-step business process.
// The set of types is fixed at compile time by the registry package.
type WorkflowType string

const (
	WorkflowTypeBikeSales     WorkflowType = "bike_sales"
	WorkflowTypeRepairProcess WorkflowType = "repair_process"
)

// StepDefinition is the canonical template for one step of a workflow type.
// StepOrder is a dense 1..N sequence within a workflow type.
type StepDefinition struct {
	WorkflowType WorkflowType `json:"workflow_type"`
	StepName     string       `json:"step_name"`
	StepOrder    int          `json:"step_order"`
}

// WorkflowStep is a stateful instance of a StepDefinition bound to one
// transaction. Name and order are snapshots taken at initialization time,
// not live references into the registry.
type WorkflowStep struct {
	ID            string       `json:"step_id"`
	TransactionID string       `json:"transaction_id"`
	WorkflowType  WorkflowType `json:"workflow_type"`
	StepName      string       `json:"step_name"`
	StepOrder     int          `json:"step_order"`
	IsCompleted   bool         `json:"is_completed"`
	CreatedBy     string       `json:"created_by"`
	CompletedBy   *string      `json:"completed_by,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// WorkflowProgress summarizes completion of a transaction's workflow instance.
type WorkflowProgress struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}
