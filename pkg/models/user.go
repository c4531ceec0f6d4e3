package models

import "time"

// User is the referential target for WorkflowStep.CreatedBy/CompletedBy and
// transaction audit fields. Authentication lives outside this service.
type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username" validate:"required"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
