// Package events defines event types for workflow step lifecycle notifications.
package events

import (
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

type EventType string

const Topic = "ricebikes.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	StepCompletedEvent         EventType = "workflow.step.completed"
	NotificationRequestedEvent EventType = "notification.requested"
)

type BaseEvent struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	TransactionID string    `json:"transaction_id"`
}

// StepCompleted is emitted when a workflow step transitions to completed.
type StepCompleted struct {
	BaseEvent

	StepID       string              `json:"step_id"`
	StepName     string              `json:"step_name"`
	StepOrder    int                 `json:"step_order"`
	WorkflowType models.WorkflowType `json:"workflow_type"`
	CompletedBy  string              `json:"completed_by"`
}

func (s StepCompleted) GetType() EventType {
	return StepCompletedEvent
}

// NotificationRequested carries a dispatcher decision toward whatever
// delivery channel is subscribed downstream.
type NotificationRequested struct {
	BaseEvent

	Request models.NotificationRequest `json:"request"`
}

func (n NotificationRequested) GetType() EventType {
	return NotificationRequestedEvent
}
