package models

import "time"

type TransactionType string

const (
	TransactionTypeInpatient  TransactionType = "inpatient"
	TransactionTypeOutpatient TransactionType = "outpatient"
	TransactionTypeRetrospec  TransactionType = "retrospec"
	TransactionTypeMerch      TransactionType = "merch"
)

type Transaction struct {
	ID             string          `json:"transaction_id"`
	TransactionNum int             `json:"transaction_num"`
	Type           TransactionType `json:"transaction_type" validate:"required"`
	CustomerID     *string         `json:"customer_id,omitempty"`
	BikeID         *string         `json:"bike_id,omitempty"`
	TotalCost      float64         `json:"total_cost"`
	Description    string          `json:"description"`
	IsCompleted    bool            `json:"is_completed"`
	IsPaid         bool            `json:"is_paid"`
	IsRefurb       bool            `json:"is_refurb"`
	IsUrgent       bool            `json:"is_urgent"`
	DateCreated    time.Time       `json:"date_created"`
	DateCompleted  *time.Time      `json:"date_completed,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionContext is the denormalized snapshot handed to the notification
// dispatcher when a workflow step completes. Bike and Customer are nil when
// the transaction has no such relation; renderers must fall back to
// placeholder text rather than fail.
type TransactionContext struct {
	TransactionID  string           `json:"transaction_id"`
	TransactionNum int              `json:"transaction_num"`
	TotalCost      float64          `json:"total_cost"`
	IsCompleted    bool             `json:"is_completed"`
	IsPaid         bool             `json:"is_paid"`
	Bike           *BikeSummary     `json:"bike,omitempty"`
	Customer       *CustomerSummary `json:"customer,omitempty"`
}

type BikeSummary struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	Condition string `json:"condition"`
}

type CustomerSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
