package models

import "time"

type Bike struct {
	ID          string    `json:"bike_id"`
	Make        string    `json:"make" validate:"required"`
	Model       string    `json:"model" validate:"required"`
	Description string    `json:"description"`
	BikeType    string    `json:"bike_type"`
	SizeCm      float64   `json:"size_cm"`
	Condition   string    `json:"condition"`
	Price       float64   `json:"price"`
	Deposit     float64   `json:"deposit_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
