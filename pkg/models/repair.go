package models

import "time"

// Repair is a catalog entry for a repair service the shop offers, not a
// repair job in progress. Jobs are transactions of type "repair".
type Repair struct {
	ID          string    `json:"repair_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Disabled    bool      `json:"disabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
