package models

import "time"

type Item struct {
	ID            string    `json:"item_id"`
	Name          string    `json:"name" validate:"required"`
	UPC           string    `json:"upc"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	WholesaleCost float64   `json:"wholesale_cost"`
	StandardPrice float64   `json:"standard_price"`
	Stock         int       `json:"stock"`
	Disabled      bool      `json:"disabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
