package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	Country             string    `json:"country"`
	PropertyType        string    `json:"property_type"`
	Description         *string   `json:"description,omitempty"`
	TotalUnits          int       `json:"total_units"`
	PurchasePrice       *float64  `json:"purchase_price,omitempty"`
	SizeSqm             *float64  `json:"size_sqm,omitempty"`
	YearBuilt           *int      `json:"year_built,omitempty"`
	ExpectedMonthlyRent *float64  `json:"expected_monthly_rent,omitempty"`
	ImageURL            *string   `json:"image_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
