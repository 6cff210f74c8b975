package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyUnit is a rentable sub-division of a property. InvestorID is a
// weak reference: the unit exists whether or not anyone is assigned.
type PropertyUnit struct {
	ID           uuid.UUID        `json:"id"`
	PropertyID   uuid.UUID        `json:"property_id"`
	InvestorID   *uuid.UUID       `json:"investor_id,omitempty"`
	UnitNumber   string           `json:"unit_number"`
	Floor        *int             `json:"floor,omitempty"`
	SizeSqm      float64          `json:"size_sqm"`
	Bedrooms     int              `json:"bedrooms"`
	Bathrooms    int              `json:"bathrooms"`
	RentalStatus RentalStatusType `json:"rental_status"`
	MonthlyRent  *float64         `json:"monthly_rent,omitempty"`
	TenantName   *string          `json:"tenant_name,omitempty"`
	LeaseStart   *time.Time       `json:"lease_start,omitempty"`
	LeaseEnd     *time.Time       `json:"lease_end,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
