package models

import (
	"time"

	"github.com/google/uuid"
)

// Investor is the Golden Visa position held by one external identity.
// Investors are never deleted; only their statuses move.
type Investor struct {
	Versioned

	ID                   uuid.UUID      `json:"id"`
	UserID               string         `json:"user_id"`
	FullName             string         `json:"full_name"`
	Email                string         `json:"email"`
	Nationality          *string        `json:"nationality,omitempty"`
	InvestmentAmount     float64        `json:"investment_amount"`
	RealEstateAllocation float64        `json:"real_estate_allocation"`
	RDAllocation         float64        `json:"rd_allocation"`
	KYCStatus            KYCStatusType  `json:"kyc_status"`
	VisaStatus           VisaStatusType `json:"visa_status"`
	OnboardingDate       *time.Time     `json:"onboarding_date,omitempty"`
	VisaStartDate        *time.Time     `json:"visa_start_date,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (i *Investor) GetID() string {
	return i.ID.String()
}
