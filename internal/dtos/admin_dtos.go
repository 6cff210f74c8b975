package dtos

import "github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"

type AdminInvestorDetail struct {
	Investor   *models.Investor       `json:"investor"`
	Units      []*models.PropertyUnit `json:"units"`
	Milestones []*models.Milestone    `json:"milestones"`
}

type ListInvestorsResponse struct {
	Investors []*models.Investor `json:"investors"`
}

// UpdateInvestorStatusRequest changes either or both statuses.
type UpdateInvestorStatusRequest struct {
	KYCStatus  *string `json:"kycStatus,omitempty" validate:"omitempty,oneof=pending in_review approved rejected"`
	VisaStatus *string `json:"visaStatus,omitempty" validate:"omitempty,oneof=not_started in_progress approved rejected"`
}

// AssignUnitRequest assigns the unit to InvestorID, or unassigns when it is null.
type AssignUnitRequest struct {
	InvestorID *string `json:"investorId" validate:"omitempty,uuid"`
}

type SetMilestoneStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending current completed"`
}

type InitMilestonesResponse struct {
	Created    bool                `json:"created"`
	Milestones []*models.Milestone `json:"milestones"`
}
