package dtos

import "github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"

type ListPropertiesResponse struct {
	Properties []*models.Property `json:"properties"`
}

type PropertyDetailResponse struct {
	Property *models.Property       `json:"property"`
	Units    []*models.PropertyUnit `json:"units"`
}

type UnitsResponse struct {
	Status string                 `json:"status"`
	Units  []*models.PropertyUnit `json:"units"`
}

type MilestonesResponse struct {
	Status     string              `json:"status"`
	Milestones []*models.Milestone `json:"milestones"`
}

type InvestorResponse struct {
	Status   string           `json:"status"`
	Investor *models.Investor `json:"investor"`
}

type SessionResponse struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	IsInvestor bool   `json:"isInvestor"`
}
