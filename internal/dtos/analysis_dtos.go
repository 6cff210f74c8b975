package dtos

import "github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"

type AnalyzeResponse struct {
	Analysis  *models.PropertyAnalysis `json:"analysis"`
	Persisted bool                     `json:"persisted"`
}

type LatestAnalysisResponse struct {
	Status   string                   `json:"status"`
	Analysis *models.PropertyAnalysis `json:"analysis"`
}

type AnalysisHistoryResponse struct {
	PropertyID string                   `json:"propertyId"`
	History    []models.AnalysisSummary `json:"history"`
}
