package models

import (
	"time"

	"github.com/google/uuid"
)

type FinancialMetrics struct {
	ROI          float64 `json:"roi"`
	Appreciation float64 `json:"appreciation"`
	RentalIncome float64 `json:"rentalIncome"`
	CapRate      float64 `json:"capRate"`
}

type LocationScore struct {
	Overall         float64 `json:"overall"`
	Accessibility   float64 `json:"accessibility"`
	Amenities       float64 `json:"amenities"`
	Safety          float64 `json:"safety"`
	GrowthPotential float64 `json:"growthPotential"`
}

type ComparableProperty struct {
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	SizeSqm float64 `json:"sizeSqm"`
}

type Comparables struct {
	AveragePricePerSqm float64              `json:"averagePricePerSqm"`
	PricePosition      string               `json:"pricePosition"`
	Properties         []ComparableProperty `json:"properties"`
}

// AnalysisResult is the structured body produced by a property scorer.
// It is also the shape of the denormalised blob stored with each row.
type AnalysisResult struct {
	Score              float64            `json:"score"`
	Recommendation     RecommendationType `json:"recommendation"`
	FinancialMetrics   FinancialMetrics   `json:"financialMetrics"`
	LocationScore      LocationScore      `json:"locationScore"`
	Risks              []string           `json:"risks"`
	Opportunities      []string           `json:"opportunities"`
	Comparables        Comparables        `json:"comparables"`
	IdealPurchasePrice float64            `json:"idealPurchasePrice"`
	Reasoning          string             `json:"reasoning"`
}

// PropertyAnalysis is one append-only scoring record for a property.
type PropertyAnalysis struct {
	AnalysisResult

	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AnalysisSummary is the audit view of a PropertyAnalysis.
type AnalysisSummary struct {
	ID             uuid.UUID          `json:"id"`
	Score          float64            `json:"score"`
	Recommendation RecommendationType `json:"recommendation"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
}

func (a *PropertyAnalysis) Summary() AnalysisSummary {
	return AnalysisSummary{
		ID:             a.ID,
		Score:          a.Score,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
	}
}
