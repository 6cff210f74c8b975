package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const analysisSystemPrompt = `You are a real-estate investment analyst for Portuguese Golden Visa portfolios.
Answer with a single JSON object and nothing else. Use this shape:
{"score": 0-100, "recommendation": "BUY"|"REVIEW"|"REJECT",
 "financialMetrics": {"roi": number, "appreciation": number, "rentalIncome": number, "capRate": number},
 "locationScore": {"overall": number, "accessibility": number, "amenities": number, "safety": number, "growthPotential": number},
 "risks": [string], "opportunities": [string],
 "comparables": {"averagePricePerSqm": number, "pricePosition": string, "properties": [{"address": string, "price": number, "sizeSqm": number}]},
 "idealPurchasePrice": number, "reasoning": string}
Percentages are plain numbers (6.5 means 6.5%). Monetary values are in EUR.`

type AnalysisService struct {
	propRepo     repositories.PropertyRepository
	unitRepo     repositories.UnitRepository
	analysisRepo repositories.PropertyAnalysisRepository
	scorer       PropertyScorer
	now          func() time.Time
}

func NewAnalysisService(
	propRepo repositories.PropertyRepository,
	unitRepo repositories.UnitRepository,
	analysisRepo repositories.PropertyAnalysisRepository,
	scorer PropertyScorer,
	now func() time.Time,
) *AnalysisService {
	if now == nil {
		now = time.Now
	}
	return &AnalysisService{
		propRepo:     propRepo,
		unitRepo:     unitRepo,
		analysisRepo: analysisRepo,
		scorer:       scorer,
		now:          now,
	}
}

// Analyze scores a property and appends the result. A failed insert does not
// fail the call; the analysis comes back with Persisted=false.
func (s *AnalysisService) Analyze(ctx context.Context, operator models.Identity, propertyID uuid.UUID) (*dtos.AnalyzeResponse, error) {
	if s.scorer == nil || !s.scorer.Configured() {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeConfiguration,
			Message:    "Property scoring is not configured",
			Err:        utils.ErrScorerNotConfigured,
		}
	}

	prop, err := s.propRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Could not load property",
			Err:        err,
		}
	}
	if prop == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Property not found",
		}
	}
	units, err := s.unitRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Could not load property units",
			Err:        err,
		}
	}

	reply, err := s.scorer.Score(ctx, analysisSystemPrompt, BuildAnalysisPrompt(prop, units))
	if err != nil {
		if errors.Is(err, utils.ErrScorerNotConfigured) {
			return nil, &utils.AppError{
				StatusCode: http.StatusInternalServerError,
				Code:       utils.ErrCodeConfiguration,
				Message:    "Property scoring is not configured",
				Err:        err,
			}
		}
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Property scoring service failed",
			Err:        err,
		}
	}

	result, err := ParseAnalysisReply(reply)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Property scoring service returned an invalid analysis",
			Err:        err,
		}
	}

	analysis := &models.PropertyAnalysis{
		AnalysisResult: *result,
		ID:             uuid.New(),
		PropertyID:     propertyID,
		Provider:       s.scorer.Provider(),
		Model:          s.scorer.Model(),
		CreatedBy:      operator.UserID,
		CreatedAt:      s.now().UTC(),
	}

	persisted := true
	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		persisted = false
		utils.Logger.WithError(err).WithField("property_id", propertyID).
			Warn("analysis scored but could not be persisted")
	}

	return &dtos.AnalyzeResponse{Analysis: analysis, Persisted: persisted}, nil
}

func (s *AnalysisService) GetLatest(ctx context.Context, propertyID uuid.UUID) Lookup[*models.PropertyAnalysis] {
	a, err := s.analysisRepo.GetLatestByPropertyID(ctx, propertyID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("failed to load latest analysis for property %s", propertyID)
		return Failed[*models.PropertyAnalysis](err)
	}
	if a == nil {
		return NotFound[*models.PropertyAnalysis]()
	}
	return Found(a)
}

// GetHistory lists summaries newest first.
func (s *AnalysisService) GetHistory(ctx context.Context, propertyID uuid.UUID) ([]models.AnalysisSummary, error) {
	list, err := s.analysisRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]models.AnalysisSummary, 0, len(list))
	for _, a := range list {
		out = append(out, a.Summary())
	}
	return out, nil
}

// BuildAnalysisPrompt renders the property's descriptive and financial fields.
func BuildAnalysisPrompt(p *models.Property, units []*models.PropertyUnit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyse this property for a Golden Visa investor.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Address: %s, %s, %s\n", p.Address, p.City, p.Country)
	fmt.Fprintf(&b, "Type: %s\n", p.PropertyType)
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", *p.Description)
	}
	fmt.Fprintf(&b, "Total units: %d\n", p.TotalUnits)
	if p.PurchasePrice != nil {
		fmt.Fprintf(&b, "Purchase price: EUR %s\n", utils.FormatDecimalText(*p.PurchasePrice))
	}
	if p.SizeSqm != nil {
		fmt.Fprintf(&b, "Size: %s sqm\n", utils.FormatDecimalText(*p.SizeSqm))
	}
	if p.YearBuilt != nil {
		fmt.Fprintf(&b, "Year built: %d\n", *p.YearBuilt)
	}
	if p.ExpectedMonthlyRent != nil {
		fmt.Fprintf(&b, "Expected monthly rent: EUR %s\n", utils.FormatDecimalText(*p.ExpectedMonthlyRent))
	}

	if len(units) > 0 {
		var rent float64
		var rented int
		b.WriteString("\nUnits:\n")
		for _, u := range units {
			r := utils.Val(u.MonthlyRent)
			rent += r
			if u.RentalStatus == models.RentalStatusRented {
				rented++
			}
			fmt.Fprintf(&b, "- %s: %s sqm, %d bed, %d bath, %s, rent EUR %s\n",
				u.UnitNumber, utils.FormatDecimalText(u.SizeSqm), u.Bedrooms, u.Bathrooms,
				u.RentalStatus, utils.FormatDecimalText(r))
		}
		fmt.Fprintf(&b, "Occupancy: %d/%d rented, current monthly rent EUR %s\n", rented, len(units), utils.FormatDecimalText(rent))
	}
	return b.String()
}

// ParseAnalysisReply extracts and validates the JSON object in a model reply.
// Surrounding prose and code fences are ignored.
func ParseAnalysisReply(reply string) (*models.AnalysisResult, error) {
	body := strings.TrimSpace(reply)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	start := strings.Index(body, "{")
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON object in reply", utils.ErrScorerUpstream)
	}

	var raw struct {
		models.AnalysisResult
		Recommendation string `json:"recommendation"`
	}
	// Decode stops after the first complete object; trailing prose is ignored.
	if err := json.NewDecoder(strings.NewReader(body[start:])).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode reply: %v", utils.ErrScorerUpstream, err)
	}

	rec := models.RecommendationType(strings.ToUpper(strings.TrimSpace(raw.Recommendation)))
	if !rec.Valid() {
		return nil, fmt.Errorf("%w: unknown recommendation %q", utils.ErrScorerUpstream, raw.Recommendation)
	}
	if math.IsNaN(raw.Score) || raw.Score < 0 || raw.Score > 100 {
		return nil, fmt.Errorf("%w: score %v out of range", utils.ErrScorerUpstream, raw.Score)
	}

	result := raw.AnalysisResult
	result.Recommendation = rec
	if result.Risks == nil {
		result.Risks = []string{}
	}
	if result.Opportunities == nil {
		result.Opportunities = []string{}
	}
	return &result, nil
}
