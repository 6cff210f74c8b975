package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// PropertyAnalysisRepository is append-only; rows are never updated or deleted.
type PropertyAnalysisRepository interface {
	Create(ctx context.Context, a *models.PropertyAnalysis) error
	GetLatestByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyAnalysis, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyAnalysis, error)
}

type propertyAnalysisRepo struct {
	db DB
}

func NewPropertyAnalysisRepository(db DB) PropertyAnalysisRepository {
	return &propertyAnalysisRepo{db: db}
}

// analysisRow mirrors the property_analyses columns as stored.
type analysisRow struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	Score              float64
	Recommendation     string
	ROI                *string
	Appreciation       *string
	RentalIncome       *string
	CapRate            *string
	IdealPurchasePrice *string
	Reasoning          *string
	Analysis           []byte
	Provider           string
	Model              string
	CreatedBy          string
	CreatedAt          time.Time
}

func (r *propertyAnalysisRepo) Create(ctx context.Context, a *models.PropertyAnalysis) error {
	row, err := encodeAnalysisRow(a)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO property_analyses (
			id, property_id, score, recommendation,
			roi, appreciation, rental_income, cap_rate, ideal_purchase_price,
			reasoning, analysis, provider, model, created_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		row.ID, row.PropertyID, row.Score, row.Recommendation,
		row.ROI, row.Appreciation, row.RentalIncome, row.CapRate, row.IdealPurchasePrice,
		row.Reasoning, row.Analysis, row.Provider, row.Model, row.CreatedBy, row.CreatedAt,
	)
	return err
}

func (r *propertyAnalysisRepo) GetLatestByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyAnalysis, error) {
	row := r.db.QueryRow(ctx, baseSelectAnalysis()+`
		WHERE property_id=$1
		ORDER BY created_at DESC
		LIMIT 1`, propertyID)
	return scanAnalysis(row)
}

func (r *propertyAnalysisRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyAnalysis, error) {
	rows, err := r.db.Query(ctx, baseSelectAnalysis()+`
		WHERE property_id=$1
		ORDER BY created_at DESC`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func baseSelectAnalysis() string {
	return `
		SELECT
			id, property_id, score, recommendation,
			roi, appreciation, rental_income, cap_rate, ideal_purchase_price,
			reasoning, analysis, provider, model, created_by, created_at
		FROM property_analyses`
}

func scanAnalysis(row pgx.Row) (*models.PropertyAnalysis, error) {
	var ar analysisRow
	if err := row.Scan(
		&ar.ID, &ar.PropertyID, &ar.Score, &ar.Recommendation,
		&ar.ROI, &ar.Appreciation, &ar.RentalIncome, &ar.CapRate, &ar.IdealPurchasePrice,
		&ar.Reasoning, &ar.Analysis, &ar.Provider, &ar.Model, &ar.CreatedBy, &ar.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return decodeAnalysisRow(ar)
}

func encodeAnalysisRow(a *models.PropertyAnalysis) (analysisRow, error) {
	blob, err := json.Marshal(a.AnalysisResult)
	if err != nil {
		return analysisRow{}, fmt.Errorf("marshal analysis blob: %w", err)
	}
	return analysisRow{
		ID:                 a.ID,
		PropertyID:         a.PropertyID,
		Score:              a.Score,
		Recommendation:     string(a.Recommendation),
		ROI:                utils.Ptr(utils.FormatDecimalText(a.FinancialMetrics.ROI)),
		Appreciation:       utils.Ptr(utils.FormatDecimalText(a.FinancialMetrics.Appreciation)),
		RentalIncome:       utils.Ptr(utils.FormatDecimalText(a.FinancialMetrics.RentalIncome)),
		CapRate:            utils.Ptr(utils.FormatDecimalText(a.FinancialMetrics.CapRate)),
		IdealPurchasePrice: utils.Ptr(utils.FormatDecimalText(a.IdealPurchasePrice)),
		Reasoning:          utils.Ptr(a.Reasoning),
		Analysis:           blob,
		Provider:           a.Provider,
		Model:              a.Model,
		CreatedBy:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
	}, nil
}

// decodeAnalysisRow rebuilds a PropertyAnalysis. The scalar columns win over
// the blob for the fields they duplicate. Any value that cannot be read back
// rejects the whole row with ErrMalformedAnalysisRow.
func decodeAnalysisRow(ar analysisRow) (*models.PropertyAnalysis, error) {
	var result models.AnalysisResult
	if len(ar.Analysis) > 0 {
		if err := json.Unmarshal(ar.Analysis, &result); err != nil {
			return nil, fmt.Errorf("%w: analysis %s blob: %v", utils.ErrMalformedAnalysisRow, ar.ID, err)
		}
	}

	rec := models.RecommendationType(strings.ToUpper(strings.TrimSpace(ar.Recommendation)))
	if !rec.Valid() {
		return nil, fmt.Errorf("%w: analysis %s recommendation %q", utils.ErrMalformedAnalysisRow, ar.ID, ar.Recommendation)
	}

	numeric := []struct {
		name string
		src  *string
		dst  *float64
	}{
		{"roi", ar.ROI, &result.FinancialMetrics.ROI},
		{"appreciation", ar.Appreciation, &result.FinancialMetrics.Appreciation},
		{"rental_income", ar.RentalIncome, &result.FinancialMetrics.RentalIncome},
		{"cap_rate", ar.CapRate, &result.FinancialMetrics.CapRate},
		{"ideal_purchase_price", ar.IdealPurchasePrice, &result.IdealPurchasePrice},
	}
	for _, n := range numeric {
		v, err := utils.ParseDecimalText(n.src)
		if err != nil {
			return nil, fmt.Errorf("%w: analysis %s column %s: %v", utils.ErrMalformedAnalysisRow, ar.ID, n.name, err)
		}
		*n.dst = v
	}

	result.Score = ar.Score
	result.Recommendation = rec
	result.Reasoning = utils.Val(ar.Reasoning)

	return &models.PropertyAnalysis{
		AnalysisResult: result,
		ID:             ar.ID,
		PropertyID:     ar.PropertyID,
		Provider:       ar.Provider,
		Model:          ar.Model,
		CreatedBy:      ar.CreatedBy,
		CreatedAt:      ar.CreatedAt,
	}, nil
}
