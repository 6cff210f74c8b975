package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

type InvestorRepository interface {
	Create(ctx context.Context, inv *models.Investor) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Investor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Investor, error)
	ListAll(ctx context.Context) ([]*models.Investor, error)

	UpdateIfVersion(ctx context.Context, inv *models.Investor, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Investor) error) error
}

type investorRepo struct {
	versioned *versionedRepo[*models.Investor]
	db        DB
}

func NewInvestorRepository(db DB) InvestorRepository {
	return &investorRepo{
		versioned: newVersionedRepo(db, "investors", baseSelectInvestor()+" WHERE id=$1", scanInvestor),
		db:        db,
	}
}

func (r *investorRepo) Create(ctx context.Context, inv *models.Investor) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO investors (
			id, user_id, full_name, email, nationality,
			investment_amount, real_estate_allocation, rd_allocation,
			kyc_status, visa_status, onboarding_date, visa_start_date,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW(), 1)
	`,
		inv.ID, inv.UserID, inv.FullName, inv.Email, inv.Nationality,
		inv.InvestmentAmount, inv.RealEstateAllocation, inv.RDAllocation,
		string(inv.KYCStatus), string(inv.VisaStatus), inv.OnboardingDate, inv.VisaStartDate,
	)
	return err
}

func (r *investorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Investor, error) {
	return r.versioned.load(ctx, id.String())
}

// GetByUserID matches the external identity exactly. A nil result with a
// nil error means the identity is not an investor.
func (r *investorRepo) GetByUserID(ctx context.Context, userID string) (*models.Investor, error) {
	row := r.db.QueryRow(ctx, baseSelectInvestor()+" WHERE user_id=$1", userID)
	return scanInvestor(row)
}

func (r *investorRepo) ListAll(ctx context.Context) ([]*models.Investor, error) {
	rows, err := r.db.Query(ctx, baseSelectInvestor()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Investor
	for rows.Next() {
		inv, err := scanInvestor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *investorRepo) UpdateIfVersion(ctx context.Context, inv *models.Investor, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE investors SET
			full_name=$1, email=$2, nationality=$3,
			investment_amount=$4, real_estate_allocation=$5, rd_allocation=$6,
			kyc_status=$7, visa_status=$8, onboarding_date=$9, visa_start_date=$10,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$11 AND row_version=$12`,
		inv.FullName, inv.Email, inv.Nationality,
		inv.InvestmentAmount, inv.RealEstateAllocation, inv.RDAllocation,
		string(inv.KYCStatus), string(inv.VisaStatus), inv.OnboardingDate, inv.VisaStartDate,
		inv.ID, expected,
	)
}

func (r *investorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Investor) error) error {
	return r.versioned.updateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func baseSelectInvestor() string {
	return `
		SELECT
			id, user_id, full_name, email, nationality,
			investment_amount, real_estate_allocation, rd_allocation,
			kyc_status, visa_status, onboarding_date, visa_start_date,
			created_at, updated_at, row_version
		FROM investors`
}

func scanInvestor(row pgx.Row) (*models.Investor, error) {
	var inv models.Investor
	var kyc, visa string
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.FullName, &inv.Email, &inv.Nationality,
		&inv.InvestmentAmount, &inv.RealEstateAllocation, &inv.RDAllocation,
		&kyc, &visa, &inv.OnboardingDate, &inv.VisaStartDate,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	inv.KYCStatus = models.KYCStatusType(kyc)
	inv.VisaStatus = models.VisaStatusType(visa)
	return &inv, nil
}
