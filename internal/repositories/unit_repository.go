package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

type UnitRepository interface {
	Create(ctx context.Context, u *models.PropertyUnit) error
	CreateMany(ctx context.Context, list []models.PropertyUnit) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyUnit, error)
	ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.PropertyUnit, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyUnit, error)

	// AssignInvestor sets or clears (nil) the unit's investor reference.
	AssignInvestor(ctx context.Context, unitID uuid.UUID, investorID *uuid.UUID) error
}

type unitRepo struct {
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, u *models.PropertyUnit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO property_units (
			id, property_id, investor_id, unit_number, floor, size_sqm,
			bedrooms, bathrooms, rental_status, monthly_rent,
			tenant_name, lease_start, lease_end,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW(), NOW())
	`,
		u.ID, u.PropertyID, u.InvestorID, u.UnitNumber, u.Floor, u.SizeSqm,
		u.Bedrooms, u.Bathrooms, string(u.RentalStatus), u.MonthlyRent,
		u.TenantName, u.LeaseStart, u.LeaseEnd,
	)
	return err
}

func (r *unitRepo) CreateMany(ctx context.Context, list []models.PropertyUnit) error {
	for i := range list {
		if err := r.Create(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyUnit, error) {
	row := r.db.QueryRow(ctx, baseSelectUnit()+" WHERE id=$1", id)
	return scanUnit(row)
}

func (r *unitRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.PropertyUnit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE investor_id=$1 ORDER BY unit_number", investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyUnit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE property_id=$1 ORDER BY unit_number", propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) AssignInvestor(ctx context.Context, unitID uuid.UUID, investorID *uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE property_units SET investor_id=$1, updated_at=NOW() WHERE id=$2`, investorID, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectUnit() string {
	return `
		SELECT
			id, property_id, investor_id, unit_number, floor, size_sqm,
			bedrooms, bathrooms, rental_status, monthly_rent,
			tenant_name, lease_start, lease_end,
			created_at, updated_at
		FROM property_units`
}

func scanUnit(row pgx.Row) (*models.PropertyUnit, error) {
	var u models.PropertyUnit
	var status string
	if err := row.Scan(
		&u.ID, &u.PropertyID, &u.InvestorID, &u.UnitNumber, &u.Floor, &u.SizeSqm,
		&u.Bedrooms, &u.Bathrooms, &status, &u.MonthlyRent,
		&u.TenantName, &u.LeaseStart, &u.LeaseEnd,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.RentalStatus = models.RentalStatusType(status)
	return &u, nil
}

func scanUnits(rows pgx.Rows) ([]*models.PropertyUnit, error) {
	var out []*models.PropertyUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
