package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)
}

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO properties (
			id, name, address, city, country, property_type, description,
			total_units, purchase_price, size_sqm, year_built, expected_monthly_rent, image_url,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW(), NOW())
	`,
		p.ID, p.Name, p.Address, p.City, p.Country, p.PropertyType, p.Description,
		p.TotalUnits, p.PurchasePrice, p.SizeSqm, p.YearBuilt, p.ExpectedMonthlyRent, p.ImageURL,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectProperty() string {
	return `
		SELECT
			id, name, address, city, country, property_type, description,
			total_units, purchase_price, size_sqm, year_built, expected_monthly_rent, image_url,
			created_at, updated_at
		FROM properties`
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.City, &p.Country, &p.PropertyType, &p.Description,
		&p.TotalUnits, &p.PurchasePrice, &p.SizeSqm, &p.YearBuilt, &p.ExpectedMonthlyRent, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
