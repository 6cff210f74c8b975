package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type MilestoneRepository interface {
	Create(ctx context.Context, m *models.Milestone) error
	CreateMany(ctx context.Context, list []models.Milestone) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error)

	// ListByInvestorID returns the investor's milestones ordered by order_number.
	ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.Milestone, error)
	CountByInvestorID(ctx context.Context, investorID uuid.UUID) (int, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.MilestoneStatusType, completedDate *time.Time) error

	// ListOverdue returns open milestones whose due date is before `now`.
	ListOverdue(ctx context.Context, now time.Time) ([]*models.Milestone, error)
}

type milestoneRepo struct {
	db DB
}

func NewMilestoneRepository(db DB) MilestoneRepository {
	return &milestoneRepo{db: db}
}

func (r *milestoneRepo) Create(ctx context.Context, m *models.Milestone) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO milestones (
			id, investor_id, title, description, status, order_number,
			due_date, completed_date, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW())
	`,
		m.ID, m.InvestorID, m.Title, m.Description, string(m.Status), m.OrderNumber,
		m.DueDate, m.CompletedDate,
	)
	return err
}

// CreateMany writes the whole list in one INSERT, so either every row lands
// or none does. A clash on (investor_id, order_number) yields
// ErrMilestoneSequenceExists.
func (r *milestoneRepo) CreateMany(ctx context.Context, list []models.Milestone) error {
	if len(list) == 0 {
		return nil
	}
	const cols = 8
	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO milestones (
			id, investor_id, title, description, status, order_number,
			due_date, completed_date, created_at, updated_at
		) VALUES `)
	args := make([]any, 0, len(list)*cols)
	for i, m := range list {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * cols
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d, NOW(), NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		args = append(args,
			m.ID, m.InvestorID, m.Title, m.Description, string(m.Status), m.OrderNumber,
			m.DueDate, m.CompletedDate,
		)
	}

	if _, err := r.db.Exec(ctx, sb.String(), args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", utils.ErrMilestoneSequenceExists, err)
		}
		return err
	}
	return nil
}

func (r *milestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error) {
	row := r.db.QueryRow(ctx, baseSelectMilestone()+" WHERE id=$1", id)
	return scanMilestone(row)
}

func (r *milestoneRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.Milestone, error) {
	rows, err := r.db.Query(ctx, baseSelectMilestone()+" WHERE investor_id=$1 ORDER BY order_number ASC", investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMilestones(rows)
}

func (r *milestoneRepo) CountByInvestorID(ctx context.Context, investorID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM milestones WHERE investor_id=$1`, investorID).Scan(&n)
	return n, err
}

func (r *milestoneRepo) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status models.MilestoneStatusType,
	completedDate *time.Time,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE milestones
		SET status=$1, completed_date=$2, updated_at=NOW()
		WHERE id=$3`,
		string(status), completedDate, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *milestoneRepo) ListOverdue(ctx context.Context, now time.Time) ([]*models.Milestone, error) {
	rows, err := r.db.Query(ctx, baseSelectMilestone()+`
		WHERE status <> 'completed' AND due_date IS NOT NULL AND due_date < $1
		ORDER BY due_date ASC`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMilestones(rows)
}

func baseSelectMilestone() string {
	return `
		SELECT
			id, investor_id, title, description, status, order_number,
			due_date, completed_date, created_at, updated_at
		FROM milestones`
}

func scanMilestone(row pgx.Row) (*models.Milestone, error) {
	var m models.Milestone
	var status string
	if err := row.Scan(
		&m.ID, &m.InvestorID, &m.Title, &m.Description, &status, &m.OrderNumber,
		&m.DueDate, &m.CompletedDate, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	m.Status = models.MilestoneStatusType(status)
	return &m, nil
}

func scanMilestones(rows pgx.Rows) ([]*models.Milestone, error) {
	var out []*models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
