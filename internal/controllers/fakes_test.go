package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

type fakeInvestorRepo struct {
	byUserID map[string]*models.Investor
}

func (f *fakeInvestorRepo) Create(ctx context.Context, inv *models.Investor) error { return nil }

func (f *fakeInvestorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Investor, error) {
	for _, inv := range f.byUserID {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvestorRepo) GetByUserID(ctx context.Context, userID string) (*models.Investor, error) {
	return f.byUserID[userID], nil
}

func (f *fakeInvestorRepo) ListAll(ctx context.Context) ([]*models.Investor, error) {
	var out []*models.Investor
	for _, inv := range f.byUserID {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvestorRepo) UpdateIfVersion(ctx context.Context, inv *models.Investor, expected int64) (pgconn.CommandTag, error) {
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeInvestorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Investor) error) error {
	inv, _ := f.GetByID(ctx, id)
	if inv == nil {
		return errors.New("not found")
	}
	return mutate(inv)
}

type fakeUnitRepo struct {
	byInvestor map[uuid.UUID][]*models.PropertyUnit
	err        error
}

func (f *fakeUnitRepo) Create(ctx context.Context, u *models.PropertyUnit) error         { return nil }
func (f *fakeUnitRepo) CreateMany(ctx context.Context, list []models.PropertyUnit) error { return nil }
func (f *fakeUnitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyUnit, error) {
	return nil, nil
}

func (f *fakeUnitRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.PropertyUnit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byInvestor[investorID], nil
}

func (f *fakeUnitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyUnit, error) {
	return nil, nil
}

func (f *fakeUnitRepo) AssignInvestor(ctx context.Context, unitID uuid.UUID, investorID *uuid.UUID) error {
	return nil
}

type fakeMilestoneRepo struct{}

func (f *fakeMilestoneRepo) Create(ctx context.Context, m *models.Milestone) error         { return nil }
func (f *fakeMilestoneRepo) CreateMany(ctx context.Context, list []models.Milestone) error { return nil }
func (f *fakeMilestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error) {
	return nil, nil
}

func (f *fakeMilestoneRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.Milestone, error) {
	return []*models.Milestone{
		{Title: "Approval", OrderNumber: 5, Status: models.MilestoneStatusPending},
		{Title: "Investment Transfer", OrderNumber: 1, Status: models.MilestoneStatusCompleted},
	}, nil
}

func (f *fakeMilestoneRepo) CountByInvestorID(ctx context.Context, investorID uuid.UUID) (int, error) {
	return 2, nil
}

func (f *fakeMilestoneRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MilestoneStatusType, completedDate *time.Time) error {
	return nil
}

func (f *fakeMilestoneRepo) ListOverdue(ctx context.Context, now time.Time) ([]*models.Milestone, error) {
	return nil, nil
}

type fakeAnalysisRepo struct {
	latest *models.PropertyAnalysis
	err    error
}

func (f *fakeAnalysisRepo) Create(ctx context.Context, a *models.PropertyAnalysis) error { return nil }

func (f *fakeAnalysisRepo) GetLatestByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyAnalysis, error) {
	return f.latest, f.err
}

func (f *fakeAnalysisRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyAnalysis, error) {
	if f.latest == nil {
		return nil, f.err
	}
	return []*models.PropertyAnalysis{f.latest}, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }
