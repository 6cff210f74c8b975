package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

type mockInvestorRepo struct{ mock.Mock }

func (m *mockInvestorRepo) Create(ctx context.Context, inv *models.Investor) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInvestorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Investor, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*models.Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepo) GetByUserID(ctx context.Context, userID string) (*models.Investor, error) {
	args := m.Called(ctx, userID)
	inv, _ := args.Get(0).(*models.Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepo) ListAll(ctx context.Context) ([]*models.Investor, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*models.Investor)
	return list, args.Error(1)
}

func (m *mockInvestorRepo) UpdateIfVersion(ctx context.Context, inv *models.Investor, expected int64) (pgconn.CommandTag, error) {
	args := m.Called(ctx, inv, expected)
	tag, _ := args.Get(0).(pgconn.CommandTag)
	return tag, args.Error(1)
}

func (m *mockInvestorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Investor) error) error {
	return m.Called(ctx, id, mutate).Error(0)
}

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Property)
	return p, args.Error(1)
}

func (m *mockPropertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*models.Property)
	return list, args.Error(1)
}

type mockUnitRepo struct{ mock.Mock }

func (m *mockUnitRepo) Create(ctx context.Context, u *models.PropertyUnit) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUnitRepo) CreateMany(ctx context.Context, list []models.PropertyUnit) error {
	return m.Called(ctx, list).Error(0)
}

func (m *mockUnitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.PropertyUnit)
	return u, args.Error(1)
}

func (m *mockUnitRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.PropertyUnit, error) {
	args := m.Called(ctx, investorID)
	list, _ := args.Get(0).([]*models.PropertyUnit)
	return list, args.Error(1)
}

func (m *mockUnitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyUnit, error) {
	args := m.Called(ctx, propID)
	list, _ := args.Get(0).([]*models.PropertyUnit)
	return list, args.Error(1)
}

func (m *mockUnitRepo) AssignInvestor(ctx context.Context, unitID uuid.UUID, investorID *uuid.UUID) error {
	return m.Called(ctx, unitID, investorID).Error(0)
}

type mockMilestoneRepo struct{ mock.Mock }

func (m *mockMilestoneRepo) Create(ctx context.Context, ms *models.Milestone) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *mockMilestoneRepo) CreateMany(ctx context.Context, list []models.Milestone) error {
	return m.Called(ctx, list).Error(0)
}

func (m *mockMilestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*models.Milestone)
	return ms, args.Error(1)
}

func (m *mockMilestoneRepo) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*models.Milestone, error) {
	args := m.Called(ctx, investorID)
	list, _ := args.Get(0).([]*models.Milestone)
	return list, args.Error(1)
}

func (m *mockMilestoneRepo) CountByInvestorID(ctx context.Context, investorID uuid.UUID) (int, error) {
	args := m.Called(ctx, investorID)
	return args.Int(0), args.Error(1)
}

func (m *mockMilestoneRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MilestoneStatusType, completedDate *time.Time) error {
	return m.Called(ctx, id, status, completedDate).Error(0)
}

func (m *mockMilestoneRepo) ListOverdue(ctx context.Context, now time.Time) ([]*models.Milestone, error) {
	args := m.Called(ctx, now)
	list, _ := args.Get(0).([]*models.Milestone)
	return list, args.Error(1)
}

type mockAnalysisRepo struct{ mock.Mock }

func (m *mockAnalysisRepo) Create(ctx context.Context, a *models.PropertyAnalysis) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAnalysisRepo) GetLatestByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyAnalysis, error) {
	args := m.Called(ctx, propertyID)
	a, _ := args.Get(0).(*models.PropertyAnalysis)
	return a, args.Error(1)
}

func (m *mockAnalysisRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyAnalysis, error) {
	args := m.Called(ctx, propertyID)
	list, _ := args.Get(0).([]*models.PropertyAnalysis)
	return list, args.Error(1)
}

// stubScorer returns a canned reply.
type stubScorer struct {
	reply      string
	err        error
	configured bool
	calls      int
}

func (s *stubScorer) Provider() string { return "stub" }
func (s *stubScorer) Model() string    { return "stub-1" }
func (s *stubScorer) Configured() bool { return s.configured }

func (s *stubScorer) Score(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}
