package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

var fixedNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func TestBuildPortfolioSummaryScenario(t *testing.T) {
	start := fixedNow.AddDate(0, 0, -181)
	inv := &models.Investor{ID: uuid.New(), InvestmentAmount: 250000, VisaStartDate: &start}
	units := []*models.PropertyUnit{
		{MonthlyRent: utils.Ptr(1200.0), RentalStatus: models.RentalStatusRented},
		{MonthlyRent: utils.Ptr(800.0), RentalStatus: models.RentalStatusRented},
	}

	sum := BuildPortfolioSummary(inv, units, nil, fixedNow)
	assert.Equal(t, 2000.0, sum.MonthlyRent)
	assert.Equal(t, 6, sum.MonthsSinceStart)
	assert.InDelta(t, 9.6, sum.AnnualYield, 1e-9)
	assert.True(t, sum.YieldComputable)
	assert.Equal(t, 12000.0, sum.CumulativeReturns)
	assert.Equal(t, 2, sum.TotalUnits)
	assert.Equal(t, 2, sum.RentedUnits)
}

func TestBuildPortfolioSummaryNoUnits(t *testing.T) {
	start := fixedNow.AddDate(-1, 0, 0)
	inv := &models.Investor{ID: uuid.New(), InvestmentAmount: 500000, VisaStartDate: &start}

	sum := BuildPortfolioSummary(inv, nil, nil, fixedNow)
	assert.Zero(t, sum.MonthlyRent)
	assert.Zero(t, sum.AnnualYield)
	assert.Zero(t, sum.CumulativeReturns)
}

func TestBuildPortfolioSummaryZeroInvestment(t *testing.T) {
	inv := &models.Investor{ID: uuid.New()}
	units := []*models.PropertyUnit{{MonthlyRent: utils.Ptr(950.0)}, {MonthlyRent: nil}}

	sum := BuildPortfolioSummary(inv, units, nil, fixedNow)
	assert.Equal(t, 950.0, sum.MonthlyRent)
	assert.Zero(t, sum.AnnualYield)
	assert.False(t, sum.YieldComputable)
	assert.Zero(t, sum.MonthsSinceStart)
	assert.Zero(t, sum.CumulativeReturns)
}

func TestMonthsSinceClampsFutureStart(t *testing.T) {
	future := fixedNow.AddDate(0, 0, 40)
	assert.Zero(t, monthsSince(&future, fixedNow))
	assert.Zero(t, monthsSince(nil, fixedNow))

	justUnder := fixedNow.AddDate(0, 0, -29)
	assert.Zero(t, monthsSince(&justUnder, fixedNow))
	exact := fixedNow.AddDate(0, 0, -60)
	assert.Equal(t, 2, monthsSince(&exact, fixedNow))
}

func TestBuildPortfolioSummaryMilestoneCounts(t *testing.T) {
	inv := &models.Investor{ID: uuid.New(), InvestmentAmount: 1}
	ms := []*models.Milestone{
		{Title: "Investment Transfer", Status: models.MilestoneStatusCompleted, OrderNumber: 1},
		{Title: "Document Collection", Status: models.MilestoneStatusCurrent, OrderNumber: 2},
		{Title: "Application Submission", Status: models.MilestoneStatusPending, OrderNumber: 3},
	}
	sum := BuildPortfolioSummary(inv, nil, ms, fixedNow)
	assert.Equal(t, 3, sum.TotalMilestones)
	assert.Equal(t, 1, sum.CompletedMilestones)
	assert.Equal(t, "Document Collection", sum.CurrentMilestone)
}

func newPortfolioFixture(t *testing.T) (*PortfolioService, *mockInvestorRepo, *mockUnitRepo, *mockMilestoneRepo) {
	t.Helper()
	invRepo := new(mockInvestorRepo)
	unitRepo := new(mockUnitRepo)
	msRepo := new(mockMilestoneRepo)
	data := NewInvestorDataService(NewIdentityService(invRepo, nil), unitRepo, msRepo)
	return NewPortfolioService(data, func() time.Time { return fixedNow }), invRepo, unitRepo, msRepo
}

func TestGetPortfolioSummary(t *testing.T) {
	ctx := context.Background()
	svc, invRepo, unitRepo, msRepo := newPortfolioFixture(t)

	start := fixedNow.AddDate(0, 0, -181)
	inv := &models.Investor{ID: uuid.New(), UserID: "user-1", InvestmentAmount: 250000, VisaStartDate: &start}
	invRepo.On("GetByUserID", mock.Anything, "user-1").Return(inv, nil)
	unitRepo.On("ListByInvestorID", mock.Anything, inv.ID).Return([]*models.PropertyUnit{
		{MonthlyRent: utils.Ptr(1200.0)}, {MonthlyRent: utils.Ptr(800.0)},
	}, nil)
	msRepo.On("ListByInvestorID", mock.Anything, inv.ID).Return([]*models.Milestone{}, nil)

	got := svc.GetPortfolioSummary(ctx, models.Identity{UserID: "user-1"})
	require.True(t, got.Ok())
	assert.Equal(t, 12000.0, got.Value.CumulativeReturns)
	assert.Equal(t, inv.ID.String(), got.Value.InvestorID)
}

func TestGetPortfolioSummaryNoInvestor(t *testing.T) {
	svc, invRepo, _, _ := newPortfolioFixture(t)
	invRepo.On("GetByUserID", mock.Anything, "stranger").Return(nil, nil)

	got := svc.GetPortfolioSummary(context.Background(), models.Identity{UserID: "stranger"})
	assert.Equal(t, LookupNotFound, got.State)
	assert.Nil(t, got.Value)
}

func TestGetPortfolioSummaryUnitFailure(t *testing.T) {
	svc, invRepo, unitRepo, _ := newPortfolioFixture(t)
	inv := &models.Investor{ID: uuid.New(), UserID: "user-1"}
	invRepo.On("GetByUserID", mock.Anything, "user-1").Return(inv, nil)
	unitRepo.On("ListByInvestorID", mock.Anything, inv.ID).Return(nil, errors.New("db down"))

	got := svc.GetPortfolioSummary(context.Background(), models.Identity{UserID: "user-1"})
	assert.Equal(t, LookupFailed, got.State)
	assert.Error(t, got.Err)
}
