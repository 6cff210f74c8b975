package services

import (
	"context"
	"math"
	"time"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type PortfolioService struct {
	data *InvestorDataService
	now  func() time.Time
}

func NewPortfolioService(data *InvestorDataService, now func() time.Time) *PortfolioService {
	if now == nil {
		now = time.Now
	}
	return &PortfolioService{data: data, now: now}
}

// GetPortfolioSummary is a pure read over the caller's investor, units and
// milestones.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, id models.Identity) Lookup[*dtos.PortfolioSummary] {
	inv := s.data.GetInvestor(ctx, id)
	if !inv.Ok() {
		return Lookup[*dtos.PortfolioSummary]{State: inv.State, Err: inv.Err}
	}
	units := s.data.GetUnits(ctx, id)
	if units.State == LookupFailed {
		return Failed[*dtos.PortfolioSummary](units.Err)
	}
	milestones := s.data.GetMilestones(ctx, id)
	if milestones.State == LookupFailed {
		return Failed[*dtos.PortfolioSummary](milestones.Err)
	}

	return Found(BuildPortfolioSummary(inv.Value, units.Value, milestones.Value, s.now()))
}

// BuildPortfolioSummary derives yield and returns. Rent is assumed constant
// since the visa start date.
func BuildPortfolioSummary(
	inv *models.Investor,
	units []*models.PropertyUnit,
	milestones []*models.Milestone,
	now time.Time,
) *dtos.PortfolioSummary {
	sum := &dtos.PortfolioSummary{
		InvestorID:           inv.ID.String(),
		FullName:             inv.FullName,
		InvestmentAmount:     inv.InvestmentAmount,
		RealEstateAllocation: inv.RealEstateAllocation,
		RDAllocation:         inv.RDAllocation,
		KYCStatus:            string(inv.KYCStatus),
		VisaStatus:           string(inv.VisaStatus),
		TotalUnits:           len(units),
		TotalMilestones:      len(milestones),
	}

	for _, u := range units {
		sum.MonthlyRent += utils.Val(u.MonthlyRent)
		if u.RentalStatus == models.RentalStatusRented {
			sum.RentedUnits++
		}
	}

	if inv.InvestmentAmount != 0 {
		sum.AnnualYield = sum.MonthlyRent * 12 / inv.InvestmentAmount * 100
		sum.YieldComputable = true
	}

	sum.MonthsSinceStart = monthsSince(inv.VisaStartDate, now)
	sum.CumulativeReturns = sum.MonthlyRent * float64(sum.MonthsSinceStart)

	for _, m := range milestones {
		switch m.Status {
		case models.MilestoneStatusCompleted:
			sum.CompletedMilestones++
		case models.MilestoneStatusCurrent:
			if sum.CurrentMilestone == "" {
				sum.CurrentMilestone = m.Title
			}
		}
	}
	return sum
}

func monthsSince(start *time.Time, now time.Time) int {
	if start == nil {
		return 0
	}
	days := math.Floor(now.Sub(*start).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return int(days) / constants.DaysPerMonth
}
