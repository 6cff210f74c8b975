package services

import (
	"context"
	"sort"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// InvestorDataService reads the caller's own records. Every call resolves
// identity, then investor, then the dependent rows.
type InvestorDataService struct {
	identity      *IdentityService
	unitRepo      repositories.UnitRepository
	milestoneRepo repositories.MilestoneRepository
}

func NewInvestorDataService(
	identity *IdentityService,
	unitRepo repositories.UnitRepository,
	milestoneRepo repositories.MilestoneRepository,
) *InvestorDataService {
	return &InvestorDataService{
		identity:      identity,
		unitRepo:      unitRepo,
		milestoneRepo: milestoneRepo,
	}
}

func (s *InvestorDataService) GetInvestor(ctx context.Context, id models.Identity) Lookup[*models.Investor] {
	return s.identity.ResolveInvestor(ctx, id)
}

func (s *InvestorDataService) GetUnits(ctx context.Context, id models.Identity) Lookup[[]*models.PropertyUnit] {
	inv := s.identity.ResolveInvestor(ctx, id)
	if !inv.Ok() {
		return Lookup[[]*models.PropertyUnit]{State: inv.State, Err: inv.Err}
	}
	units, err := s.unitRepo.ListByInvestorID(ctx, inv.Value.ID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("failed to list units for investor %s", inv.Value.ID)
		return Failed[[]*models.PropertyUnit](err)
	}
	if units == nil {
		units = []*models.PropertyUnit{}
	}
	return Found(units)
}

func (s *InvestorDataService) GetMilestones(ctx context.Context, id models.Identity) Lookup[[]*models.Milestone] {
	inv := s.identity.ResolveInvestor(ctx, id)
	if !inv.Ok() {
		return Lookup[[]*models.Milestone]{State: inv.State, Err: inv.Err}
	}
	list, err := s.milestoneRepo.ListByInvestorID(ctx, inv.Value.ID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("failed to list milestones for investor %s", inv.Value.ID)
		return Failed[[]*models.Milestone](err)
	}
	return Found(sortMilestones(list))
}

// sortMilestones orders by order_number ascending, keeping ties stable.
func sortMilestones(list []*models.Milestone) []*models.Milestone {
	if list == nil {
		return []*models.Milestone{}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].OrderNumber < list[j].OrderNumber
	})
	return list
}
