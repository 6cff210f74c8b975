package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// SentinelPropertyID is used to check if seeding has already occurred.
const SentinelPropertyID = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaa1"

const (
	DemoInvestorID     = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbb1"
	DemoInvestorUserID = "00000000-0000-4000-8000-00000000d001"
)

// SeedDemoData creates one property with units, a demo investor owning two
// of them, and the visa milestone sequence. It is idempotent.
func SeedDemoData(
	ctx context.Context,
	investorRepo repositories.InvestorRepository,
	propRepo repositories.PropertyRepository,
	unitRepo repositories.UnitRepository,
	milestoneRepo repositories.MilestoneRepository,
) error {
	propID := uuid.MustParse(SentinelPropertyID)
	if existing, err := propRepo.GetByID(ctx, propID); err != nil {
		return fmt.Errorf("check sentinel property: %w", err)
	} else if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	now := time.Now().UTC()
	visaStart := now.AddDate(0, -7, 0)
	onboarding := visaStart.AddDate(0, 0, -21)

	prop := &models.Property{
		ID:                  propID,
		Name:                "Edificio Alfama Residences",
		Address:             "Rua dos Remedios 112",
		City:                "Lisbon",
		Country:             "Portugal",
		PropertyType:        "residential",
		Description:         utils.Ptr("Restored 1920s building with four rental apartments near the river."),
		TotalUnits:          4,
		PurchasePrice:       utils.Ptr(1150000.0),
		SizeSqm:             utils.Ptr(310.0),
		YearBuilt:           utils.Ptr(1924),
		ExpectedMonthlyRent: utils.Ptr(5200.0),
	}
	if err := propRepo.Create(ctx, prop); err != nil {
		return fmt.Errorf("seed property: %w", err)
	}

	inv := &models.Investor{
		ID:                   uuid.MustParse(DemoInvestorID),
		UserID:               DemoInvestorUserID,
		FullName:             "Demo Investor",
		Email:                "demo.investor@example.com",
		Nationality:          utils.Ptr("US"),
		InvestmentAmount:     500000,
		RealEstateAllocation: 250000,
		RDAllocation:         250000,
		KYCStatus:            models.KYCStatusApproved,
		VisaStatus:           models.VisaStatusInProgress,
		OnboardingDate:       &onboarding,
		VisaStartDate:        &visaStart,
	}
	if err := investorRepo.Create(ctx, inv); err != nil {
		return fmt.Errorf("seed investor: %w", err)
	}

	leaseStart := visaStart
	leaseEnd := leaseStart.AddDate(1, 0, 0)
	units := []models.PropertyUnit{
		{ID: uuid.New(), PropertyID: propID, InvestorID: &inv.ID, UnitNumber: "1A", Floor: utils.Ptr(1), SizeSqm: 72, Bedrooms: 2, Bathrooms: 1,
			RentalStatus: models.RentalStatusRented, MonthlyRent: utils.Ptr(1200.0), TenantName: utils.Ptr("M. Costa"), LeaseStart: &leaseStart, LeaseEnd: &leaseEnd},
		{ID: uuid.New(), PropertyID: propID, InvestorID: &inv.ID, UnitNumber: "1B", Floor: utils.Ptr(1), SizeSqm: 58, Bedrooms: 1, Bathrooms: 1,
			RentalStatus: models.RentalStatusRented, MonthlyRent: utils.Ptr(800.0), TenantName: utils.Ptr("J. Silva"), LeaseStart: &leaseStart, LeaseEnd: &leaseEnd},
		{ID: uuid.New(), PropertyID: propID, UnitNumber: "2A", Floor: utils.Ptr(2), SizeSqm: 95, Bedrooms: 3, Bathrooms: 2,
			RentalStatus: models.RentalStatusAvailable, MonthlyRent: utils.Ptr(1700.0)},
		{ID: uuid.New(), PropertyID: propID, UnitNumber: "2B", Floor: utils.Ptr(2), SizeSqm: 85, Bedrooms: 2, Bathrooms: 2,
			RentalStatus: models.RentalStatusMaintenance},
	}
	if err := unitRepo.CreateMany(ctx, units); err != nil {
		return fmt.Errorf("seed units: %w", err)
	}

	milestones := services.VisaMilestonesFor(inv.ID, onboarding)
	for i := range milestones {
		switch {
		case i < 2:
			done := onboarding.AddDate(0, 0, (i+1)*20)
			milestones[i].Status = models.MilestoneStatusCompleted
			milestones[i].CompletedDate = &done
		case i == 2:
			milestones[i].Status = models.MilestoneStatusCurrent
		default:
			milestones[i].Status = models.MilestoneStatusPending
		}
	}
	if err := milestoneRepo.CreateMany(ctx, milestones); err != nil {
		return fmt.Errorf("seed milestones: %w", err)
	}

	utils.Logger.Infof("Seeded demo property %s and investor %s", prop.ID, inv.ID)
	return nil
}
