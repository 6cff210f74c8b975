package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const milestoneSpacingDays = 30

// AdminService backs the operator endpoints. Callers are already checked
// against the admin allow-list.
type AdminService struct {
	investorRepo  repositories.InvestorRepository
	unitRepo      repositories.UnitRepository
	milestoneRepo repositories.MilestoneRepository
	now           func() time.Time
}

func NewAdminService(
	investorRepo repositories.InvestorRepository,
	unitRepo repositories.UnitRepository,
	milestoneRepo repositories.MilestoneRepository,
	now func() time.Time,
) *AdminService {
	if now == nil {
		now = time.Now
	}
	return &AdminService{
		investorRepo:  investorRepo,
		unitRepo:      unitRepo,
		milestoneRepo: milestoneRepo,
		now:           now,
	}
}

func notFound(msg string) *utils.AppError {
	return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: msg}
}

func internalErr(msg string, err error) *utils.AppError {
	return &utils.AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: msg, Err: err}
}

func (s *AdminService) ListInvestors(ctx context.Context) ([]*models.Investor, error) {
	list, err := s.investorRepo.ListAll(ctx)
	if err != nil {
		return nil, internalErr("Could not list investors", err)
	}
	if list == nil {
		list = []*models.Investor{}
	}
	return list, nil
}

func (s *AdminService) GetInvestorDetail(ctx context.Context, investorID uuid.UUID) (*dtos.AdminInvestorDetail, error) {
	inv, err := s.investorRepo.GetByID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not load investor", err)
	}
	if inv == nil {
		return nil, notFound("Investor not found")
	}
	units, err := s.unitRepo.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not load units", err)
	}
	if units == nil {
		units = []*models.PropertyUnit{}
	}
	milestones, err := s.milestoneRepo.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not load milestones", err)
	}
	return &dtos.AdminInvestorDetail{
		Investor:   inv,
		Units:      units,
		Milestones: sortMilestones(milestones),
	}, nil
}

// UpdateInvestorStatus applies the requested status changes under optimistic
// locking. Approving the visa stamps visa_start_date once.
func (s *AdminService) UpdateInvestorStatus(
	ctx context.Context,
	investorID uuid.UUID,
	req dtos.UpdateInvestorStatusRequest,
) (*models.Investor, error) {
	if req.KYCStatus == nil && req.VisaStatus == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Nothing to update",
		}
	}
	if req.KYCStatus != nil && !models.KYCStatusType(*req.KYCStatus).Valid() {
		return nil, invalidStatus("Unknown KYC status")
	}
	if req.VisaStatus != nil && !models.VisaStatusType(*req.VisaStatus).Valid() {
		return nil, invalidStatus("Unknown visa status")
	}

	now := s.now().UTC()
	err := s.investorRepo.UpdateWithRetry(ctx, investorID, func(inv *models.Investor) error {
		if req.KYCStatus != nil {
			inv.KYCStatus = models.KYCStatusType(*req.KYCStatus)
		}
		if req.VisaStatus != nil {
			inv.VisaStatus = models.VisaStatusType(*req.VisaStatus)
			if inv.VisaStatus == models.VisaStatusApproved && inv.VisaStartDate == nil {
				inv.VisaStartDate = &now
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, notFound("Investor not found")
		case errors.Is(err, utils.ErrRowVersionConflict):
			return nil, &utils.AppError{
				StatusCode: http.StatusConflict,
				Code:       utils.ErrCodeRowVersionConflict,
				Message:    "Investor was modified concurrently, try again",
				Err:        err,
			}
		default:
			return nil, internalErr("Could not update investor", err)
		}
	}

	inv, err := s.investorRepo.GetByID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not reload investor", err)
	}
	utils.Logger.WithField("investor_id", investorID).Info("investor status updated")
	return inv, nil
}

func invalidStatus(msg string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    msg,
		Err:        utils.ErrInvalidStatus,
	}
}

// AssignUnit sets the unit's investor, or clears it when investorID is nil.
func (s *AdminService) AssignUnit(ctx context.Context, unitID uuid.UUID, investorID *uuid.UUID) (*models.PropertyUnit, error) {
	if investorID != nil {
		inv, err := s.investorRepo.GetByID(ctx, *investorID)
		if err != nil {
			return nil, internalErr("Could not load investor", err)
		}
		if inv == nil {
			return nil, notFound("Investor not found")
		}
	}
	if err := s.unitRepo.AssignInvestor(ctx, unitID, investorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Unit not found")
		}
		return nil, internalErr("Could not assign unit", err)
	}
	u, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, internalErr("Could not reload unit", err)
	}
	return u, nil
}

// SetMilestoneStatus moves a milestone. completed_date follows the status.
func (s *AdminService) SetMilestoneStatus(ctx context.Context, milestoneID uuid.UUID, status models.MilestoneStatusType) (*models.Milestone, error) {
	if !status.Valid() {
		return nil, invalidStatus("Unknown milestone status")
	}
	var completed *time.Time
	if status == models.MilestoneStatusCompleted {
		now := s.now().UTC()
		completed = &now
	}
	if err := s.milestoneRepo.UpdateStatus(ctx, milestoneID, status, completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Milestone not found")
		}
		return nil, internalErr("Could not update milestone", err)
	}
	m, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, internalErr("Could not reload milestone", err)
	}
	return m, nil
}

// InitialiseMilestones creates the visa sequence for an investor that has
// none. Calling it again returns the existing list with Created=false.
func (s *AdminService) InitialiseMilestones(ctx context.Context, investorID uuid.UUID) (*dtos.InitMilestonesResponse, error) {
	inv, err := s.investorRepo.GetByID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not load investor", err)
	}
	if inv == nil {
		return nil, notFound("Investor not found")
	}

	n, err := s.milestoneRepo.CountByInvestorID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not count milestones", err)
	}
	created := false
	if n == 0 {
		err := s.milestoneRepo.CreateMany(ctx, VisaMilestonesFor(investorID, s.now().UTC()))
		switch {
		case err == nil:
			created = true
		case errors.Is(err, utils.ErrMilestoneSequenceExists):
			// a concurrent init won the race
			utils.Logger.WithField("investor_id", investorID).Info("milestone sequence already initialised")
		default:
			return nil, internalErr("Could not create milestones", err)
		}
	}

	list, err := s.milestoneRepo.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, internalErr("Could not load milestones", err)
	}
	return &dtos.InitMilestonesResponse{Created: created, Milestones: sortMilestones(list)}, nil
}

// VisaMilestonesFor builds the fixed sequence. The first step is current.
func VisaMilestonesFor(investorID uuid.UUID, start time.Time) []models.Milestone {
	out := make([]models.Milestone, 0, len(constants.VisaMilestoneSequence))
	for i, step := range constants.VisaMilestoneSequence {
		status := models.MilestoneStatusPending
		if i == 0 {
			status = models.MilestoneStatusCurrent
		}
		due := start.AddDate(0, 0, (i+1)*milestoneSpacingDays)
		out = append(out, models.Milestone{
			ID:          uuid.New(),
			InvestorID:  investorID,
			Title:       step.Title,
			Description: utils.Ptr(step.Description),
			Status:      status,
			OrderNumber: i + 1,
			DueDate:     &due,
		})
	}
	return out
}
