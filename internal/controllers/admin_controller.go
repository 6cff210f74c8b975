package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type AdminController struct {
	adminService *services.AdminService
}

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{adminService: s}
}

// GET /api/admin/investors
func (c *AdminController) ListInvestorsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.adminService.ListInvestors(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListInvestorsResponse{Investors: list})
}

// GET /api/admin/investors/{id}
func (c *AdminController) GetInvestorHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	detail, err := c.adminService.GetInvestorDetail(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// PATCH /api/admin/investors/{id}/status
func (c *AdminController) UpdateInvestorStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateInvestorStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	inv, err := c.adminService.UpdateInvestorStatus(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

// POST /api/admin/investors/{id}/milestones/init
func (c *AdminController) InitMilestonesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	resp, err := c.adminService.InitialiseMilestones(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	utils.RespondWithJSON(w, status, resp)
}

// PUT /api/admin/units/{id}/assign
func (c *AdminController) AssignUnitHandler(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.AssignUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	var investorID *uuid.UUID
	if req.InvestorID != nil {
		parsed, err := uuid.Parse(*req.InvestorID)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid investorId", nil, err)
			return
		}
		investorID = &parsed
	}
	u, err := c.adminService.AssignUnit(r.Context(), unitID, investorID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// PATCH /api/admin/milestones/{id}/status
func (c *AdminController) SetMilestoneStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.SetMilestoneStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.adminService.SetMilestoneStatus(r.Context(), id, models.MilestoneStatusType(req.Status))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}
