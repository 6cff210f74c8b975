package controllers

import (
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/middleware"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// InvestorController serves the caller's own records. Not-found and failed
// lookups still answer 200 with an empty payload and a status string.
type InvestorController struct {
	dataService      *services.InvestorDataService
	portfolioService *services.PortfolioService
}

func NewInvestorController(data *services.InvestorDataService, portfolio *services.PortfolioService) *InvestorController {
	return &InvestorController{dataService: data, portfolioService: portfolio}
}

// GET /api/dashboard
func (c *InvestorController) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	res := c.portfolioService.GetPortfolioSummary(r.Context(), id)
	utils.RespondWithJSON(w, http.StatusOK, dtos.DashboardResponse{
		Status:  res.State.String(),
		Summary: res.Value,
	})
}

// GET /api/investor
func (c *InvestorController) InvestorHandler(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	res := c.dataService.GetInvestor(r.Context(), id)
	utils.RespondWithJSON(w, http.StatusOK, dtos.InvestorResponse{
		Status:   res.State.String(),
		Investor: res.Value,
	})
}

// GET /api/units
func (c *InvestorController) UnitsHandler(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	res := c.dataService.GetUnits(r.Context(), id)
	units := res.Value
	if units == nil {
		units = []*models.PropertyUnit{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UnitsResponse{Status: res.State.String(), Units: units})
}

// GET /api/milestones
func (c *InvestorController) MilestonesHandler(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	res := c.dataService.GetMilestones(r.Context(), id)
	list := res.Value
	if list == nil {
		list = []*models.Milestone{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MilestonesResponse{Status: res.State.String(), Milestones: list})
}
