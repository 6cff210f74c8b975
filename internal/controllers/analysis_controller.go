package controllers

import (
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/middleware"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type AnalysisController struct {
	analysisService *services.AnalysisService
}

func NewAnalysisController(s *services.AnalysisService) *AnalysisController {
	return &AnalysisController{analysisService: s}
}

// POST /api/admin/properties/{id}/analyze
func (c *AnalysisController) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathUUID(w, r)
	if !ok {
		return
	}
	operator := middleware.IdentityFromContext(r.Context())

	resp, err := c.analysisService.Analyze(r.Context(), operator, propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	status := http.StatusCreated
	if !resp.Persisted {
		status = http.StatusOK
	}
	utils.RespondWithJSON(w, status, resp)
}

// GET /api/admin/properties/{id}/analysis
func (c *AnalysisController) LatestHandler(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathUUID(w, r)
	if !ok {
		return
	}
	res := c.analysisService.GetLatest(r.Context(), propertyID)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LatestAnalysisResponse{
		Status:   res.State.String(),
		Analysis: res.Value,
	})
}

// GET /api/admin/properties/{id}/analysis/history
func (c *AnalysisController) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathUUID(w, r)
	if !ok {
		return
	}
	history, err := c.analysisService.GetHistory(r.Context(), propertyID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Could not load analysis history", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AnalysisHistoryResponse{
		PropertyID: propertyID.String(),
		History:    history,
	})
}
