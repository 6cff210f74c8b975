package controllers

import (
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(s *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: s}
}

// GET /api/properties
func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListProperties(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListPropertiesResponse{Properties: list})
}

// GET /api/properties/{id}
func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	resp, err := c.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
