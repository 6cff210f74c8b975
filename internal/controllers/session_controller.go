package controllers

import (
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/middleware"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type SessionController struct {
	identityService *services.IdentityService
}

func NewSessionController(s *services.IdentityService) *SessionController {
	return &SessionController{identityService: s}
}

// GET /api/session
func (c *SessionController) SessionHandler(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	if id.IsZero() {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing identity in context", nil, utils.ErrUnauthenticated)
		return
	}
	inv := c.identityService.ResolveInvestor(r.Context(), id)
	utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
		UserID:     id.UserID,
		Email:      id.Email,
		IsAdmin:    c.identityService.IsAdmin(id),
		IsInvestor: inv.Ok(),
	})
}
