package controllers

import (
	"context"
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/app"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db pinger
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{db: app.DB}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.db.Ping(r.Context()); err != nil {
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
