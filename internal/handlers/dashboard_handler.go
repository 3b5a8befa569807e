package handlers

import (
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing page of the dashboard
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	logger           services.FleetLoggerInterface
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface, logger services.FleetLoggerInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Overview returns the headline stat row
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardOverview
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.dashboardService.Overview(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// RecentActivity returns the newest activity events
// @Summary Recent activity
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of events (max 100)" default(10)
// @Success 200 {object} dto.ActivityResponse
// @Router /dashboard/activity [get]
func (h *DashboardHandler) RecentActivity(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ActivityRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "recent_activity", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "recent_activity", err.Error())
		return err
	}

	events, err := h.dashboardService.RecentActivity(ctx, req.Limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewActivityResponse(events))
}
