package handlers

import (
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// MonitoringHandler serves the live monitoring views
type MonitoringHandler struct {
	monitoringService services.MonitoringServiceInterface
	logger            services.FleetLoggerInterface
}

func NewMonitoringHandler(
	monitoringService services.MonitoringServiceInterface,
	logger services.FleetLoggerInterface,
) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringService: monitoringService,
		logger:            logger,
	}
}

// ListAlerts returns the alert feed filtered by search term and severity
// @Summary List alerts
// @Tags Monitoring
// @Produce json
// @Param q query string false "Search over type, message and vehicle id"
// @Param severity query string false "Severity filter" Enums(all, high, medium, low) default(all)
// @Success 200 {object} dto.ListAlertsResponse
// @Router /monitoring/alerts [get]
func (h *MonitoringHandler) ListAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ListAlertsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_alerts", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_alerts", err.Error())
		return err
	}

	criteria := criteriaFrom(req.Query, req.Severity)
	alerts, err := h.monitoringService.Alerts(ctx, criteria)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListAlertsResponse(alerts, criteria))
}

// Locations returns the last known position of every tracked vehicle
// @Router /monitoring/locations [get]
func (h *MonitoringHandler) Locations(c echo.Context) error {
	locations, err := h.monitoringService.Locations(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.LocationsResponse{Locations: locations})
}

// Performance returns the intraday speed and fuel series
// @Router /monitoring/performance [get]
func (h *MonitoringHandler) Performance(c echo.Context) error {
	samples, err := h.monitoringService.Performance(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PerformanceResponse{Samples: samples})
}

// @Router /monitoring/fuel-efficiency [get]
func (h *MonitoringHandler) FuelEfficiency(c echo.Context) error {
	vehicles, err := h.monitoringService.FuelEfficiency(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FuelEfficiencyResponse{Vehicles: vehicles})
}

// StatusDistribution returns vehicle counts per status for the dashboard pie chart
// @Router /monitoring/status-distribution [get]
func (h *MonitoringHandler) StatusDistribution(c echo.Context) error {
	buckets, err := h.monitoringService.StatusDistribution(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewStatusDistributionResponse(buckets))
}
