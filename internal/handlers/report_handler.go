package handlers

import (
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/models"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves report series and the report catalog
type ReportHandler struct {
	reportService services.ReportServiceInterface
	logger        services.FleetLoggerInterface
}

func NewReportHandler(reportService services.ReportServiceInterface, logger services.FleetLoggerInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// MonthlyMetrics returns revenue, expenses and profit for the trailing period
// @Summary Monthly metrics
// @Tags Reports
// @Produce json
// @Param period query string false "Trailing window" Enums(1month, 3months, 6months, 1year) default(6months)
// @Success 200 {object} dto.MonthlyMetricsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid period"
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlyMetrics(c echo.Context) error {
	period, err := h.bindPeriod(c, "monthly_metrics")
	if err != nil {
		return err
	}

	metrics, err := h.reportService.MonthlyMetrics(c.Request().Context(), period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyMetricsResponse(resolvedPeriod(period), metrics))
}

// FuelTrends returns fuel consumption and cost for the trailing period
// @Summary Fuel trends
// @Tags Reports
// @Produce json
// @Param period query string false "Trailing window" Enums(1month, 3months, 6months, 1year) default(6months)
// @Success 200 {object} dto.FuelTrendsResponse
// @Router /reports/fuel-trends [get]
func (h *ReportHandler) FuelTrends(c echo.Context) error {
	period, err := h.bindPeriod(c, "fuel_trends")
	if err != nil {
		return err
	}

	trends, err := h.reportService.FuelTrends(c.Request().Context(), period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FuelTrendsResponse{Period: string(resolvedPeriod(period)), Trends: trends})
}

// Catalog lists the downloadable reports
// @Router /reports/catalog [get]
func (h *ReportHandler) Catalog(c echo.Context) error {
	catalog, err := h.reportService.Catalog(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewReportCatalogResponse(catalog))
}

// bindPeriod reads the period query parameter. A non-nil error has already
// been written to the response or must be returned to the error handler.
func (h *ReportHandler) bindPeriod(c echo.Context, operation string) (models.ReportPeriod, error) {
	ctx := c.Request().Context()

	var req dto.ReportPeriodRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, operation, err.Error())
		if sendErr := SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters")); sendErr != nil {
			return "", sendErr
		}
		return "", err
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, operation, err.Error())
		return "", err
	}

	return models.ReportPeriod(req.Period), nil
}

func resolvedPeriod(period models.ReportPeriod) models.ReportPeriod {
	if period == "" {
		return models.DefaultReportPeriod
	}
	return period
}
