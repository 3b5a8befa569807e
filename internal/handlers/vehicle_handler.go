package handlers

import (
	"context"
	"io"
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// VehicleHandler handles vehicle fleet HTTP requests
type VehicleHandler struct {
	vehicleService services.VehicleFleetServiceInterface
	logger         services.FleetLoggerInterface
}

func NewVehicleHandler(
	vehicleService services.VehicleFleetServiceInterface,
	logger services.FleetLoggerInterface,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// ListVehicles returns one page of the filtered vehicle list
// @Summary List vehicles
// @Description Case-insensitive search over make, model, license plate and driver, combined with an exact status filter
// @Tags Vehicles
// @Produce json
// @Param q query string false "Search term"
// @Param status query string false "Status filter" Enums(all, active, maintenance, inactive) default(all)
// @Param limit query int false "Page size (max 1000)" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListVehiclesResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ListVehiclesRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_vehicles", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_vehicles", err.Error())
		return err
	}

	page, err := h.vehicleService.ListVehicles(ctx, criteriaFrom(req.Query, req.Status), req.Offset, req.Limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListVehiclesResponse(page))
}

// GetVehicle returns a single vehicle by its id
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle id" example(VH-2024-001)
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} errors.ErrorResponse "VEHICLE_002 - Invalid vehicle id"
// @Failure 404 {object} errors.ErrorResponse "VEHICLE_001 - Vehicle not found"
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	ctx := c.Request().Context()

	req := dto.GetVehicleRequest{ID: c.Param("id")}
	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "get_vehicle", err.Error())
		return SendError(c, errors.VehicleInvalidID, errors.WithDetails("id must look like VH-2024-001"))
	}

	vehicle, err := h.vehicleService.GetVehicle(ctx, req.ID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewVehicleResponse(*vehicle))
}

// VehicleStats returns the summary cards of the vehicle page
// @Summary Vehicle statistics
// @Tags Vehicles
// @Produce json
// @Success 200 {object} models.VehicleStats
// @Router /vehicles/stats [get]
func (h *VehicleHandler) VehicleStats(c echo.Context) error {
	stats, err := h.vehicleService.VehicleStats(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// ExportVehicles downloads the filtered vehicle list as xlsx or csv
// @Summary Export vehicles
// @Tags Vehicles
// @Param q query string false "Search term"
// @Param status query string false "Status filter"
// @Param format query string false "File format" Enums(xlsx, csv) default(xlsx)
// @Success 200 {file} file
// @Router /vehicles/export [get]
func (h *VehicleHandler) ExportVehicles(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ExportVehiclesRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "export_vehicles", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "export_vehicles", err.Error())
		return err
	}

	format, err := exportFormat(req.Format)
	if err != nil {
		return sendServiceError(c, err)
	}

	criteria := criteriaFrom(req.Query, req.Status)
	return sendExport(c, "vehicles", format, func(ctx context.Context, w io.Writer) (int, error) {
		return h.vehicleService.ExportVehicles(ctx, criteria, format, w)
	})
}
