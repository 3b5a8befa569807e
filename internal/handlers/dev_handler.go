package handlers

import (
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultGeneratedRecords = 10

// DevHandler handles development-only endpoints
// These endpoints are only registered in development environments
type DevHandler struct {
	seeder services.FleetSeederInterface
	logger services.FleetLoggerInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.FleetSeederInterface, logger services.FleetLoggerInterface) *DevHandler {
	return &DevHandler{
		seeder: seeder,
		logger: logger,
	}
}

// GenerateFleetData appends generated customers and vehicles to the record store
//
// Method: POST /api/v1/dev/generate
// Environment: Development only
//
// Query parameters:
//   - count: Number of customers and of vehicles to generate (default: 10, max: 1000)
//
// Success Response: 201 Created
//   - customers_created, vehicles_created
//
// Error Responses:
//   - 400: Invalid count
//   - 500: Internal server error
func (h *DevHandler) GenerateFleetData(c echo.Context) error {
	ctx := c.Request().Context()

	// POST bodies are not read; count comes from the query string only
	var req dto.GenerateFleetDataRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		h.logger.LogValidationFailure(ctx, "generate_fleet_data", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "generate_fleet_data", err.Error())
		return err
	}

	count := req.Count
	if count == 0 {
		count = defaultGeneratedRecords
	}

	created, err := h.seeder.AppendSynthetic(ctx, count)
	if err != nil {
		if services.IsInvalidSyntheticCount(err) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateFleetDataResponse{
		Message:          "test data generated successfully",
		CustomersCreated: created,
		VehiclesCreated:  created,
	})
}
