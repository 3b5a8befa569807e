package handlers

import (
	stderrors "errors"
	"net/http"

	"fleettrack/internal/errors"
	"fleettrack/internal/export"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ERROR HANDLING
//
// Handlers report failures through one of three helpers:
//
// 1. SendError - client errors with a known code (4xx)
//    SendError(c, errors.VehicleInvalidID, errors.WithDetails("..."))
//
// 2. sendServiceError - errors returned by a service call; known sentinels
//    map to their code, everything else becomes SYSTEM_001
//
// 3. return err from c.Validate - the HTTP error handler turns
//    validator.ValidationErrors into VALIDATION_001 with field details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendServiceError maps service sentinel errors to their API error codes
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrVehicleNotFound):
		return SendError(c, errors.VehicleNotFound)
	case stderrors.Is(err, services.ErrInvalidReportPeriod):
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(err.Error()))
	case stderrors.Is(err, export.ErrUnsupportedExportFormat):
		return SendError(c, errors.ExportUnsupportedFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, errors.SystemServiceUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
