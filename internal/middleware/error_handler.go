package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"fleettrack/internal/errors"
	"fleettrack/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrorHandler formats errors returned by handlers as standardized error
// responses, logs them and counts them by code
type ErrorHandler struct {
	logger    *zap.Logger
	apiErrors *prometheus.CounterVec
}

// NewErrorHandler registers the api error counter with registerer
func NewErrorHandler(logger *zap.Logger, registerer prometheus.Registerer) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		apiErrors: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help:      "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle is an echo.HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &validationErrs):
		errorResponse = errors.NewValidationError(validation.FieldErrors(validationErrs), traceID)
		httpStatus = http.StatusBadRequest
	default:
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	level := zapcore.WarnLevel
	if httpStatus >= http.StatusInternalServerError {
		level = zapcore.ErrorLevel
	}

	h.logger.Log(level, "HTTP error occurred",
		zap.String("trace_id", traceID),
		zap.String("error_code", errorResponse.Error.Code),
		zap.Int("status", httpStatus),
		zap.String("message", errorResponse.Error.Message),
		zap.String("path", c.Request().URL.Path),
		zap.String("method", c.Request().Method),
		zap.Error(err),
	)

	h.apiErrors.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		h.logger.Error("failed to send error response",
			zap.String("trace_id", traceID),
			zap.Error(sendErr),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
