package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CustomerNotFound, s.traceID)

	s.Equal("CUSTOMER_001", response.Error.Code)
	s.Equal("Customer not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(VehicleInvalidID, s.traceID,
		WithMessage("Vehicle id must look like VH-2024-001"),
		WithDetails("id: TRUCK-1"),
	)

	s.Equal("VEHICLE_002", response.Error.Code)
	s.Equal("Vehicle id must look like VH-2024-001", response.Error.Message)
	s.Equal([]string{"id: TRUCK-1"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("first"), WithDetails("second", "third"))

	s.Equal([]string{"second", "third"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortsDetails() {
	response := NewValidationError(map[string]string{
		"status": "must be one of all active pending inactive",
		"limit":  "must be at most 1000",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"limit: must be at most 1000",
		"status: must be one of all active pending inactive",
	}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewValidationError_Empty() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internal := errors.New("pq: relation \"customers\" does not exist")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "customers")
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{CustomerInvalidID, http.StatusBadRequest},
		{VehicleInvalidID, http.StatusBadRequest},
		{ReportInvalidPeriod, http.StatusBadRequest},
		{ExportUnsupportedFormat, http.StatusBadRequest},
		{CustomerNotFound, http.StatusNotFound},
		{VehicleNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SystemConfigurationError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestJSONShape() {
	data, err := json.Marshal(NewErrorResponse(ReportInvalidPeriod, s.traceID, WithDetails("period: 2weeks")))
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("REPORT_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.Equal([]interface{}{"period: 2weeks"}, decoded["error"]["details"])

	data, err = json.Marshal(NewErrorResponse(CustomerNotFound, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(data), "details")
}

func (s *ResponseTestSuite) TestIsServerError() {
	s.False(NewErrorResponse(VehicleNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemServiceUnavailable, s.traceID).IsServerError())
	s.True(NewErrorResponse(ErrorCode("UNKNOWN_001"), s.traceID).IsServerError())
}
