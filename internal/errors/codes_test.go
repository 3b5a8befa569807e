package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
	CustomerNotFound, CustomerInvalidID,
	VehicleNotFound, VehicleInvalidID,
	ReportInvalidPeriod, ExportUnsupportedFormat,
	SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
	SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded,
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{ValidationGeneral, "Validation failed"},
		{CustomerNotFound, "Customer not found"},
		{VehicleInvalidID, "Invalid vehicle ID format"},
		{ReportInvalidPeriod, "Invalid report period"},
		{ExportUnsupportedFormat, "Unsupported export format"},
		{SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("UNKNOWN_999")))
	s.False(IsValidErrorCode(ErrorCode("UNKNOWN_999")))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "code %s has no message", code)
		s.NotEqual("An error occurred", GetErrorMessage(code))
	}
	s.Len(errorMessages, len(allCodes))
}

func (s *CodesTestSuite) TestErrorCodeConstants_UniqueAndWellFormed() {
	format := regexp.MustCompile(`^[A-Z]+_\d{3}$`)
	seen := make(map[ErrorCode]bool, len(allCodes))

	for _, code := range allCodes {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
		s.Regexp(format, string(code))
	}
}
