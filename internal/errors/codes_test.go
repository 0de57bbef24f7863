package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Session Not Found",
			code:     SessionNotFound,
			expected: "Session not found",
		},
		{
			name:     "Session Service Unreachable",
			code:     SessionServiceUnreachable,
			expected: "Cannot connect to data processor service",
		},
		{
			name:     "Session Service Timeout",
			code:     SessionServiceTimeout,
			expected: "Data processor request timed out",
		},
		{
			name:     "Analysis Empty Transactions",
			code:     AnalysisEmptyTransactions,
			expected: "No transactions available for analysis",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationInvalidDate,
		SessionNotFound,
		SessionServiceUnreachable,
		SessionServiceTimeout,
		SessionInvalidID,
		SessionUpstreamError,
		AnalysisEmptyTransactions,
		AnalysisNoValidDates,
		SystemInternalError,
		SystemServiceUnavailable,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

// TestIsValidErrorCode_InvalidCodes tests validation of invalid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCodes() {
	invalidCodes := []ErrorCode{
		"INVALID_CODE",
		"SESSION_999",
		"",
		"random_string",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}
