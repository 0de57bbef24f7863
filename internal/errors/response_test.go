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

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(SessionNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("SESSION_001", response.Error.Code)
	s.Equal("Session not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"sessionId must be 1-128 URL-safe characters"}
	response := NewErrorResponse(SessionInvalidID, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("SESSION_004", response.Error.Code)
	s.Equal("Invalid session identifier", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests creating error response with custom message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewErrorResponse_WithMultipleOptions tests using multiple functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	customMessage := "Custom message"
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		SessionUpstreamError,
		s.traceID,
		WithMessage(customMessage),
		WithDetails(details...),
	)

	s.NotNil(response)
	s.Equal("SESSION_005", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(details, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError_WithFieldErrors tests creating validation error from field map
func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"session_id": "is required",
		"date":       "does not match any accepted date format",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Len(response.Error.Details, 2)

	// Check that all field errors are included (order may vary due to map iteration)
	detailsMap := make(map[string]bool)
	for _, detail := range response.Error.Details {
		detailsMap[detail] = true
	}
	s.True(detailsMap["session_id: is required"])
	s.True(detailsMap["date: does not match any accepted date format"])
}

// TestNewValidationError_EmptyFieldErrors tests validation error with empty field map
func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	fieldErrors := map[string]string{}
	response := NewValidationError(fieldErrors, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

// TestWrapSystemError_Success tests wrapping system errors
func (s *ResponseTestSuite) TestWrapSystemError_Success() {
	internalErr := errors.New("connection pool exhausted")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("An unexpected error occurred. Please contact support with trace ID", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(internalErr, originalErr)
}

// TestToJSON_Serialization tests JSON serialization of error responses
func (s *ResponseTestSuite) TestToJSON_Serialization() {
	response := NewErrorResponse(SessionNotFound, s.traceID, WithDetails("session missing upstream"))

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(jsonBytes, &decoded))
	s.Equal("SESSION_001", decoded.Error.Code)
	s.Equal("Session not found", decoded.Error.Message)
	s.Equal(s.traceID, decoded.Error.TraceID)
	s.Equal([]string{"session missing upstream"}, decoded.Error.Details)
}

// TestGetHTTPStatus_MapsCodesToStatuses tests status mapping per error family
func (s *ResponseTestSuite) TestGetHTTPStatus_MapsCodesToStatuses() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"Validation General", ValidationGeneral, http.StatusBadRequest},
		{"Session Invalid ID", SessionInvalidID, http.StatusBadRequest},
		{"Session Not Found", SessionNotFound, http.StatusNotFound},
		{"Analysis Empty Transactions", AnalysisEmptyTransactions, http.StatusUnprocessableEntity},
		{"Analysis No Valid Dates", AnalysisNoValidDates, http.StatusUnprocessableEntity},
		{"Rate Limit Exceeded", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"Session Upstream Error", SessionUpstreamError, http.StatusBadGateway},
		{"Session Service Unreachable", SessionServiceUnreachable, http.StatusServiceUnavailable},
		{"System Service Unavailable", SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"Session Service Timeout", SessionServiceTimeout, http.StatusGatewayTimeout},
		{"System Internal Error", SystemInternalError, http.StatusInternalServerError},
		{"Unknown Code", ErrorCode("BOGUS_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestIsClientError_And_IsServerError tests error class helpers
func (s *ResponseTestSuite) TestIsClientError_And_IsServerError() {
	clientError := NewErrorResponse(SessionNotFound, s.traceID)
	s.True(clientError.IsClientError())
	s.False(clientError.IsServerError())

	serverError := NewErrorResponse(SessionServiceTimeout, s.traceID)
	s.False(serverError.IsClientError())
	s.True(serverError.IsServerError())
}

// TestString_Representation tests the string formatting of error responses
func (s *ResponseTestSuite) TestString_Representation() {
	response := NewErrorResponse(SessionNotFound, s.traceID)
	s.Equal("[SESSION_001] Session not found (trace: "+s.traceID+")", response.String())
}
