package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Session / upstream data-processor error codes (SESSION_*)
const (
	SessionNotFound           ErrorCode = "SESSION_001"
	SessionServiceUnreachable ErrorCode = "SESSION_002"
	SessionServiceTimeout     ErrorCode = "SESSION_003"
	SessionInvalidID          ErrorCode = "SESSION_004"
	SessionUpstreamError      ErrorCode = "SESSION_005"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisEmptyTransactions ErrorCode = "ANALYSIS_001"
	AnalysisNoValidDates      ErrorCode = "ANALYSIS_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Session errors
	SessionNotFound:           "Session not found",
	SessionServiceUnreachable: "Cannot connect to data processor service",
	SessionServiceTimeout:     "Data processor request timed out",
	SessionInvalidID:          "Invalid session identifier",
	SessionUpstreamError:      "Data processor returned an unexpected response",

	// Analysis errors
	AnalysisEmptyTransactions: "No transactions available for analysis",
	AnalysisNoValidDates:      "No transactions with a parseable date available for analysis",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
