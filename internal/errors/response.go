package errors

import (
	"net/http"
)

// ErrorDetail carries the client-facing portion of an error.
type ErrorDetail struct {
	Message       string                 `json:"message"`
	InternalError string                 `json:"internal_error,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into the API error body. The hint is
// preferred as the client message; the raw error string is kept in
// internal_error for operators.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := Hint(err)
	if message == "" {
		message = err.Error()
	}

	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message:       message,
			InternalError: err.Error(),
			Details:       ReportableDetails(err),
		},
	}
}

// HTTPStatusFromErr maps marked errors to HTTP status codes.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsInvalidOperation(err):
		return http.StatusBadRequest
	case IsPermissionDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
