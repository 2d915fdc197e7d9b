// Package response provides standardized HTTP response structures and
// helpers for the SkyTrackr API server. All API responses follow a
// consistent format with a data field for successful responses and an
// error field for failures.
package response

import (
	"encoding/json"
	"net/http"
)

// Response represents the standardized API response structure.
// All endpoints return this format for consistency.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error represents an API error with code, message, and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success creates a successful response with data.
func Success(data any) Response {
	return Response{
		Data:  data,
		Error: nil,
	}
}

// Fail creates an error response.
func Fail(code, message, details string) Response {
	return Response{
		Data: nil,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent (best effort)
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, ""))
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter) {
	JSON(w, http.StatusMethodNotAllowed, Fail("METHOD_NOT_ALLOWED", "Method not allowed", ""))
}

// InternalError writes a 500 error response.
func InternalError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, Fail("INTERNAL_ERROR", message, ""))
}

// ServiceUnavailable writes a 503 error response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail("SERVICE_UNAVAILABLE", message, ""))
}
