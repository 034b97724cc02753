package respond

// error_response.go implements the JSON error body used for failures that are not part of
// the lookup contract: unknown routes, oversized requests and internal errors.
//
// A key that is missing from the catalog is NOT an error and never goes through here -
// the lookup handlers answer it with a not-found record.

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/gateway-delegation/lookup-services/internal/logger"
)

// ErrorResponse is the JSON body sent for protocol level failures
type ErrorResponse struct {

	// The HTTP method used to make the request e.g. GET, POST, etc
	HTTPMethod string `json:"httpMethod"`

	// The URI that was requested
	RequestURI string `json:"requestUri"`

	// The HTTP status code returned
	StatusCode int `json:"statusCode"`

	// A standard short description corresponding to the HTTP status code
	StatusCodeText string `json:"statusCodeText"`

	// A longer description with additional information
	StatusCodeMessage string `json:"statusCodeMessage,omitempty"`

	// The request id, supplied by the gateway or generated by this service
	ProviderCorrelationReference string `json:"providerCorrelationReference,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime"`
}

// NewErrorResponse creates the error body for r.
func NewErrorResponse(r *http.Request, statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		HTTPMethod:                   r.Method,
		RequestURI:                   r.RequestURI,
		StatusCode:                   statusCode,
		StatusCodeText:               http.StatusText(statusCode),
		StatusCodeMessage:            message,
		ProviderCorrelationReference: middleware.GetReqID(r.Context()),
		ErrorDateTime:                time.Now().UTC().Format(time.RFC3339),
	}
}

// Error sends an ErrorResponse. 5xx responses are logged at error level, others at warn.
func Error(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	errorResponse := NewErrorResponse(r, statusCode, message)

	reqLogger := logger.ContextRequestLogger(r.Context())
	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	reqLogger.LogAttrs(r.Context(), level, "request failed",
		slog.Int("status_code", statusCode),
		slog.String("error", message),
	)

	// ErrorResponse only holds strings and ints so marshalling cannot fail
	body, _ := json.Marshal(errorResponse)
	writeJSON(w, r, statusCode, body)
}

// NotFound answers requests for routes the service does not expose.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed answers requests using a method other than GET.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
