// internal/app/features/apierr/apierr.go

// Package apierr translates core and boundary failures into JSON responses.
// Core components return typed errors; nothing in this package reaches back
// into business logic. Every body carries the request's correlation id so a
// client report can be matched to server logs.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secassess/assesshub/internal/app/core"
	"github.com/secassess/assesshub/internal/app/system/correlation"
	"go.uber.org/zap"
)

// response is the JSON error envelope.
type response struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	TraceID string            `json:"traceId,omitempty"`
}

func write(w http.ResponseWriter, r *http.Request, status int, resp response) {
	resp.TraceID = correlation.FromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// NotFound writes a 404 naming the missing resource.
func NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusNotFound, response{Error: "Not Found", Message: msg})
}

// BadRequest writes a 400 with a human-readable reason.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusBadRequest, response{Error: "Bad Request", Message: msg})
}

// FieldErrors writes a 400 with a field→message map from input validation.
func FieldErrors(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	write(w, r, http.StatusBadRequest, response{
		Error:   "Input Validation Error",
		Message: "one or more request fields are invalid",
		Fields:  fields,
	})
}

// Unauthorized writes a 401 for missing or invalid credentials.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusUnauthorized, response{Error: "Unauthorized", Message: "Authentication required"})
}

// Forbidden writes a 403 for a valid credential with an insufficient role.
func Forbidden(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusForbidden, response{Error: "Forbidden", Message: "Access denied"})
}

// TooManyRequests writes a 429 when a rate limit window is exhausted.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusTooManyRequests, response{Error: "Too Many Requests", Message: "Rate limit exceeded, try again shortly"})
}

// Internal writes a generic 500. Details stay in the logs.
func Internal(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusInternalServerError, response{Error: "Internal Server Error", Message: "An unexpected error occurred"})
}

// ErrorLogger pairs error responses with structured logging.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Render maps an error from a core call to its response: NotFoundError →
// 404, ValidationError → 400, anything else → logged 500.
func (el *ErrorLogger) Render(w http.ResponseWriter, r *http.Request, err error) {
	var nfe *core.NotFoundError
	if errors.As(err, &nfe) {
		NotFound(w, r, nfe.Error())
		return
	}
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		BadRequest(w, r, verr.Error())
		return
	}
	el.LogServerError(w, r, "unhandled error", err)
}

// LogServerError logs the failure with the correlation id and writes a 500.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	el.log.Error(msg, correlation.Field(r.Context()), zap.Error(err))
	Internal(w, r)
}
