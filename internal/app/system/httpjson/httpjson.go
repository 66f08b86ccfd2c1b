// internal/app/system/httpjson/httpjson.go

// Package httpjson writes the JSON bodies every handler returns.
//
// Success responses encode the value as-is. Error responses use one
// structured shape, {"error": "...", "message": "..."}, where error is
// a stable machine tag and message is human-readable.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Error tags. Handlers map store sentinel errors onto these.
const (
	TagUnauthorized = "unauthorized"
	TagForbidden    = "forbidden"
	TagInvalidInput = "invalid_input"
	TagConflict     = "conflict"
	TagNotFound     = "not_found"
	TagRateLimited  = "rate_limited"
	TagInternal     = "internal"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Write encodes v as JSON with the given status. A nil v encodes as
// JSON null, which is how soft not-found reads answer.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured error body with the given status and tag.
func Error(w http.ResponseWriter, status int, tag, message string) {
	Write(w, status, ErrorBody{Error: tag, Message: message})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, TagUnauthorized, message)
}

// Forbidden writes a 403.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, TagForbidden, message)
}

// InvalidInput writes a 400.
func InvalidInput(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, TagInvalidInput, message)
}

// Conflict writes a 409.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, TagConflict, message)
}

// RateLimited writes a 429.
func RateLimited(w http.ResponseWriter, message string) {
	Error(w, http.StatusTooManyRequests, TagRateLimited, message)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, TagNotFound, message)
}

// Internal logs err and writes a generic 500. The error detail stays in
// the log, not the response.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, TagInternal, "something went wrong")
}

// Decode reads the request body into dst. Unknown fields are allowed;
// a syntactically bad body is the caller's InvalidInput case.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
