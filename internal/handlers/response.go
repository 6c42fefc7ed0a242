package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse lists the request fields that failed validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: Validation failed
	Error string `json:"error"`

	// Field name to failure reason
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a plain informational reply
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Email confirmed
	Message string `json:"message"`
}

const msgInternalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeInvalid answers 422 for validation errors and 400 for anything else,
// such as malformed JSON.
func writeInvalid(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: valErr.Fields(),
		})
		return
	}
	var pErr *paramError
	if errors.As(err, &pErr) {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: map[string]string{pErr.name: pErr.reason},
		})
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
}

// writeUnauthorized answers 401 with a bearer challenge.
func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, msg)
}
