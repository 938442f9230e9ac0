// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/vatika/v1/pkg/errors"
)

// validate binds request struct tags across all handlers
var validate = validator.New()

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an application error to its HTTP status and writes
// the standard error envelope
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if appErr, ok := appErrors.GetAppError(err); ok {
		status = appErr.StatusCode()
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
	}

	writeJSON(w, logger, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// decodeJSON decodes a request body into dst and validates it
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.NewBadRequestError("invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return appErrors.NewValidationError(err.Error())
	}
	return nil
}
