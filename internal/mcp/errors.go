package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/store"
)

// ErrInvalidParams is returned when tool arguments cannot be decoded.
var ErrInvalidParams = errors.New("invalid params")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, store.ErrApartmentNotFound):
		return &APIError{Code: "APARTMENT_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_apartments to find valid ids"}
	case errors.Is(err, calendar.ErrInvalidMonth):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Pass month as YYYY-MM"}
	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, ErrInvalidParams):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check the tool input schema"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
