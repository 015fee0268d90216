package transport

import (
	"errors"
	"net/http"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/store"
)

// Error codes of the JSON error envelope.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeApartmentNotFound = "APARTMENT_NOT_FOUND"
	CodeInternal          = "INTERNAL"
)

// statusFor maps a domain error to an HTTP status and envelope code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, app.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, store.ErrApartmentNotFound):
		return http.StatusNotFound, CodeApartmentNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal error"
	}
	writeError(w, status, code, message)
}
