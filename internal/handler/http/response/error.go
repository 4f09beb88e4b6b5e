package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/attendly/hr-console-go/internal/domain/attendance"
	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/attendly/hr-console-go/internal/domain/profile"
	"github.com/attendly/hr-console-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "No active session")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session token")
	case errors.Is(err, auth.ErrProfileMismatch):
		Unauthorized(w, "Profile details do not match this HR ID")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Admin profile not found")
	case errors.Is(err, profile.ErrProfileExists):
		Conflict(w, "A profile already exists for this HR ID")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists in this organization")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Anything else is a storage or infrastructure failure. Surface it as
	// unavailable rather than silently returning empty data, and make sure
	// it lands in the logs.
	default:
		slog.Error("unexpected service error", "error", err)
		ServiceUnavailable(w, "Service temporarily unavailable")
	}
}
