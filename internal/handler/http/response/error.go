package response

import (
	"errors"
	"net/http"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/pkg/validator"
	"github.com/proodentit/tolon-attendance/internal/service/recognition"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Invalid input. Please try again!", validationErrs.ToMap())
		return
	}

	switch {
	// Authorization denials: the subject or the location is wrong.
	case errors.Is(err, staff.ErrInactiveOrUnknown):
		Forbidden(w, "Staff not found or inactive.")
	case errors.Is(err, attendance.ErrZoneNotAllowed):
		Forbidden(w, "Not authorized to clock at this location.")

	// State-machine rejections: user must correct real-world state, no retry.
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Denied(w, "You have already clocked in today.")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Denied(w, "You haven't clocked in yet.")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Denied(w, "You have already clocked out today.")

	// Face-match denials are user-facing, not system errors.
	case errors.Is(err, recognition.ErrNoMatch):
		Denied(w, "No matching face found.")
	case errors.Is(err, recognition.ErrLowConfidence):
		Denied(w, "Face match too low. Try again.")

	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Invalid action.", nil)

	// Default: downstream failure, safe for the client to retry.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
