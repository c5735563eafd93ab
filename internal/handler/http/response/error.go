package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/note"
	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shiftmodel"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "OAuth state verification failed")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already exists")

	// Scheduling domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Employee already has a shift on this day")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrInsufficientBalance):
		BadRequest(w, "Insufficient vacation-day balance", nil)
	case errors.Is(err, roster.ErrMonthNotSeeded):
		NotFound(w, "No calendar days seeded for this month")

	// Master data errors
	case errors.Is(err, staffrole.ErrRoleNotFound):
		NotFound(w, "Staff role not found")
	case errors.Is(err, staffrole.ErrRoleNameExists):
		Conflict(w, "Staff role name already exists")
	case errors.Is(err, shiftmodel.ErrShiftModelNotFound):
		NotFound(w, "Shift model not found")
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")

	// Malformed date ranges surface as client errors, not 500s.
	case errors.Is(err, timekit.ErrInvalidRange):
		BadRequest(w, "End must not precede start", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
