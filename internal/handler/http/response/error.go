package response

import (
	"errors"
	"net/http"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/attendance"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/auth"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/bonus"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/document"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/goal"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/recruitment"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/vacation"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var confirmErr *overtime.ConfirmationRequiredError
	if errors.As(err, &confirmErr) {
		ConfirmationRequired(w, confirmErr.Warnings)
		return
	}

	switch {
	// Auth / actor errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInvalidClaims):
		Unauthorized(w, "Invalid token claims")
	case errors.Is(err, user.ErrNotAllowed):
		Forbidden(w, "Operation not allowed for this profile")
	case errors.Is(err, user.ErrInactiveUser):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Overtime workflow errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidInterval),
		errors.Is(err, overtime.ErrNoNetHours),
		errors.Is(err, overtime.ErrExclusiveDifferential),
		errors.Is(err, overtime.ErrDecisionNotesRequired),
		errors.Is(err, overtime.ErrInvalidReduction):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrNotPending),
		errors.Is(err, overtime.ErrNotApproved),
		errors.Is(err, overtime.ErrNotExecuted):
		Conflict(w, err.Error())

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Vacation errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, vacation.ErrNotPending),
		errors.Is(err, vacation.ErrNotCancellable),
		errors.Is(err, vacation.ErrPeriodOverlap):
		Conflict(w, err.Error())

	// Attendance errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrClockOutTooEarly):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, err.Error())

	// Document errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrEmptyFile),
		errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, err.Error(), nil)

	// Recruitment errors
	case errors.Is(err, recruitment.ErrOpeningNotFound):
		NotFound(w, "Job opening not found")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, recruitment.ErrOpeningClosed),
		errors.Is(err, recruitment.ErrInvalidStageTransition):
		Conflict(w, err.Error())

	// Goal errors
	case errors.Is(err, goal.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, goal.ErrGoalNotOpen):
		Conflict(w, err.Error())

	// Bonus errors
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, bonus.ErrNotPending):
		Conflict(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
