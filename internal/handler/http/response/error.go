package response

import (
	"errors"
	"net/http"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/auth"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/report"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role specified", nil)
	case errors.Is(err, user.ErrReporterGroupRequired):
		BadRequest(w, "Reporter accounts require a group", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrReporterAccessRequired),
		errors.Is(err, user.ErrInsufficientPermission):
		Forbidden(w, err.Error())

	// Report domain errors. Scope problems are never softened into an
	// empty-but-successful report.
	case errors.Is(err, report.ErrInvalidWindow):
		BadRequest(w, err.Error(), map[string]string{"window": err.Error()})
	case errors.Is(err, report.ErrScopeViolation):
		Forbidden(w, err.Error())
	case errors.Is(err, report.ErrReporterGroupMissing):
		Forbidden(w, "Reporter account has no group assigned")
	case errors.Is(err, report.ErrUnknownRole):
		Forbidden(w, "Unknown role")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSubjectNotFound):
		NotFound(w, "Attendance subject not found")
	case errors.Is(err, attendance.ErrOutsideOwnGroup):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrStoreUnavailable):
		ServiceUnavailable(w, "Attendance store unavailable")

	// Option domain errors
	case errors.Is(err, option.ErrOptionNotFound):
		NotFound(w, "Option not found")
	case errors.Is(err, option.ErrOptionExists):
		Conflict(w, "Option already exists")
	case errors.Is(err, option.ErrOptionInUse):
		BadRequest(w, "Cannot delete option as it is being used by users", nil)
	case errors.Is(err, option.ErrInvalidType):
		BadRequest(w, "Invalid option type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
