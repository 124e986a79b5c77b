package response

import (
	"errors"
	"net/http"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/auth"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees assigned")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Punch log domain errors
	case errors.Is(err, punchlog.ErrPunchNotFound):
		NotFound(w, "Punch log not found")
	case errors.Is(err, punchlog.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, punchlog.ErrDuplicatePunch):
		Conflict(w, "An identical punch was already recorded")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedExportFormat):
		BadRequest(w, "Unsupported export format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
