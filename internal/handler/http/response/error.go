package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
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
	// Shift type domain errors
	case errors.Is(err, shift.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, shift.ErrShiftTypeCodeExists):
		Conflict(w, "Shift type code already exists")
	case errors.Is(err, shift.ErrShiftTypeInUse):
		Conflict(w, "Shift type is still referenced by a schedule or roster")

	// Work schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrWorkScheduleCodeExists):
		Conflict(w, "Work schedule code already exists")
	case errors.Is(err, schedule.ErrWorkScheduleInactive):
		BadRequest(w, "Work schedule is inactive", nil)
	case errors.Is(err, schedule.ErrScheduleMisconfigured):
		UnprocessableEntity(w, err.Error())

	// Roster domain errors
	case errors.Is(err, roster.ErrDateRangeTooLarge):
		BadRequest(w, "Date range exceeds the generation limit", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Daily report domain errors
	case errors.Is(err, dailyreport.ErrReportNotFound):
		NotFound(w, "Daily report not found")
	case errors.Is(err, dailyreport.ErrReportExists):
		Conflict(w, "Daily report already exists for this date")
	case errors.Is(err, dailyreport.ErrReportNotEditable):
		Conflict(w, "Daily report can no longer be edited")
	case errors.Is(err, dailyreport.ErrReportNotSubmitted):
		Conflict(w, "Daily report has not been submitted")
	case errors.Is(err, dailyreport.ErrReportAlreadyFinal):
		Conflict(w, "Daily report is already approved")
	case errors.Is(err, dailyreport.ErrRejectReasonMissing):
		BadRequest(w, "Reject reason is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
