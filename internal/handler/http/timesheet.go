package http

import (
	"net/http"

	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-backend-go/internal/service/timesheet"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	GetCalendar(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	calendarService timesheet.CalendarService
}

func NewTimesheetHandler(calendarService timesheet.CalendarService) TimesheetHandler {
	return &timesheetHandlerImpl{
		calendarService: calendarService,
	}
}

func (h *timesheetHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	req := timesheet.CalendarRequest{
		EmployeeID:  chi.URLParam(r, "employeeID"),
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
	}

	result, err := h.calendarService.GetCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
