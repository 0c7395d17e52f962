package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type CalendarService interface {
	// GetCalendar reconciles roster, standard-timesheet and work-order data
	// for [periodStart, periodEnd) into day rows plus a period summary.
	GetCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
}

type CalendarRequest struct {
	EmployeeID  string
	PeriodStart string // YYYY-MM-DD, inclusive
	PeriodEnd   string // YYYY-MM-DD, exclusive
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	startDate, startValid := validator.IsValidDate(r.PeriodStart)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid date in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(r.PeriodEnd)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid date in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && !startDate.Before(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be after period_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CalendarResponse struct {
	EmployeeID string            `json:"employee_id"`
	Days       []calendar.DayRow `json:"days"`
	Summary    calendar.Summary  `json:"summary"`
}

type calendarServiceImpl struct {
	rosterRepo    roster.Repository
	timesheetRepo timesheet.EntryRepository
	workOrderRepo timesheet.WorkOrderEntryRepository
	workingDays   []int
	logger        *slog.Logger
}

func NewCalendarService(
	rosterRepo roster.Repository,
	timesheetRepo timesheet.EntryRepository,
	workOrderRepo timesheet.WorkOrderEntryRepository,
	workingDays []int,
	logger *slog.Logger,
) CalendarService {
	return &calendarServiceImpl{
		rosterRepo:    rosterRepo,
		timesheetRepo: timesheetRepo,
		workOrderRepo: workOrderRepo,
		workingDays:   workingDays,
		logger:        logger,
	}
}

// GetCalendar implements CalendarService.
//
// The three collections are fetched concurrently and fail-soft: a failed
// fetch degrades that collection to empty instead of failing the whole
// view. The degradation is logged, never silent.
func (s *calendarServiceImpl) GetCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return CalendarResponse{}, err
	}

	periodStart, _ := time.Parse(dateLayout, req.PeriodStart)
	periodEnd, _ := time.Parse(dateLayout, req.PeriodEnd)
	// Repositories query inclusive ranges; the calendar range is half-open.
	lastDate := periodEnd.AddDate(0, 0, -1)

	var (
		rosterEntries    []roster.Entry
		timesheetEntries []timesheet.Entry
		workOrderEntries []timesheet.WorkOrderEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.rosterRepo.GetByEmployeeAndRange(gctx, req.EmployeeID, periodStart, lastDate)
		if err != nil {
			s.logger.Warn("roster fetch failed, building calendar without it",
				slog.String("employee_id", req.EmployeeID), slog.Any("error", err))
			return nil
		}
		rosterEntries = entries
		return nil
	})
	g.Go(func() error {
		entries, err := s.timesheetRepo.GetByEmployeeAndRange(gctx, req.EmployeeID, periodStart, lastDate)
		if err != nil {
			s.logger.Warn("standard timesheet fetch failed, building calendar without it",
				slog.String("employee_id", req.EmployeeID), slog.Any("error", err))
			return nil
		}
		timesheetEntries = entries
		return nil
	})
	g.Go(func() error {
		entries, err := s.workOrderRepo.GetByEmployeeAndRange(gctx, req.EmployeeID, periodStart, lastDate)
		if err != nil {
			s.logger.Warn("work order entries fetch failed, building calendar without them",
				slog.String("employee_id", req.EmployeeID), slog.Any("error", err))
			return nil
		}
		workOrderEntries = entries
		return nil
	})
	// Fetch errors never propagate; Wait only orders the writes above.
	_ = g.Wait()

	days := calendar.BuildCalendar(periodStart, periodEnd, rosterEntries, timesheetEntries, workOrderEntries, s.workingDays)

	return CalendarResponse{
		EmployeeID: req.EmployeeID,
		Days:       days,
		Summary:    calendar.MonthlySummary(days),
	}, nil
}
