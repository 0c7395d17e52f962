package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

// maxGenerateDays bounds a single generation request.
const maxGenerateDays = 366

type rosterServiceImpl struct {
	rosterRepo   roster.Repository
	scheduleRepo schedule.WorkScheduleRepository
	shiftRepo    shift.ShiftTypeRepository
	employeeRepo employee.EmployeeRepository
}

func NewRosterService(
	rosterRepo roster.Repository,
	scheduleRepo schedule.WorkScheduleRepository,
	shiftRepo shift.ShiftTypeRepository,
	employeeRepo employee.EmployeeRepository,
) roster.Service {
	return &rosterServiceImpl{
		rosterRepo:   rosterRepo,
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// Generate implements roster.Service.
//
// Re-running with identical arguments and overwrite_existing=true yields the
// same entry set per day; created_count reflects only rows touched in that
// call. Manually overridden rows are never replaced regardless of the
// overwrite flag.
func (s *rosterServiceImpl) Generate(ctx context.Context, req roster.GenerateRosterRequest) (roster.GenerateRosterResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.GenerateRosterResponse{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)
	if endDate.Sub(startDate).Hours()/24 >= maxGenerateDays {
		return roster.GenerateRosterResponse{}, roster.ErrDateRangeTooLarge
	}

	ws, err := s.scheduleRepo.GetByID(ctx, req.WorkScheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.GenerateRosterResponse{}, schedule.ErrWorkScheduleNotFound
		}
		return roster.GenerateRosterResponse{}, fmt.Errorf("failed to load work schedule: %w", err)
	}
	if !ws.IsActive {
		return roster.GenerateRosterResponse{}, schedule.ErrWorkScheduleInactive
	}

	if err := s.ensureEmployeesExist(ctx, req.EmployeeIDs); err != nil {
		return roster.GenerateRosterResponse{}, err
	}

	resolutions, shiftsByCode, err := s.resolveRange(ctx, ws, startDate, endDate)
	if err != nil {
		return roster.GenerateRosterResponse{}, err
	}

	entries := make([]roster.Entry, 0, len(req.EmployeeIDs)*len(resolutions))
	for _, employeeID := range req.EmployeeIDs {
		for _, day := range resolutions {
			entry := roster.Entry{
				ID:           uuid.NewString(),
				EmployeeID:   employeeID,
				RosterDate:   day.date,
				IsWorkingDay: day.resolution.IsWorkingDay,
			}
			if day.resolution.ShiftTypeCode != nil {
				code := *day.resolution.ShiftTypeCode
				entry.ShiftTypeCode = &code
				if st, ok := shiftsByCode[code]; ok {
					start, end := st.StartTime, st.EndTime
					entry.StartTime = &start
					entry.EndTime = &end
				}
			}
			entries = append(entries, entry)
		}
	}

	created, err := s.rosterRepo.BulkUpsert(ctx, entries, req.OverwriteExisting)
	if err != nil {
		return roster.GenerateRosterResponse{}, fmt.Errorf("failed to upsert roster entries: %w", err)
	}

	return roster.GenerateRosterResponse{CreatedCount: created}, nil
}

type resolvedDay struct {
	date       time.Time
	resolution schedule.DayResolution
}

// resolveRange resolves every date once: the resolution depends only on the
// schedule and the date, never on the employee.
func (s *rosterServiceImpl) resolveRange(ctx context.Context, ws schedule.WorkSchedule, startDate, endDate time.Time) ([]resolvedDay, map[string]shift.ShiftType, error) {
	var resolutions []resolvedDay
	codes := map[string]bool{}
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		res, err := schedule.ResolveDay(ws, date)
		if err != nil {
			return nil, nil, err
		}
		if ws.Type == schedule.ScheduleTypeFixed && res.ShiftTypeCode != nil {
			// FIXED schedules reference the shift type by id; roster
			// entries carry the code.
			st, err := s.shiftRepo.GetByID(ctx, *res.ShiftTypeCode)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, nil, shift.ErrShiftTypeNotFound
				}
				return nil, nil, fmt.Errorf("failed to load default shift type: %w", err)
			}
			res.ShiftTypeCode = &st.Code
		}
		if res.ShiftTypeCode != nil {
			codes[*res.ShiftTypeCode] = true
		}
		resolutions = append(resolutions, resolvedDay{date: date, resolution: res})
	}

	shiftsByCode, err := s.loadShiftTypes(ctx, codes)
	if err != nil {
		return nil, nil, err
	}
	return resolutions, shiftsByCode, nil
}

func (s *rosterServiceImpl) loadShiftTypes(ctx context.Context, codes map[string]bool) (map[string]shift.ShiftType, error) {
	if len(codes) == 0 {
		return map[string]shift.ShiftType{}, nil
	}
	codeList := make([]string, 0, len(codes))
	for code := range codes {
		codeList = append(codeList, code)
	}
	shiftTypes, err := s.shiftRepo.GetByCodes(ctx, codeList)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift types: %w", err)
	}
	byCode := make(map[string]shift.ShiftType, len(shiftTypes))
	for _, st := range shiftTypes {
		byCode[st.Code] = st
	}
	for code := range codes {
		if _, ok := byCode[code]; !ok {
			return nil, fmt.Errorf("%w: rotation references %q", shift.ErrShiftTypeNotFound, code)
		}
	}
	return byCode, nil
}

func (s *rosterServiceImpl) ensureEmployeesExist(ctx context.Context, ids []string) error {
	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	known := make(map[string]bool, len(employees))
	for _, emp := range employees {
		known[emp.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
		}
	}
	return nil
}

// ListEntries implements roster.Service.
func (s *rosterServiceImpl) ListEntries(ctx context.Context, filter roster.ListEntriesFilter) ([]roster.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	startDate, _ := time.Parse(dateLayout, filter.StartDate)
	endDate, _ := time.Parse(dateLayout, filter.EndDate)

	entries, err := s.rosterRepo.GetByEmployeeAndRange(ctx, filter.EmployeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries: %w", err)
	}

	responses := make([]roster.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}
	return responses, nil
}

// OverrideEntry implements roster.Service. The stored row is flagged
// manual_override so later generation runs leave it alone.
func (s *rosterServiceImpl) OverrideEntry(ctx context.Context, req roster.OverrideEntryRequest) (roster.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.EntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.EntryResponse{}, employee.ErrEmployeeNotFound
		}
		return roster.EntryResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	rosterDate, _ := time.Parse(dateLayout, req.RosterDate)
	entry := roster.Entry{
		ID:             uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		RosterDate:     rosterDate,
		IsWorkingDay:   *req.IsWorkingDay,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ManualOverride: true,
	}
	if *req.IsWorkingDay {
		entry.ShiftTypeCode = req.ShiftTypeCode
		if entry.StartTime == nil || entry.EndTime == nil {
			shiftTypes, err := s.shiftRepo.GetByCodes(ctx, []string{*req.ShiftTypeCode})
			if err != nil {
				return roster.EntryResponse{}, fmt.Errorf("failed to load shift type: %w", err)
			}
			if len(shiftTypes) == 0 {
				return roster.EntryResponse{}, shift.ErrShiftTypeNotFound
			}
			start, end := shiftTypes[0].StartTime, shiftTypes[0].EndTime
			entry.StartTime = &start
			entry.EndTime = &end
		}
	}

	saved, err := s.rosterRepo.Override(ctx, entry)
	if err != nil {
		return roster.EntryResponse{}, fmt.Errorf("failed to override roster entry: %w", err)
	}
	return mapEntryToResponse(saved), nil
}

func mapEntryToResponse(entry roster.Entry) roster.EntryResponse {
	return roster.EntryResponse{
		ID:             entry.ID,
		EmployeeID:     entry.EmployeeID,
		RosterDate:     entry.RosterDate.Format(dateLayout),
		ShiftTypeCode:  entry.ShiftTypeCode,
		IsWorkingDay:   entry.IsWorkingDay,
		StartTime:      entry.StartTime,
		EndTime:        entry.EndTime,
		ManualOverride: entry.ManualOverride,
	}
}
