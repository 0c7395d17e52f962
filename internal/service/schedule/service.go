package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dateLayout = "2006-01-02"

type scheduleServiceImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
	shiftRepo    shift.ShiftTypeRepository
}

func NewScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	shiftRepo shift.ShiftTypeRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
	}
}

// CreateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if err := s.checkShiftReferences(ctx, req); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	entity := schedule.WorkSchedule{
		Code:     req.Code,
		Name:     req.Name,
		Type:     schedule.ScheduleType(req.Type),
		IsActive: true,
	}
	switch entity.Type {
	case schedule.ScheduleTypeFixed:
		entity.WorkingDays = req.WorkingDays
		entity.DefaultShiftTypeID = req.DefaultShiftTypeID
	case schedule.ScheduleTypeRotating:
		entity.RotationPattern = req.RotationPattern
		anchor, _ := time.Parse(dateLayout, *req.CycleStartDate)
		entity.CycleStartDate = &anchor
	}

	created, err := s.scheduleRepo.Create(ctx, entity)
	if err != nil {
		// Check for duplicate code (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleCodeExists
			}
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapWorkScheduleToResponse(created), nil
}

// checkShiftReferences verifies that every shift type the definition names
// actually exists, so generation never hits a dangling reference.
func (s *scheduleServiceImpl) checkShiftReferences(ctx context.Context, req schedule.CreateWorkScheduleRequest) error {
	switch schedule.ScheduleType(req.Type) {
	case schedule.ScheduleTypeFixed:
		if _, err := s.shiftRepo.GetByID(ctx, *req.DefaultShiftTypeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shift.ErrShiftTypeNotFound
			}
			return fmt.Errorf("failed to load default shift type: %w", err)
		}
	case schedule.ScheduleTypeRotating:
		codes := map[string]bool{}
		for _, entry := range req.RotationPattern {
			if entry != schedule.RotationOff {
				codes[entry] = true
			}
		}
		if len(codes) == 0 {
			return nil
		}
		codeList := make([]string, 0, len(codes))
		for code := range codes {
			codeList = append(codeList, code)
		}
		shiftTypes, err := s.shiftRepo.GetByCodes(ctx, codeList)
		if err != nil {
			return fmt.Errorf("failed to load rotation shift types: %w", err)
		}
		known := make(map[string]bool, len(shiftTypes))
		for _, st := range shiftTypes {
			known[st.Code] = true
		}
		for code := range codes {
			if !known[code] {
				return fmt.Errorf("%w: rotation references %q", shift.ErrShiftTypeNotFound, code)
			}
		}
	}
	return nil
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	entity, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkScheduleResponse{}, err
	}

	return mapWorkScheduleToResponse(entity), nil
}

// ListWorkSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkSchedules(ctx context.Context, filter schedule.WorkScheduleFilter) (schedule.ListWorkScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListWorkScheduleResponse{}, err
	}

	entities, totalCount, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListWorkScheduleResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, mapWorkScheduleToResponse(entity))
	}

	return schedule.ListWorkScheduleResponse{
		TotalCount:    totalCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		WorkSchedules: responses,
	}, nil
}

// UpdateWorkSchedule implements schedule.ScheduleService. Code and type stay
// immutable; the repository only touches the fields the request carries.
// Variant fields of the other type are rejected against the stored type so a
// FIXED schedule can never acquire rotation data through an update.
func (s *scheduleServiceImpl) UpdateWorkSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrWorkScheduleNotFound
		}
		return fmt.Errorf("failed to load work schedule: %w", err)
	}
	if errs := validateVariantFields(entity.Type, req); len(errs) > 0 {
		return errs
	}

	if err := s.scheduleRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrWorkScheduleNotFound
		}
		return fmt.Errorf("failed to update work schedule: %w", err)
	}

	return nil
}

func validateVariantFields(scheduleType schedule.ScheduleType, req schedule.UpdateWorkScheduleRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch scheduleType {
	case schedule.ScheduleTypeFixed:
		if len(req.RotationPattern) > 0 || req.CycleStartDate != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "rotation_pattern",
				Message: "rotation fields must not be set on a FIXED schedule",
			})
		}
	case schedule.ScheduleTypeRotating:
		if len(req.WorkingDays) > 0 || req.DefaultShiftTypeID != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "fixed-schedule fields must not be set on a ROTATING schedule",
			})
		}
	}

	return errs
}

// DeleteWorkSchedule implements schedule.ScheduleService. Deletion is soft so
// rosters generated from the schedule keep their provenance.
func (s *scheduleServiceImpl) DeleteWorkSchedule(ctx context.Context, id string) error {
	if err := s.scheduleRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrWorkScheduleNotFound
		}
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}

	return nil
}

func mapWorkScheduleToResponse(entity schedule.WorkSchedule) schedule.WorkScheduleResponse {
	resp := schedule.WorkScheduleResponse{
		ID:                 entity.ID,
		Code:               entity.Code,
		Name:               entity.Name,
		Type:               string(entity.Type),
		IsActive:           entity.IsActive,
		WorkingDays:        entity.WorkingDays,
		DefaultShiftTypeID: entity.DefaultShiftTypeID,
		RotationPattern:    entity.RotationPattern,
		CreatedAt:          entity.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          entity.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if entity.CycleStartDate != nil {
		anchor := entity.CycleStartDate.Format(dateLayout)
		resp.CycleStartDate = &anchor
	}
	return resp
}
