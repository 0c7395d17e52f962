package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftTypeServiceImpl struct {
	shiftRepo shift.ShiftTypeRepository
}

func NewShiftTypeService(shiftRepo shift.ShiftTypeRepository) shift.ShiftTypeService {
	return &shiftTypeServiceImpl{shiftRepo: shiftRepo}
}

// CreateShiftType implements shift.ShiftTypeService.
func (s *shiftTypeServiceImpl) CreateShiftType(ctx context.Context, req shift.CreateShiftTypeRequest) (shift.ShiftTypeResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return shift.ShiftTypeResponse{}, err
	}

	entity := shift.ShiftType{
		Code:         req.Code,
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: *req.BreakMinutes,
		WorkingHours: *req.WorkingHours,
		IsOvernight:  req.IsOvernight(),
	}

	created, err := s.shiftRepo.Create(ctx, entity)
	if err != nil {
		// Check for duplicate code (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return shift.ShiftTypeResponse{}, shift.ErrShiftTypeCodeExists
			}
		}
		return shift.ShiftTypeResponse{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return mapShiftTypeToResponse(created), nil
}

// GetShiftType implements shift.ShiftTypeService.
func (s *shiftTypeServiceImpl) GetShiftType(ctx context.Context, id string) (shift.ShiftTypeResponse, error) {
	entity, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftTypeResponse{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftTypeResponse{}, err
	}

	return mapShiftTypeToResponse(entity), nil
}

// ListShiftTypes implements shift.ShiftTypeService.
func (s *shiftTypeServiceImpl) ListShiftTypes(ctx context.Context, filter shift.ShiftTypeFilter) (shift.ListShiftTypeResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftTypeResponse{}, err
	}

	entities, totalCount, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return shift.ListShiftTypeResponse{}, fmt.Errorf("failed to list shift types: %w", err)
	}

	responses := make([]shift.ShiftTypeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, mapShiftTypeToResponse(entity))
	}

	return shift.ListShiftTypeResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		ShiftTypes: responses,
	}, nil
}

// UpdateShiftType implements shift.ShiftTypeService.
func (s *shiftTypeServiceImpl) UpdateShiftType(ctx context.Context, req shift.UpdateShiftTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.shiftRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftTypeNotFound
		}
		return fmt.Errorf("failed to update shift type: %w", err)
	}

	return nil
}

// DeleteShiftType implements shift.ShiftTypeService.
func (s *shiftTypeServiceImpl) DeleteShiftType(ctx context.Context, id string) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftTypeNotFound
		}
		// A shift type referenced by schedules or rosters must not vanish
		// under them.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				return shift.ErrShiftTypeInUse
			}
		}
		return fmt.Errorf("failed to delete shift type: %w", err)
	}

	return nil
}

func mapShiftTypeToResponse(entity shift.ShiftType) shift.ShiftTypeResponse {
	return shift.ShiftTypeResponse{
		ID:           entity.ID,
		Code:         entity.Code,
		Name:         entity.Name,
		StartTime:    entity.StartTime,
		EndTime:      entity.EndTime,
		BreakMinutes: entity.BreakMinutes,
		WorkingHours: entity.WorkingHours,
		IsOvernight:  entity.IsOvernight,
		CreatedAt:    entity.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    entity.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
