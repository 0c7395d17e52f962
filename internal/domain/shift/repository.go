package shift

import "context"

type ShiftTypeRepository interface {
	Create(ctx context.Context, shiftType ShiftType) (ShiftType, error)
	GetByID(ctx context.Context, id string) (ShiftType, error)
	GetByCodes(ctx context.Context, codes []string) ([]ShiftType, error)
	List(ctx context.Context, filter ShiftTypeFilter) ([]ShiftType, int64, error)
	Update(ctx context.Context, req UpdateShiftTypeRequest) error
	Delete(ctx context.Context, id string) error
}
