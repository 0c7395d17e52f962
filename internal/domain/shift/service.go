package shift

import "context"

type ShiftTypeService interface {
	CreateShiftType(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error)
	GetShiftType(ctx context.Context, id string) (ShiftTypeResponse, error)
	ListShiftTypes(ctx context.Context, filter ShiftTypeFilter) (ListShiftTypeResponse, error)
	UpdateShiftType(ctx context.Context, req UpdateShiftTypeRequest) error
	DeleteShiftType(ctx context.Context, id string) error
}
