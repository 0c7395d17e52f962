package schedule

import "context"

type WorkScheduleRepository interface {
	Create(ctx context.Context, workSchedule WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	List(ctx context.Context, filter WorkScheduleFilter) ([]WorkSchedule, int64, error)
	Update(ctx context.Context, req UpdateWorkScheduleRequest) error
	SoftDelete(ctx context.Context, id string) error
}
