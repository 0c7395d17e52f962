package schedule

import "time"

type WorkSchedule struct {
	ID        string
	Code      string // immutable after creation
	Name      string
	Type      ScheduleType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// FIXED variant
	WorkingDays        []int // ISO weekdays, 1=Monday ... 7=Sunday
	DefaultShiftTypeID *string

	// ROTATING variant
	RotationPattern []string // shift type codes or RotationOff
	CycleStartDate  *time.Time
}

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "FIXED"
	ScheduleTypeRotating ScheduleType = "ROTATING"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeRotating),
}

// RotationOff is the rotation pattern sentinel for a day off.
const RotationOff = "OFF"
