package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrWorkScheduleNotFound   = errors.New("work schedule not found")
	ErrWorkScheduleCodeExists = errors.New("work schedule with this code already exists")
	ErrWorkScheduleInactive   = errors.New("work schedule is inactive")
)

// ErrScheduleMisconfigured marks schedule definitions the resolver cannot
// work with. A misconfigured schedule must fail loudly: defaulting to
// "always off" would be indistinguishable from legitimate off-days.
var ErrScheduleMisconfigured = errors.New("work schedule is misconfigured")

var (
	ErrRotationPatternEmpty  = fmt.Errorf("%w: rotation pattern is empty", ErrScheduleMisconfigured)
	ErrCycleStartDateMissing = fmt.Errorf("%w: cycle start date is missing", ErrScheduleMisconfigured)
	ErrWorkingDaysEmpty      = fmt.Errorf("%w: working days are empty", ErrScheduleMisconfigured)
	ErrDefaultShiftMissing   = fmt.Errorf("%w: default shift type is missing", ErrScheduleMisconfigured)
	ErrUnknownScheduleType   = fmt.Errorf("%w: unknown schedule type", ErrScheduleMisconfigured)
)
