package schedule

import "time"

// DayResolution is the answer to "does this employee work on this date,
// and on which shift" for a schedule definition. It is only a display
// hint: a persisted roster entry always takes precedence once generated.
type DayResolution struct {
	IsWorkingDay  bool
	ShiftTypeCode *string
}

// ResolveDay resolves a single calendar date against a schedule definition.
// Pure: no clock, no I/O.
func ResolveDay(ws WorkSchedule, date time.Time) (DayResolution, error) {
	switch ws.Type {
	case ScheduleTypeFixed:
		return resolveFixed(ws, date)
	case ScheduleTypeRotating:
		return resolveRotating(ws, date)
	default:
		return DayResolution{}, ErrUnknownScheduleType
	}
}

func resolveFixed(ws WorkSchedule, date time.Time) (DayResolution, error) {
	if len(ws.WorkingDays) == 0 {
		return DayResolution{}, ErrWorkingDaysEmpty
	}
	if ws.DefaultShiftTypeID == nil || *ws.DefaultShiftTypeID == "" {
		return DayResolution{}, ErrDefaultShiftMissing
	}

	weekday := ISOWeekday(date)
	for _, day := range ws.WorkingDays {
		if day == weekday {
			code := *ws.DefaultShiftTypeID
			return DayResolution{IsWorkingDay: true, ShiftTypeCode: &code}, nil
		}
	}
	return DayResolution{IsWorkingDay: false}, nil
}

func resolveRotating(ws WorkSchedule, date time.Time) (DayResolution, error) {
	n := len(ws.RotationPattern)
	if n == 0 {
		return DayResolution{}, ErrRotationPatternEmpty
	}
	if ws.CycleStartDate == nil {
		return DayResolution{}, ErrCycleStartDateMissing
	}

	delta := wholeDaysBetween(*ws.CycleStartDate, date)
	// Euclidean remainder: dates before the anchor produce a negative
	// delta, the double-mod keeps the index in [0, n).
	index := ((delta % n) + n) % n

	entry := ws.RotationPattern[index]
	if entry == RotationOff {
		return DayResolution{IsWorkingDay: false}, nil
	}
	return DayResolution{IsWorkingDay: true, ShiftTypeCode: &entry}, nil
}

// ISOWeekday returns the ISO-8601 weekday of date: 1=Monday ... 7=Sunday.
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// wholeDaysBetween counts whole calendar days from a to b, ignoring any
// time-of-day component on either value.
func wholeDaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
