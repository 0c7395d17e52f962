package roster

import "time"

// Entry is the persisted, per-employee, per-date materialization of a
// schedule definition.
type Entry struct {
	ID             string
	EmployeeID     string
	RosterDate     time.Time
	ShiftTypeCode  *string
	IsWorkingDay   bool
	StartTime      *string // HH:mm:ss, nil when off
	EndTime        *string // HH:mm:ss, nil when off
	ManualOverride bool    // generation must never clobber overridden rows
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
