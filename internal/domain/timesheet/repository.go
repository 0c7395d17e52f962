package timesheet

import (
	"context"
	"time"
)

// EntryRepository reads the standard timesheet owned by the attendance
// subsystem.
type EntryRepository interface {
	GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Entry, error)
}

// WorkOrderEntryRepository reads work-order daily bookings owned by the
// work-order subsystem.
type WorkOrderEntryRepository interface {
	GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]WorkOrderEntry, error)
}
